package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTools(t *testing.T) {
	got := Tools()
	var ids []string
	for _, tool := range got {
		ids = append(ids, tool.ID)
		assert.NotEmpty(t, tool.Title)
		assert.NotEmpty(t, tool.Command)
	}
	assert.Equal(t, []string{"history", "mse", "scales", "resources", "timeline"}, ids)

	got[0].Title = "changed"
	assert.Equal(t, "Emergency clinical history", Tools()[0].Title)
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup("scale")
	assert.True(t, ok)
	assert.Equal(t, "scales", tool.ID)

	tool, ok = Lookup(" MSE ")
	assert.True(t, ok)
	assert.Equal(t, "mse", tool.Command)

	_, ok = Lookup("billing")
	assert.False(t, ok)
}
