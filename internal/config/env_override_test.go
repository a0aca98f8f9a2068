package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("PSIQ_LOG_LEVEL sets level", func(t *testing.T) {
		t.Setenv("PSIQ_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("PSIQ_DEBUG enables debug mode", func(t *testing.T) {
		t.Setenv("PSIQ_DEBUG", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("PSIQ_OUTPUT_DIR redirects exports", func(t *testing.T) {
		t.Setenv("PSIQ_OUTPUT_DIR", "/tmp/exports")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/tmp/exports", cfg.Document.OutputDir)
	})

	t.Run("PSIQ_DARK_MODE forces dark theme", func(t *testing.T) {
		t.Setenv("PSIQ_DARK_MODE", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ThemeDark, cfg.UI.Theme)
	})

	t.Run("PSIQ_NO_CLIPBOARD disables clipboard", func(t *testing.T) {
		t.Setenv("PSIQ_NO_CLIPBOARD", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.False(t, cfg.Clipboard.Enabled)
	})

	t.Run("overrides apply to a missing file", func(t *testing.T) {
		t.Setenv("PSIQ_OUTPUT_DIR", "out")

		cfg, err := Load(t.TempDir() + "/missing.yaml")
		require.NoError(t, err)
		assert.Equal(t, "out", cfg.Document.OutputDir)
	})
}
