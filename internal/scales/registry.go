package scales

import (
	"fmt"
	"strings"
)

// Registry holds the built-in scales in index order.
type Registry struct {
	scales []*Scale
	byID   map[string]*Scale
}

// NewRegistry builds a registry, rejecting invalid or duplicate scales.
func NewRegistry(scales ...*Scale) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Scale, len(scales))}
	for _, s := range scales {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scale %s", s.ID)
		}
		r.byID[s.ID] = s
		r.scales = append(r.scales, s)
	}
	return r, nil
}

// Default returns the registry of built-in scales.
func Default() *Registry {
	r, err := NewRegistry(CIWAAr, PHQ9, GAD7)
	if err != nil {
		panic(fmt.Sprintf("built-in scales are invalid: %v", err))
	}
	return r
}

// Get looks a scale up by id, case-insensitively.
func (r *Registry) Get(id string) (*Scale, error) {
	s, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, id)
	}
	return s, nil
}

// List returns the scales in index order.
func (r *Registry) List() []*Scale {
	out := make([]*Scale, len(r.scales))
	copy(out, r.scales)
	return out
}

// IDs returns the registered ids in index order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.scales))
	for i, s := range r.scales {
		ids[i] = s.ID
	}
	return ids
}
