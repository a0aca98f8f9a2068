package history

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"psiquitools/internal/logging"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML draft. A draft without a timestamp is stamped with now.
func LoadFile(path string, now time.Time) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read history draft: %w", err)
	}

	r := &Record{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("failed to parse history draft %s: %w", path, err)
	}
	if r.Identification.Timestamp == "" {
		r.Identification.Timestamp = now.Format(TimestampLayout)
	}

	logging.Get(logging.CategoryHistory).Debug("draft loaded", zap.String("path", path))
	return r, nil
}

// SaveFile writes r as a YAML draft.
func SaveFile(path string, r *Record) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create draft directory: %w", err)
		}
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal history draft: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history draft: %w", err)
	}
	return nil
}
