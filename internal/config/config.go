package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all psiquitools configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Printable document geometry and export location
	Document DocumentConfig `yaml:"document"`

	// System clipboard integration
	Clipboard ClipboardConfig `yaml:"clipboard"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`
}

// DocumentConfig configures the paginated document exporters.
// All lengths are millimetres on the page.
type DocumentConfig struct {
	PageSize     string  `yaml:"page_size"` // A4, Letter
	MarginTop    float64 `yaml:"margin_top"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginBottom float64 `yaml:"margin_bottom"`
	LineHeight   float64 `yaml:"line_height"`
	FontSize     float64 `yaml:"font_size"`
	FooterMark   string  `yaml:"footer_mark"`
	OutputDir    string  `yaml:"output_dir"`
}

// ClipboardConfig configures the "copy summary" action.
type ClipboardConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ResetAfter string `yaml:"reset_after"` // how long the copied indicator stays lit
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "psiquitools",
		Version: "0.4.0",

		Document: DocumentConfig{
			PageSize:     "A4",
			MarginTop:    20,
			MarginLeft:   20,
			MarginBottom: 20,
			LineHeight:   7,
			FontSize:     11,
			FooterMark:   "psiqui.tools",
			OutputDir:    ".",
		},

		Clipboard: ClipboardConfig{
			Enabled:    true,
			ResetAfter: "2s",
		},

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "json",
			File:      filepath.Join(".psiq", "logs", "psiq.log"),
			DebugMode: false,
		},

		UI: *DefaultUIConfig(),
	}
}

// DefaultPath returns the default config location relative to the working directory.
func DefaultPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".psiq", "config.yaml")
	}
	return filepath.Join(cwd, ".psiq", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults still honour the environment
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("PSIQ_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if os.Getenv("PSIQ_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
	if dir := os.Getenv("PSIQ_OUTPUT_DIR"); dir != "" {
		c.Document.OutputDir = dir
	}
	if os.Getenv("PSIQ_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
	if os.Getenv("PSIQ_NO_CLIPBOARD") == "1" {
		c.Clipboard.Enabled = false
	}
}

// GetClipboardReset returns how long the copied indicator stays visible.
func (c *Config) GetClipboardReset() time.Duration {
	d, err := time.ParseDuration(c.Clipboard.ResetAfter)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// ResolveOutput places relative export paths under the configured output directory.
func (c *Config) ResolveOutput(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Document.OutputDir == "" {
		return path
	}
	return filepath.Join(c.Document.OutputDir, path)
}

// ValidPageSizes lists the supported page sizes.
var ValidPageSizes = []string{"A4", "Letter"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	d := c.Document

	validSize := false
	for _, s := range ValidPageSizes {
		if strings.EqualFold(d.PageSize, s) {
			validSize = true
			break
		}
	}
	if !validSize {
		return fmt.Errorf("invalid page size: %s (valid: %v)", d.PageSize, ValidPageSizes)
	}

	if d.MarginTop <= 0 || d.MarginLeft <= 0 || d.MarginBottom <= 0 {
		return fmt.Errorf("document margins must be positive")
	}
	if d.LineHeight <= 0 || d.FontSize <= 0 {
		return fmt.Errorf("line height and font size must be positive")
	}

	if err := c.UI.Validate(); err != nil {
		return err
	}

	return nil
}
