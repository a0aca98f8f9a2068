package config

import "fmt"

// Theme names accepted by UIConfig.Theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig holds terminal user interface configuration.
type UIConfig struct {
	// Theme selects the colour scheme; auto inspects the terminal
	Theme string `yaml:"theme"`

	// WordWrap is the column at which previews are wrapped
	WordWrap int `yaml:"word_wrap"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:    ThemeAuto,
		WordWrap: 80,
	}
}

// Validate checks the theme name and wrap width.
func (u UIConfig) Validate() error {
	switch u.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme: %s (valid: auto, light, dark)", u.Theme)
	}
	if u.WordWrap < 20 {
		return fmt.Errorf("word_wrap must be at least 20, got %d", u.WordWrap)
	}
	return nil
}
