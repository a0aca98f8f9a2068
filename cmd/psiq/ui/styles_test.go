package ui

import (
	"testing"

	"psiquitools/internal/config"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("PSIQ_DARK_MODE", "1")
	dark := DetectTheme()
	if !dark.IsDark {
		t.Fatalf("expected dark theme when PSIQ_DARK_MODE=1")
	}

	t.Setenv("PSIQ_DARK_MODE", "")
	light := DetectTheme()
	if light.IsDark {
		t.Fatalf("expected light theme when PSIQ_DARK_MODE is unset")
	}
}

func TestDetectThemeFromColorFGBG(t *testing.T) {
	t.Setenv("PSIQ_DARK_MODE", "")
	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatalf("expected dark theme for a black background")
	}
}

func TestThemeFor(t *testing.T) {
	if !ThemeFor(config.ThemeDark).IsDark {
		t.Errorf("dark theme name should resolve to the dark theme")
	}
	if ThemeFor(config.ThemeLight).IsDark {
		t.Errorf("light theme name should resolve to the light theme")
	}
}

func TestSeverityColor(t *testing.T) {
	if got := SeverityColor(0, 3); got != Success {
		t.Errorf("lowest band = %v, want %v", got, Success)
	}
	if got := SeverityColor(2, 3); got != Destructive {
		t.Errorf("highest band = %v, want %v", got, Destructive)
	}
	if got := SeverityColor(0, 1); got != Success {
		t.Errorf("single band = %v, want %v", got, Success)
	}
	if got := SeverityColor(3, 5); got != Caution {
		t.Errorf("band 3 of 5 = %v, want %v", got, Caution)
	}
}
