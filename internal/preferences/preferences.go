// Package preferences models the display and accessibility preferences that
// the application shell applies to every page.
package preferences

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the color scheme of the shell.
type Theme string

const (
	ThemeDark         Theme = "dark"
	ThemeLight        Theme = "light"
	ThemeHighContrast Theme = "high-contrast"
)

// FontSize is the base text size of the shell.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid preferences")

// Preferences are the per-device shell settings.
type Preferences struct {
	Theme        Theme    `json:"theme"`
	FontSize     FontSize `json:"font_size"`
	ReduceMotion bool     `json:"reduce_motion"`
	Sound        bool     `json:"sound"`
}

// Default returns the preferences used before a device saves any.
func Default() Preferences {
	return Preferences{
		Theme:        ThemeDark,
		FontSize:     FontMedium,
		ReduceMotion: false,
		Sound:        true,
	}
}

// Themes lists the supported themes, default first.
func Themes() []Theme {
	return []Theme{ThemeDark, ThemeLight, ThemeHighContrast}
}

// FontSizes lists the supported font sizes in ascending order.
func FontSizes() []FontSize {
	return []FontSize{FontSmall, FontMedium, FontLarge}
}

// Valid reports whether t is supported.
func (t Theme) Valid() bool {
	for _, known := range Themes() {
		if t == known {
			return true
		}
	}
	return false
}

// Valid reports whether f is supported.
func (f FontSize) Valid() bool {
	for _, known := range FontSizes() {
		if f == known {
			return true
		}
	}
	return false
}

// ParseTheme parses a theme name, ignoring case and surrounding space.
func ParseTheme(value string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(value)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown theme %q", ErrInvalid, value)
	}
	return t, nil
}

// ParseFontSize parses a font size name, ignoring case and surrounding space.
func ParseFontSize(value string) (FontSize, error) {
	f := FontSize(strings.ToLower(strings.TrimSpace(value)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: unknown font size %q", ErrInvalid, value)
	}
	return f, nil
}

// Normalize replaces unsupported values with their defaults.
func (p Preferences) Normalize() Preferences {
	def := Default()
	if !p.Theme.Valid() {
		p.Theme = def.Theme
	}
	if !p.FontSize.Valid() {
		p.FontSize = def.FontSize
	}
	return p
}

// Validate rejects unsupported values.
func (p Preferences) Validate() error {
	if !p.Theme.Valid() {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, p.Theme)
	}
	if !p.FontSize.Valid() {
		return fmt.Errorf("%w: unknown font size %q", ErrInvalid, p.FontSize)
	}
	return nil
}

// FontClass returns the CSS class for the font size.
func (p Preferences) FontClass() string {
	return "font-" + string(p.Normalize().FontSize)
}
