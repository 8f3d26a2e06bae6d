// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// UIConfig holds terminal output settings.
	UIConfig struct {
		// ColorScheme selects the glamour/lipgloss rendering scheme.
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug logging without passing --verbose.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// Config is the application configuration.
	Config struct {
		// RosterPath points at an external roster file. Empty means the
		// built-in roster is used.
		RosterPath string `mapstructure:"roster_path" toml:"roster_path"`
		// UI holds terminal output settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}
)

// Error returns the error message for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme: %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// IsValid reports whether the color scheme is one of the recognized values.
func (s ColorScheme) IsValid() error {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: s}
	}
}

// String returns the string form of the color scheme.
func (s ColorScheme) String() string {
	return string(s)
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		RosterPath: "",
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Validate checks constraints the TOML decoding cannot express.
func (c *Config) Validate() error {
	if err := c.UI.ColorScheme.IsValid(); err != nil {
		return err
	}
	return nil
}
