// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format.
//
// Configuration is loaded from ~/.config/skydir/config.toml (or the XDG
// equivalent on Linux, ~/Library/Application Support/skydir/config.toml on
// macOS, %APPDATA%\skydir\config.toml on Windows), with a config.toml in the
// current directory as a fallback. The package provides type-safe access to
// the roster path override and UI settings.
package config
