// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFilePathOverride forces loading from a specific config file.
// Set from the --config CLI flag.
var configFilePathOverride string

// Reset clears all overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path. Primarily for
// tests that need to bypass os.UserHomeDir().
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride pins ResolvedPath to the given config file, so
// `config show` and `config path` follow the --config flag.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}
