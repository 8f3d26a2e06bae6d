// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions names the inputs that decide which config file skydir reads.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific file (the --config flag).
	// When set, the file must exist.
	ConfigFilePath string
	// ConfigDirPath overrides the platform config directory lookup. Used by
	// tests; empty means ConfigDir() decides.
	ConfigDirPath string
}

// Provider resolves the effective skydir configuration from explicit inputs,
// so the CLI and tests can load config without reaching for package-level
// override state.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

// tomlProvider reads TOML config files through Viper.
type tomlProvider struct{}

// NewProvider creates the file-backed configuration provider.
func NewProvider() Provider {
	return &tomlProvider{}
}

// Load resolves the configuration: an explicit file wins, then config.toml in
// the config directory, then config.toml in the working directory, then
// built-in defaults.
func (p *tomlProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
