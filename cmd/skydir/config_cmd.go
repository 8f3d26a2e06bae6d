// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"path/filepath"

	"skydir/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// configCmd groups configuration inspection and management.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage skydir configuration",
	Long: `Manage skydir configuration.

The configuration file selects an external roster file and UI settings.
Without a config file, built-in defaults apply.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	body, err := toml.Marshal(cfg)
	if err != nil {
		return failWithError(cmd, err)
	}

	resolved, err := config.ResolvedPath()
	if err != nil {
		return failWithError(cmd, err)
	}

	stdout := cmd.OutOrStdout()
	if resolved == "" {
		fmt.Fprintln(stdout, SubtitleStyle.Render("# built-in defaults (no config file found)"))
	} else {
		fmt.Fprintln(stdout, SubtitleStyle.Render("# "+resolved))
	}
	fmt.Fprint(stdout, string(body))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	resolved, err := config.ResolvedPath()
	if err != nil {
		return failWithError(cmd, err)
	}

	if resolved != "" {
		fmt.Fprintln(cmd.OutOrStdout(), resolved)
		return nil
	}

	// No file yet: print where 'config init' would put one.
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return failWithError(cmd, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (not created yet)\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := config.CreateDefaultConfig()
	if err != nil {
		return failWithError(cmd, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file ready at %s\n", path)
	return nil
}
