// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"skydir/internal/config"
	"skydir/internal/directory"
	"skydir/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// rosterFile overrides the roster file from flag
	rosterFile string

	// appConfig is the configuration loaded by initRootConfig.
	appConfig *config.Config

	// configProvider resolves the effective configuration for this process.
	configProvider = config.NewProvider()

	// logger is the CLI-wide structured logger. Debug level under --verbose.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "skydir",
	})

	// rootCmd represents the base command: it performs the favourite-object lookup.
	rootCmd = &cobra.Command{
		Use:   "skydir <name>",
		Short: "Look up a staff member's favourite astronomical object",
		Long: TitleStyle.Render("skydir") + SubtitleStyle.Render(" - the department staff directory") + `

skydir answers the two questions every visitor to the department asks:
what is this person's favourite object in the sky, and where is their
office?

The directory ships with a built-in roster. Point skydir at your own
with --roster or the roster_path config setting.

` + SubtitleStyle.Render("Examples:") + `
  skydir "Edwin Hubble"           Print Edwin Hubble's favourite object
  skydir office "Vera Rubin"      Print Vera Rubin's office number
  skydir list                     List everyone in the directory
  skydir config show              Show current configuration`,
		Args: cobra.ExactArgs(1),
		RunE: runLookup,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/skydir/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rosterFile, "roster", "", "roster file (default is the built-in roster)")

	// Add subcommands
	rootCmd.AddCommand(officeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command and translates ExitError into the process
// exit code. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and applies it to the global state.
func initRootConfig() {
	if cfgFile != "" {
		// ResolvedPath (config show/path) follows the same file.
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := configProvider.Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Surface config loading problems but keep going on defaults.
		stderr := rootCmd.ErrOrStderr()
		fmt.Fprintln(stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		renderIssue(stderr, issue.ConfigLoadFailedId)
		cfg = config.DefaultConfig()
	}
	appConfig = cfg

	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// render with their suggestions; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// openDirectory builds the directory the command should query: the --roster
// flag wins, then the configured roster_path, then the built-in roster.
func openDirectory() (*directory.Directory, error) {
	path := rosterFile
	if path == "" && appConfig != nil {
		path = appConfig.RosterPath
	}

	if path == "" {
		dir, err := directory.Builtin()
		if err != nil {
			return nil, err
		}
		logger.Debug("using built-in roster", "entries", dir.Len())
		return dir, nil
	}

	dir, err := directory.Load(path)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load roster").
			WithResource(path).
			WithSuggestion("Check the path passed via --roster or set in roster_path").
			WithSuggestion("Each roster line must look like 'Name: favourite object[: office]'").
			Wrap(err).
			BuildError()
	}
	logger.Debug("loaded roster", "path", path, "entries", dir.Len())

	return dir, nil
}

// runLookup resolves the positional name and prints the favourite object.
func runLookup(cmd *cobra.Command, args []string) error {
	dir, err := openDirectory()
	if err != nil {
		return failWithError(cmd, err)
	}

	rec, err := dir.Lookup(args[0])
	if err != nil {
		var nfe *directory.NotFoundError
		if errors.As(err, &nfe) {
			return failNotFound(cmd, nfe)
		}
		return failWithError(cmd, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), rec.FavouriteObject)
	return nil
}

// failWithError prints a formatted error to stderr, follows it with the
// guidance card matching the failure (if any), and converts it to exit code 1.
func failWithError(cmd *cobra.Command, err error) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	if id, ok := issueFor(err); ok {
		renderIssue(stderr, id)
	}

	return &ExitError{Code: 1}
}

// failNotFound reports a lookup failure with the rendered guidance card.
func failNotFound(cmd *cobra.Command, nfe *directory.NotFoundError) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+nfe.Error())
	renderIssue(stderr, issue.NameNotFoundId)

	return &ExitError{Code: 1}
}
