// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skydir/internal/config"
)

// executeCommand runs the root command with args against a clean global state
// and captures stdout/stderr. The config directory is pointed at a temp dir so
// tests never touch the user's real configuration.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return executeCommandWithConfigDir(t, t.TempDir(), args...)
}

// executeCommandWithConfigDir is executeCommand with an explicit config
// directory, for tests that inspect files the command creates there.
func executeCommandWithConfigDir(t *testing.T, configDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	config.Reset()
	t.Cleanup(config.Reset)
	config.SetConfigDirOverride(configDir)

	verbose = false
	cfgFile = ""
	rosterFile = ""
	listPlain = false
	appConfig = nil

	// Cobra's built-in help flag persists across Execute calls; clear it so a
	// prior --help run does not make later executions print help.
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// writeRoster writes a roster fixture file and returns its path.
func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staff.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write roster fixture: %v", err)
	}
	return path
}

func TestRoot_KnownName(t *testing.T) {
	stdout, _, err := executeCommand(t, "Edwin Hubble")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if stdout != "M31\n" {
		t.Errorf("stdout = %q, want %q", stdout, "M31\n")
	}
}

func TestRoot_CaseInsensitiveLookup(t *testing.T) {
	stdout, _, err := executeCommand(t, "edwin   hubble")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if stdout != "M31\n" {
		t.Errorf("stdout = %q, want %q", stdout, "M31\n")
	}
}

func TestRoot_UnknownName(t *testing.T) {
	_, stderr, err := executeCommand(t, "Nobody Nowhere")
	if err == nil {
		t.Fatal("lookup of unknown name succeeded")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if !strings.Contains(stderr, "Nobody Nowhere") {
		t.Errorf("stderr should reference the queried name, got:\n%s", stderr)
	}
}

func TestRoot_Help(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("--help returned error: %v", err)
	}
	if !strings.Contains(stdout, "skydir") {
		t.Error("help output should contain the program name")
	}
	if !strings.Contains(stdout, "name") {
		t.Error("help output should mention the name argument")
	}
}

func TestRoot_RosterFlag(t *testing.T) {
	path := writeRoster(t, "A. Researcher: NGC 1300: 42\n")

	stdout, _, err := executeCommand(t, "--roster", path, "A. Researcher")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if stdout != "NGC 1300\n" {
		t.Errorf("stdout = %q, want %q", stdout, "NGC 1300\n")
	}
}

func TestRoot_RosterFlagShadowsBuiltin(t *testing.T) {
	path := writeRoster(t, "A. Researcher: NGC 1300\n")

	// Built-in names are not visible once an external roster is given.
	_, stderr, err := executeCommand(t, "--roster", path, "Edwin Hubble")
	if err == nil {
		t.Fatal("expected lookup failure for a name absent from the external roster")
	}
	if !strings.Contains(stderr, "Edwin Hubble") {
		t.Errorf("stderr should reference the queried name, got:\n%s", stderr)
	}
}

func TestRoot_MissingRosterFile(t *testing.T) {
	_, stderr, err := executeCommand(t, "--roster", filepath.Join(t.TempDir(), "nope.txt"), "Edwin Hubble")
	if err == nil {
		t.Fatal("expected failure for a missing roster file")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T, want *ExitError", err)
	}
	if !strings.Contains(stderr, "load roster") {
		t.Errorf("stderr should describe the failed operation, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "Roster file not found") {
		t.Errorf("stderr should carry the roster-not-found guidance, got:\n%s", stderr)
	}
}

func TestRoot_MalformedRosterFile(t *testing.T) {
	path := writeRoster(t, "no separator here\n")

	_, stderr, err := executeCommand(t, "--roster", path, "Anyone")
	if err == nil {
		t.Fatal("expected failure for a malformed roster file")
	}
	if !strings.Contains(stderr, "favourite object") {
		t.Errorf("stderr should include the format suggestion, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "Failed to parse roster") {
		t.Errorf("stderr should carry the parse-error guidance, got:\n%s", stderr)
	}
}

func TestRoot_DuplicateRosterEntriesShowParseGuidance(t *testing.T) {
	path := writeRoster(t, "A. Researcher: NGC 1300\na. researcher: M42\n")

	_, stderr, err := executeCommand(t, "--roster", path, "A. Researcher")
	if err == nil {
		t.Fatal("expected failure for a roster with duplicate names")
	}
	if !strings.Contains(stderr, "Failed to parse roster") {
		t.Errorf("stderr should carry the parse-error guidance, got:\n%s", stderr)
	}
}

func TestRoot_BrokenConfigWarnsAndContinues(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")

	stdout, stderr, err := executeCommand(t, "--config", missing, "Edwin Hubble")
	if err != nil {
		t.Fatalf("lookup should fall back to defaults, got error: %v", err)
	}
	if stdout != "M31\n" {
		t.Errorf("stdout = %q, want %q", stdout, "M31\n")
	}
	if !strings.Contains(stderr, "Warning:") {
		t.Errorf("stderr should carry a warning, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "Failed to load configuration") {
		t.Errorf("stderr should carry the config-load guidance, got:\n%s", stderr)
	}
}

func TestRoot_ConfiguredRosterPath(t *testing.T) {
	rosterPath := writeRoster(t, "B. Observer: Betelgeuse: 7\n")

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("roster_path = \""+rosterPath+"\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	stdout, _, err := executeCommand(t, "--config", cfgPath, "B. Observer")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if stdout != "Betelgeuse\n" {
		t.Errorf("stdout = %q, want %q", stdout, "Betelgeuse\n")
	}
}

func TestGetVersionString(t *testing.T) {
	originalVersion, originalCommit, originalDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = originalVersion, originalCommit, originalDate }()

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-08-23"
	if got := getVersionString(); !strings.Contains(got, "1.2.3") || !strings.Contains(got, "abc123") {
		t.Errorf("getVersionString() = %q, want version and commit", got)
	}
}
