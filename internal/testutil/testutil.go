// SPDX-License-Identifier: MPL-2.0

// Package testutil provides small helpers that keep environment mutation in
// tests consistent and reversible.
package testutil

import (
	"os"
	"runtime"
	"testing"
)

// MustSetenv sets the environment variable key to value and returns a cleanup
// function that restores the original value (or unsets it). The test fails
// immediately if the operation fails.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	original, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return func() {
		if had {
			if err := os.Setenv(key, original); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		} else {
			if err := os.Unsetenv(key); err != nil {
				t.Errorf("failed to unset env %s: %v", key, err)
			}
		}
	}
}

// MustUnsetenv unsets the environment variable key and returns a cleanup
// function that restores the original value if one was set.
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	original, had := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	return func() {
		if had {
			if err := os.Setenv(key, original); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		}
	}
}

// SetHomeDir points the platform home directory variable at dir and returns a
// cleanup function. Windows keys off USERPROFILE, everything else uses HOME.
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}
