// SPDX-License-Identifier: MPL-2.0

package directory

import (
	_ "embed"
	"fmt"
	"strings"
)

// builtinSource names the embedded roster in parse errors.
const builtinSource = "builtin staff.txt"

//go:embed staff.txt
var builtinRoster string

// Builtin returns the directory built from the embedded roster that ships
// with the binary. The embedded data is fixed at build time, so an error here
// means the shipped resource itself is broken.
func Builtin() (*Directory, error) {
	records, err := ParseRoster(strings.NewReader(builtinRoster), builtinSource)
	if err != nil {
		return nil, fmt.Errorf("parse builtin roster: %w", err)
	}

	dir, err := New(records)
	if err != nil {
		return nil, fmt.Errorf("build builtin directory: %w", err)
	}

	return dir, nil
}
