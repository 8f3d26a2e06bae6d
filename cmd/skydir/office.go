// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"

	"skydir/internal/directory"

	"github.com/spf13/cobra"
)

// officeCmd prints a staff member's office number.
var officeCmd = &cobra.Command{
	Use:   "office <name>",
	Short: "Look up a staff member's office number",
	Long: `Look up a staff member's office number.

Not every roster entry records an office; in that case a note is printed
and the command still succeeds, since the person was found.

Examples:
  skydir office "Vera Rubin"
  skydir office "annie jump cannon"`,
	Args: cobra.ExactArgs(1),
	RunE: runOffice,
}

func runOffice(cmd *cobra.Command, args []string) error {
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

	if rec.OfficeNumber == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s has no office on record\n", rec.Name)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), rec.OfficeNumber)
	return nil
}
