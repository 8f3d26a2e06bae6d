// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listPlain switches the listing to script-friendly names-only output.
var listPlain bool

// listCmd prints the whole directory sorted by name.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List everyone in the staff directory",
	Long: `List everyone in the staff directory, sorted by name, with their
favourite object and office number.

Use --plain to print one bare name per line for use in scripts.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "print names only, one per line")
}

func runList(cmd *cobra.Command, _ []string) error {
	dir, err := openDirectory()
	if err != nil {
		return failWithError(cmd, err)
	}

	stdout := cmd.OutOrStdout()

	if listPlain {
		for _, name := range dir.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	fmt.Fprintln(stdout, TitleStyle.Render("Staff directory")+SubtitleStyle.Render(fmt.Sprintf(" (%d entries)", dir.Len())))
	fmt.Fprintln(stdout)

	w := tabwriter.NewWriter(stdout, 2, 4, 2, ' ', 0)
	for _, rec := range dir.Records() {
		office := "-"
		if rec.OfficeNumber != "" {
			office = rec.OfficeNumber
		}
		fmt.Fprintf(w, "  %s\t%s\toffice %s\n", NameStyle.Render(rec.Name), rec.FavouriteObject, office)
	}
	return w.Flush()
}
