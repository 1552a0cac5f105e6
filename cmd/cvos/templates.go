package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cvos-backend/internal/render"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the résumé templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIER\tDEFAULT")
	for _, t := range render.Templates() {
		def := ""
		if t.Default {
			def = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Tier, def)
	}
	return w.Flush()
}
