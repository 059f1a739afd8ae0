// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a case summary as PDF",
	Long: `Export writes the case summary of a client (default: the selected
client) to parole_hearing_summary_<name>_<millis>.pdf. --all writes one
roster summary with a page per client to all_parole_cases_<millis>.pdf.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().Bool("all", false, "export every client into one roster summary")
	exportCmd.Flags().Bool("details", false, "include structured case sections after the summary")
	exportCmd.Flags().String("dir", "", "output directory (default: export.dir)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	details, _ := cmd.Flags().GetBool("details")
	dir, _ := cmd.Flags().GetString("dir")

	if all && len(args) > 0 {
		return fmt.Errorf("--all does not take a client id")
	}

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if len(args) > 0 {
		r, err := selectedOrArg(a.state, args)
		if err != nil {
			return err
		}
		// Not persisted: exporting does not change the selection.
		a.state, _ = a.state.Select(r.ID)
	}
	d := a.dashboard(nil, dir, details)

	var path string
	if all {
		path, err = d.ExportAll()
	} else {
		path, err = d.Export()
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported %s\n", path)
	return nil
}
