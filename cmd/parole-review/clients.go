// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/parole-review/internal/roster"
	"github.com/pdiddy/parole-review/pkg/types"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List, inspect, select and export clients in the roster",
}

// --- list subcommand ---

var clientsListCmd = &cobra.Command{
	Use:   "list [search]",
	Short: "List clients, newest first",
	Long: `List prints the client roster. A search argument keeps clients whose
name, CDCR number or initials contain it, ignoring case. --text searches
the case summaries instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClientsList,
}

func runClientsList(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	state := a.state
	if text != "" {
		records, err := a.store.FindText(ctx, text)
		if err != nil {
			return err
		}
		state = roster.New(records)
	}
	if len(args) > 0 {
		state = state.WithSearch(args[0])
	}
	rows := state.Sidebar()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	selected, _ := a.state.Selected()
	return formatClients(os.Stdout, rows, selected.ID)
}

func formatClients(w io.Writer, rows []types.SidebarClient, selectedID int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No clients found.")
		return err
	}

	fmt.Fprintf(w, "  %-4s  %-3s  %-28s  %-10s  %-20s  %s\n", "ID", "", "Name", "CDCR", "Date of Birth", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 84))
	for _, c := range rows {
		mark := " "
		if c.ID == selectedID {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-4d  %-3s  %-28s  %-10s  %-20s  %s\n",
			mark, c.ID, c.Initials, truncate(c.Name, 28), truncate(c.CDCRNumber, 10), truncate(c.DateOfBirth, 20), c.Status)
	}
	_, err := fmt.Fprintf(w, "\n%d client(s)\n", len(rows))
	return err
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- show subcommand ---

var clientsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a client's case summary (default: the selected client)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClientsShow,
}

func runClientsShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	r, err := selectedOrArg(a.state, args)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	ci := r.Demographics.ClientInfo
	c := roster.Project(r)
	fmt.Printf("Client %d: %s (%s)\n", r.ID, ci.Name, c.Status)
	fmt.Printf("CDCR Number:   %s\n", ci.CDCRNumber)
	fmt.Printf("Date of Birth: %s\n", ci.DateOfBirth)
	fmt.Printf("Contact Info:  %s\n", ci.ContactInfo)
	fmt.Printf("Source File:   %s (%d bytes, %d characters extracted)\n", r.Filename, r.FileSize, r.ExtractedTextLength)
	if s := strings.TrimSpace(r.Demographics.Introduction.ShortSummary); s != "" {
		fmt.Printf("\n%s\n", s)
	}
	if s := strings.TrimSpace(r.MarkdownSummary); s != "" {
		fmt.Printf("\n%s\n", s)
	}
	return nil
}

// --- select subcommand ---

var clientsSelectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Select the client that show and export act on",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsSelect,
}

func runClientsSelect(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	d := a.dashboard(nil, "", false)
	if err := d.Select(ctx, id); err != nil {
		return err
	}
	r, _ := d.State().Selected()
	fmt.Printf("Selected client %d: %s\n", r.ID, r.DisplayName())
	return nil
}

// --- export subcommand ---

var clientsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster to YAML or JSON",
	Long: `Export writes every stored client record, newest first, to stdout or
to --out. Use the top-level export command for PDF summaries.`,
	RunE: runClientsExport,
}

func runClientsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "yaml", "":
		err = a.store.ExportYAML(ctx, w)
	case "json":
		err = a.store.ExportJSON(ctx, w)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintf(os.Stderr, "Exported to %s\n", out)
	}
	return nil
}

func init() {
	clientsListCmd.Flags().String("text", "", "search case summaries for this text")
	clientsListCmd.Flags().Bool("json", false, "output rows as JSON")

	clientsShowCmd.Flags().Bool("json", false, "output the full record as JSON")

	clientsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	clientsExportCmd.Flags().String("out", "", "output file (default: stdout)")

	clientsCmd.AddCommand(clientsListCmd)
	clientsCmd.AddCommand(clientsShowCmd)
	clientsCmd.AddCommand(clientsSelectCmd)
	clientsCmd.AddCommand(clientsExportCmd)

	rootCmd.AddCommand(clientsCmd)
}
