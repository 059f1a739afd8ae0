// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/parole-review/internal/apiclient"
	"github.com/pdiddy/parole-review/internal/dashboard"
	"github.com/pdiddy/parole-review/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload a hearing PDF and add the summarized case to the roster",
	Long: `Upload sends a PDF to the summarization service. The returned case
becomes the newest client in the roster and is selected.

By default the parole summary endpoint is used, which also returns the
client's demographics. --mode process uses the general endpoint instead,
with an optional --prompt and --max-tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("mode", "parole", "summary endpoint: parole or process")
	uploadCmd.Flags().String("prompt", "", "custom prompt (process mode only)")
	uploadCmd.Flags().Int("max-tokens", 0, "token limit for the summary (process mode only, 0 = service default)")
	uploadCmd.Flags().Bool("export", false, "export the new case summary as PDF after upload")
	uploadCmd.Flags().Bool("details", false, "include structured case sections in the export")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	mode, _ := cmd.Flags().GetString("mode")
	prompt, _ := cmd.Flags().GetString("prompt")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")
	doExport, _ := cmd.Flags().GetBool("export")
	details, _ := cmd.Flags().GetBool("details")

	ctx := cmd.Context()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	var s dashboard.Summarizer
	switch mode {
	case "parole", "":
		if prompt != "" || maxTokens != 0 {
			return fmt.Errorf("--prompt and --max-tokens need --mode process")
		}
		s = a.api
	case "process":
		s = processSummarizer{api: a.api, opts: apiclient.ProcessOptions{Prompt: prompt, MaxTokens: maxTokens}}
	default:
		return fmt.Errorf("unsupported mode %q: use parole or process", mode)
	}

	file, err := upload.LoadFile(args[0], a.cfg.Upload.MaxSize)
	if err != nil {
		return err
	}

	d := a.dashboard(s, "", details)
	d.OpenUpload()
	d.ChooseFile(file)
	fmt.Fprintln(os.Stdout, upload.Describe(file))
	fmt.Fprintf(os.Stdout, "Processing %d page(s) at %s...\n", file.Pages, a.api.BaseURL())

	rec, _, err := d.SubmitUpload(ctx)
	if err != nil {
		return err
	}

	if msg, ok := d.Notice(); ok {
		fmt.Fprintln(os.Stdout, msg)
	}
	fmt.Fprintf(os.Stdout, "Added client %d: %s (CDCR %s)\n", rec.ID, rec.DisplayName(), rec.Demographics.ClientInfo.CDCRNumber)

	if doExport {
		path, err := d.Export()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported %s\n", path)
	}
	return nil
}
