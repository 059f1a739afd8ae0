// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/parole-review/internal/upload"
)

var extractCmd = &cobra.Command{
	Use:   "extract-text <file.pdf>",
	Short: "Extract the raw text of a PDF through the service",
	Long: `Extract-text uploads a PDF and prints the text the service extracted,
without summarizing it. The roster is not changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("out", "", "write the text to this file instead of stdout")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	file, err := upload.LoadFile(args[0], cfg.Upload.MaxSize)
	if err != nil {
		return err
	}

	resp, err := newAPIClient(cfg).ExtractText(cmd.Context(), file)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(resp.ExtractedText)
		return nil
	}
	if err := os.WriteFile(out, []byte(resp.ExtractedText), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d characters from %s to %s\n", len(resp.ExtractedText), resp.Filename, out)
	return nil
}
