// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the summarization service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := newAPIClient(cfg)
		resp, err := c.Health(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s (summarizer configured: %t)\n", c.BaseURL(), resp.Status, resp.GeminiConfigured)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
