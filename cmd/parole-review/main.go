// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the parole-review CLI.
//
// parole-review uploads hearing transcripts to the summarization service,
// keeps a local roster of the resulting case records and exports case
// summaries as PDF.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/parole-review/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the parole-review CLI.
var rootCmd = &cobra.Command{
	Use:   "parole-review",
	Short: "Review parole hearing case summaries",
	Long: `parole-review is a client for the parole hearing summarization service.
It uploads hearing PDFs, keeps the resulting case records in a local roster,
and exports case summaries as paginated PDF documents.

The service address comes from api.base_url in parole-review.yaml, the
PAROLE_REVIEW_API_BASE_URL or API_BASE_URL environment variables, or
--base-url, and falls back to http://localhost:8000.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setupLogging(cfg.LogLevel)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./parole-review.yaml or ~/.config/parole-review/config.yaml)")
	pf.String("env-file", ".env", "dotenv file loaded before reading the environment")
	pf.String("base-url", "", "summarization service base URL")
	pf.Duration("timeout", 0, "request timeout (0 = wait for the service)")
	pf.String("store", "", "case database file")
	pf.String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("api.base_url", pf.Lookup("base-url"))
	_ = viper.BindPFlag("api.timeout", pf.Lookup("timeout"))
	_ = viper.BindPFlag("store.path", pf.Lookup("store"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
}

func initConfig() {
	envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: reading %s: %v\n", envFile, err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("parole-review")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "parole-review"))
		}
	}

	setDefaults(viper.GetViper(), types.DefaultAppConfig())

	viper.SetEnvPrefix("PAROLE_REVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// The service's own deployments set API_BASE_URL.
	_ = viper.BindEnv("api.base_url", "PAROLE_REVIEW_API_BASE_URL", "API_BASE_URL")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so that AutomaticEnv can find it during
// Unmarshal.
func setDefaults(v *viper.Viper, d types.AppConfig) {
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.user_agent", d.API.UserAgent)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("upload.max_size", d.Upload.MaxSize)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("store.seed_demo", d.Store.SeedDemo)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.details", d.Export.Details)
	v.SetDefault("log_level", d.LogLevel)
}

// loadConfig decodes and validates the merged configuration.
func loadConfig() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogging sends structured diagnostics to stderr. Command output
// goes to stdout.
func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
