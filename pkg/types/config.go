// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultBaseURL is the summarization service address used when no
// deployment value is configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultMaxUploadSize mirrors the service's upload limit (10 MiB).
const DefaultMaxUploadSize int64 = 10 * 1024 * 1024

// ServiceConfig holds settings for calls to the summarization service.
type ServiceConfig struct {
	// BaseURL is the service root, e.g. "http://localhost:8000".
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// Timeout bounds a single request. Zero means no client-side timeout;
	// the service may then keep the caller waiting indefinitely.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Validate checks that BaseURL is an absolute http(s) URL.
func (c ServiceConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// UploadConfig holds settings for local file selection.
type UploadConfig struct {
	// MaxSize is the largest file accepted for upload, in bytes.
	MaxSize int64 `json:"max_size" yaml:"max_size" mapstructure:"max_size"`
}

// Validate checks that MaxSize is positive.
func (c UploadConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MaxSize, validation.Required, validation.Min(int64(1))),
	)
}

// StoreConfig holds settings for the local case store.
type StoreConfig struct {
	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// SeedDemo loads the built-in demo roster into an empty store.
	SeedDemo bool `json:"seed_demo" yaml:"seed_demo" mapstructure:"seed_demo"`
}

// Validate checks that Path is set.
func (c StoreConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Path, validation.Required),
	)
}

// ExportConfig holds settings for generated summary documents.
type ExportConfig struct {
	// Dir is the directory that receives exported PDFs.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Details appends the structured case sections after the summary.
	Details bool `json:"details" yaml:"details" mapstructure:"details"`
}

// AppConfig groups all settings of the CLI.
type AppConfig struct {
	API      ServiceConfig `json:"api" yaml:"api" mapstructure:"api"`
	Upload   UploadConfig  `json:"upload" yaml:"upload" mapstructure:"upload"`
	Store    StoreConfig   `json:"store" yaml:"store" mapstructure:"store"`
	Export   ExportConfig  `json:"export" yaml:"export" mapstructure:"export"`
	LogLevel string        `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Validate validates every section.
func (c AppConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.API),
		validation.Field(&c.Upload),
		validation.Field(&c.Store),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// DefaultAppConfig returns the configuration used when nothing is set.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		API: ServiceConfig{
			BaseURL:   DefaultBaseURL,
			UserAgent: "parole-review/0.1",
		},
		Upload:   UploadConfig{MaxSize: DefaultMaxUploadSize},
		Store:    StoreConfig{Path: "parole-review.db", SeedDemo: true},
		Export:   ExportConfig{Dir: "."},
		LogLevel: "info",
	}
}

func httpURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
