// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apiclient calls the external summarization service: PDF
// processing, parole summaries, raw text extraction and health.
// Every call is a single request; nothing is retried.
package apiclient

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/parole-review/internal/httputil"
	"github.com/pdiddy/parole-review/pkg/types"
)

const (
	processPath       = "/pdf/process"
	paroleSummaryPath = "/pdf/parole-summary"
	extractTextPath   = "/pdf/extract-text"
	healthPath        = "/health"

	pdfContentType = "application/pdf"
)

// operation names a service call and its generic failure message.
type operation struct {
	name    string
	failure string
}

var (
	opProcess       = operation{"process", "Failed to process PDF"}
	opParoleSummary = operation{"parole-summary", "Failed to generate parole summary"}
	opExtractText   = operation{"extract-text", "Failed to extract text"}
	opHealth        = operation{"health", "Health check failed"}
)

// ProcessOptions are the optional form fields of ProcessPDF.
type ProcessOptions struct {
	// Prompt replaces the service's default summary prompt when non-empty.
	Prompt string

	// MaxTokens caps the summary length when positive.
	MaxTokens int
}

// Client is a thin wrapper over the service's HTTP endpoints.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// New returns a client for cfg. A nil httpClient gets a default client
// with cfg.Timeout (zero means no timeout).
func New(cfg types.ServiceConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = types.DefaultBaseURL
	}
	return &Client{
		baseURL:    base,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     slog.Default(),
	}
}

// WithLogger returns a copy of c that logs to logger.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	cp := *c
	cp.logger = logger
	return &cp
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// ProcessPDF uploads file to /pdf/process and returns the summary envelope.
func (c *Client) ProcessPDF(ctx context.Context, file types.UploadFile, opts ProcessOptions) (*types.ProcessResponse, error) {
	fields := []httputil.Field{{Name: "prompt", Value: opts.Prompt}}
	if opts.MaxTokens > 0 {
		fields = append(fields, httputil.Field{Name: "max_tokens", Value: strconv.Itoa(opts.MaxTokens)})
	}

	var out types.ProcessResponse
	if err := c.upload(ctx, opProcess, processPath, file, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParoleSummary uploads file to /pdf/parole-summary and returns the
// summary envelope with structured demographics.
func (c *Client) ParoleSummary(ctx context.Context, file types.UploadFile) (*types.ParoleSummaryResponse, error) {
	var out types.ParoleSummaryResponse
	if err := c.upload(ctx, opParoleSummary, paroleSummaryPath, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtractText uploads file to /pdf/extract-text and returns the raw text
// with the service's page and line markers.
func (c *Client) ExtractText(ctx context.Context, file types.UploadFile) (*types.ExtractTextResponse, error) {
	var out types.ExtractTextResponse
	if err := c.upload(ctx, opExtractText, extractTextPath, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health queries /health.
func (c *Client) Health(ctx context.Context) (*types.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return nil, err
	}
	var out types.HealthResponse
	if err := c.do(req, opHealth, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) upload(ctx context.Context, op operation, path string, file types.UploadFile, fields []httputil.Field, out any) error {
	req, err := httputil.NewMultipartRequest(ctx, c.baseURL+path, httputil.FormFile{
		Field:       "file",
		Filename:    file.Name,
		ContentType: pdfContentType,
		Content:     file.Content,
	}, fields...)
	if err != nil {
		return err
	}
	return c.do(req, op, out)
}

func (c *Client) do(req *http.Request, op operation, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log := c.logger.With(slog.String("op", op.name), slog.String("request_id", requestID))
	log.Debug("sending request", slog.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("no response from service", slog.String("error", err.Error()))
		return &networkError{cause: err}
	}
	defer resp.Body.Close()

	if !httputil.IsSuccess(resp) {
		apiErr := &APIError{Op: op.name, StatusCode: resp.StatusCode, Detail: op.failure}
		if detail := httputil.ErrorDetail(resp); detail != "" {
			apiErr.Detail = detail
			apiErr.Structured = true
		}
		log.Warn("service returned an error", slog.Int("status", resp.StatusCode), slog.String("detail", apiErr.Detail))
		return apiErr
	}

	if err := httputil.DecodeJSON(resp, out); err != nil {
		return err
	}
	log.Debug("request complete", slog.Int("status", resp.StatusCode))
	return nil
}

// IsNetwork reports whether err means the service could not be reached.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}
