// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProcessResponse is the success envelope of POST /pdf/process.
type ProcessResponse struct {
	Success             bool   `json:"success"`
	Filename            string `json:"filename"`
	FileSize            int64  `json:"file_size"`
	ExtractedTextLength int    `json:"extracted_text_length"`
	MarkdownSummary     string `json:"markdown_summary"`
	SummaryType         string `json:"summary_type"`
}

// ParoleSummaryResponse is the success envelope of POST /pdf/parole-summary.
type ParoleSummaryResponse struct {
	ProcessResponse
	Demographics Demographics `json:"demographics"`
}

// ExtractTextResponse is the success envelope of POST /pdf/extract-text.
type ExtractTextResponse struct {
	Success       bool   `json:"success"`
	Filename      string `json:"filename"`
	FileSize      int64  `json:"file_size"`
	ExtractedText string `json:"extracted_text"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"gemini_configured"`
}

// ErrorResponse is the body the service sends with non-2xx statuses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
