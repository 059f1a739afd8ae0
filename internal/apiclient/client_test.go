// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/parole-review/pkg/types"
)

func testFile() types.UploadFile {
	content := []byte("%PDF-1.4 fake")
	return types.UploadFile{Name: "case.pdf", Size: int64(len(content)), Content: content}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(types.ServiceConfig{BaseURL: ts.URL + "/", UserAgent: "parole-review/test"}, ts.Client())
}

const paroleBody = `{
  "success": true,
  "filename": "case.pdf",
  "file_size": 13,
  "extracted_text_length": 5120,
  "markdown_summary": "# Parole Hearing Summary\n- **Inmate**: Emmanuel Young",
  "summary_type": "parole_hearing_summary",
  "demographics": {
    "clientInfo": {"name": "Emmanuel Young", "cdcrNumber": "AK2960", "dateOfBirth": "", "contactInfo": ""},
    "introduction": {"shortSummary": "Second-degree murder, 15 years to life."},
    "evidenceUsedToConvict": ["Eyewitness testimony"],
    "convictionInfo": {"charges": "PC 187", "sentenceLength": "15 to life"},
    "appealInfo": {"habenasFilings": ["2019 petition denied"]},
    "attorneyInfo": {
      "currentAttorneyForIncarceratedPerson": {"name": "A. Lawyer", "presentAtHearing": true},
      "otherLegalRepresentation": [{"name": "Innocence Project", "role": "advocate"}]
    }
  }
}`

func TestProcessPDF_Success(t *testing.T) {
	var path, prompt, maxTokens, fileName, contentType, userAgent, requestID string
	var fileBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		userAgent = r.Header.Get("User-Agent")
		requestID = r.Header.Get("X-Request-ID")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		fileBody, _ = io.ReadAll(f)
		fileName = hdr.Filename
		contentType = hdr.Header.Get("Content-Type")
		prompt = r.FormValue("prompt")
		maxTokens = r.FormValue("max_tokens")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"filename":"case.pdf","file_size":13,"extracted_text_length":42,"markdown_summary":"## Offense Context","summary_type":"parole_hearing_analysis"}`)
	})

	resp, err := c.ProcessPDF(context.Background(), testFile(), ProcessOptions{Prompt: "Summarize", MaxTokens: 2000})
	require.NoError(t, err)

	assert.Equal(t, "/pdf/process", path)
	assert.Equal(t, "case.pdf", fileName)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), fileBody)
	assert.Equal(t, "Summarize", prompt)
	assert.Equal(t, "2000", maxTokens)
	assert.Equal(t, "parole-review/test", userAgent)
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "X-Request-ID should be a UUID")

	assert.True(t, resp.Success)
	assert.Equal(t, int64(13), resp.FileSize)
	assert.Equal(t, 42, resp.ExtractedTextLength)
	assert.Equal(t, "## Offense Context", resp.MarkdownSummary)
	assert.Equal(t, types.SummaryParoleAnalysis, resp.SummaryType)
}

func TestProcessPDF_OptionalFieldsOmitted(t *testing.T) {
	var fields map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = r.MultipartForm.Value
		io.WriteString(w, `{"success":true}`)
	})

	_, err := c.ProcessPDF(context.Background(), testFile(), ProcessOptions{})
	require.NoError(t, err)
	assert.NotContains(t, fields, "prompt")
	assert.NotContains(t, fields, "max_tokens")
}

func TestParoleSummary_DecodesDemographics(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		io.WriteString(w, paroleBody)
	})

	resp, err := c.ParoleSummary(context.Background(), testFile())
	require.NoError(t, err)

	assert.Equal(t, "/pdf/parole-summary", path)
	assert.Equal(t, "case.pdf", resp.Filename)
	assert.Equal(t, 5120, resp.ExtractedTextLength)
	d := resp.Demographics
	assert.Equal(t, "Emmanuel Young", d.ClientInfo.Name)
	assert.Equal(t, "AK2960", d.ClientInfo.CDCRNumber)
	assert.Equal(t, []string{"Eyewitness testimony"}, d.EvidenceUsedToConvict)
	assert.Equal(t, []string{"2019 petition denied"}, d.AppealInfo.HabeasFilings)
	assert.True(t, d.AttorneyInfo.Current.PresentAtHearing)
	require.Len(t, d.AttorneyInfo.Other, 1)
	assert.Equal(t, "advocate", d.AttorneyInfo.Other[0].Role)
}

func TestUpload_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		call       func(*Client) error
		wantMsg    string
		structured bool
	}{
		{
			name:   "structured detail is surfaced verbatim",
			status: http.StatusBadRequest,
			body:   `{"detail":"Only PDF files are supported"}`,
			call: func(c *Client) error {
				_, err := c.ParoleSummary(context.Background(), testFile())
				return err
			},
			wantMsg:    "Only PDF files are supported",
			structured: true,
		},
		{
			name:   "no body on process falls back to generic message",
			status: http.StatusInternalServerError,
			body:   ``,
			call: func(c *Client) error {
				_, err := c.ProcessPDF(context.Background(), testFile(), ProcessOptions{})
				return err
			},
			wantMsg: "Failed to process PDF",
		},
		{
			name:   "html body on parole summary falls back to generic message",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			call: func(c *Client) error {
				_, err := c.ParoleSummary(context.Background(), testFile())
				return err
			},
			wantMsg: "Failed to generate parole summary",
		},
		{
			name:   "validation list is not a structured detail",
			status: http.StatusUnprocessableEntity,
			body:   `{"detail":[{"msg":"field required"}]}`,
			call: func(c *Client) error {
				_, err := c.ExtractText(context.Background(), testFile())
				return err
			},
			wantMsg: "Failed to extract text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			err := tt.call(c)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.False(t, IsNetwork(err))

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.structured, apiErr.Structured)
		})
	}
}

func TestUpload_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := New(types.ServiceConfig{BaseURL: url}, nil)
	_, err := c.ParoleSummary(context.Background(), testFile())
	require.Error(t, err)

	assert.True(t, IsNetwork(err))
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "Network error: Unable to connect to server", err.Error())

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestUpload_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ProcessPDF(ctx, testFile(), ProcessOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpload_InvalidSuccessBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"success": tru`)
	})

	_, err := c.ProcessPDF(context.Background(), testFile(), ProcessOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing response body")
	assert.False(t, IsNetwork(err))
}

func TestHealth(t *testing.T) {
	var method, path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		io.WriteString(w, `{"status":"healthy","gemini_configured":false}`)
	})

	resp, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, "/health", path)
	assert.Equal(t, "healthy", resp.Status)
	assert.False(t, resp.GeminiConfigured)
}

func TestNew_DefaultsBaseURL(t *testing.T) {
	c := New(types.ServiceConfig{}, nil)
	assert.Equal(t, types.DefaultBaseURL, c.BaseURL())

	c = New(types.ServiceConfig{BaseURL: "https://review.example.org/api/"}, nil)
	assert.Equal(t, "https://review.example.org/api", c.BaseURL())
}
