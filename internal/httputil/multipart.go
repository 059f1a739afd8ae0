// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the service clients:
// multipart request construction and response envelope decoding.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Field is a plain text form field.
type Field struct {
	Name  string
	Value string
}

// FormFile is a binary form part.
type FormFile struct {
	// Field is the form field name, e.g. "file".
	Field string

	// Filename is reported in the part's Content-Disposition.
	Filename string

	// ContentType defaults to application/octet-stream.
	ContentType string

	Content []byte
}

// NewMultipartRequest builds a POST request whose body is a
// multipart/form-data encoding of file followed by fields, in order.
// Empty-valued fields are omitted.
func NewMultipartRequest(ctx context.Context, url string, file FormFile, fields ...Field) (*http.Request, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(file.Field), escapeQuotes(file.Filename)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, fmt.Errorf("writing file part: %w", err)
	}

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if err := mw.WriteField(f.Name, f.Value); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req, nil
}

// IsSuccess reports whether resp carries a 2xx status.
func IsSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// DecodeJSON decodes the response body into v.
func DecodeJSON(resp *http.Response, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}
	return nil
}

// ErrorDetail returns the "detail" string of a JSON error body, or ""
// when the body is empty, not JSON, or has no string detail.
func ErrorDetail(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	detail, ok := envelope.Detail.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(detail)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
