// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/parole-review/pkg/types"
)

// LoadFile reads the PDF at path, validates it against maxSize and
// counts its pages. Files that are not PDFs are rejected here so they
// never reach the service.
func LoadFile(path string, maxSize int64) (types.UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return types.UploadFile{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return types.UploadFile{}, fmt.Errorf("%s is a directory", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return types.UploadFile{}, fmt.Errorf("%s: file size exceeds %s limit", path, formatMB(maxSize))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return types.UploadFile{}, fmt.Errorf("reading %s: %w", path, err)
	}

	file := types.UploadFile{
		Name:    filepath.Base(path),
		Size:    int64(len(content)),
		Content: content,
	}
	if err := Validate(file, maxSize); err != nil {
		return types.UploadFile{}, fmt.Errorf("%s: %w", path, err)
	}

	pages, err := CountPages(content)
	if err != nil {
		return types.UploadFile{}, fmt.Errorf("%s: %w", path, err)
	}
	file.Pages = pages
	return file, nil
}

// Validate checks the name and size of file. A non-positive maxSize
// disables the size limit.
func Validate(file types.UploadFile, maxSize int64) error {
	sizeRules := []validation.Rule{validation.Required.Error("file is empty")}
	if maxSize > 0 {
		sizeRules = append(sizeRules, validation.Max(maxSize).Error("exceeds the "+formatMB(maxSize)+" limit"))
	}
	return validation.ValidateStruct(&file,
		validation.Field(&file.Name, validation.Required, validation.By(pdfExtension)),
		validation.Field(&file.Size, sizeRules...),
	)
}

// CountPages parses content as a PDF and returns its page count.
func CountPages(content []byte) (pages int, err error) {
	// The parser panics on some truncated inputs.
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("not a readable PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("not a readable PDF: %w", err)
	}
	return r.NumPage(), nil
}

// Describe renders the selection line shown after a file is chosen.
func Describe(file types.UploadFile) string {
	return fmt.Sprintf("Selected: %s (%.2f MB)", file.Name, float64(file.Size)/1024/1024)
}

func pdfExtension(value any) error {
	name, _ := value.(string)
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return fmt.Errorf("only PDF files are supported")
	}
	return nil
}

func formatMB(n int64) string {
	const mb = 1024 * 1024
	if n < mb || n%mb != 0 {
		return fmt.Sprintf("%d byte", n)
	}
	return fmt.Sprintf("%dMB", n/mb)
}
