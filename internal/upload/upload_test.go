// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/parole-review/pkg/types"
)

func sampleFile(name string) types.UploadFile {
	return types.UploadFile{Name: name, Size: 3, Content: []byte("pdf")}
}

// writePDF writes a real PDF with the given number of pages.
func writePDF(t *testing.T, dir, name string, pages int) string {
	t.Helper()
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for i := 0; i < pages; i++ {
		doc.AddPage()
		doc.Text(20, 20, "Board of Parole Hearings transcript")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestModal_StartsClosed(t *testing.T) {
	var m Modal
	assert.False(t, m.IsOpen())
	assert.False(t, m.CanSubmit())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModal_SelectReplacesSelection(t *testing.T) {
	m := Modal{}.Open()
	require.True(t, m.IsOpen())
	assert.False(t, m.CanSubmit(), "submit is disabled until a file is chosen")

	m = m.Select(sampleFile("first.pdf"))
	m = m.Select(sampleFile("second.pdf"))

	got, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "second.pdf", got.Name)
	assert.True(t, m.CanSubmit())
	assert.True(t, m.IsOpen())
}

func TestModal_SelectWhileClosedIgnored(t *testing.T) {
	m := Modal{}.Select(sampleFile("case.pdf"))
	assert.False(t, m.IsOpen())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestModal_TransitionsDoNotMutateReceiver(t *testing.T) {
	open := Modal{}.Open()
	withFile := open.Select(sampleFile("case.pdf"))

	_, ok := open.Selected()
	assert.False(t, ok)
	assert.True(t, withFile.CanSubmit())
}

func TestModal_CancelDiscardsSelection(t *testing.T) {
	m := Modal{}.Open().Select(sampleFile("case.pdf")).Cancel()
	assert.False(t, m.IsOpen())
	_, ok := m.Selected()
	assert.False(t, ok)

	// Reopening starts without a selection.
	m = m.Open()
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestModal_SubmitCallsHandlerOnce(t *testing.T) {
	for _, name := range []string{"a.pdf", "case.pdf", "transcript 2024.pdf"} {
		t.Run(name, func(t *testing.T) {
			var calls []types.UploadFile
			handler := func(_ context.Context, f types.UploadFile) error {
				calls = append(calls, f)
				return nil
			}

			m := Modal{}.Open().Select(sampleFile(name))
			next, submitted, err := m.Submit(context.Background(), handler)
			require.NoError(t, err)

			assert.True(t, submitted)
			require.Len(t, calls, 1)
			assert.Equal(t, name, calls[0].Name)
			assert.False(t, next.IsOpen())
			_, ok := next.Selected()
			assert.False(t, ok)
		})
	}
}

func TestModal_SubmitWithoutSelectionIsNoop(t *testing.T) {
	called := false
	handler := func(context.Context, types.UploadFile) error {
		called = true
		return nil
	}

	m := Modal{}.Open()
	next, submitted, err := m.Submit(context.Background(), handler)
	require.NoError(t, err)
	assert.False(t, submitted)
	assert.False(t, called)
	assert.True(t, next.IsOpen(), "dialog stays open")

	_, submitted, _ = Modal{}.Submit(context.Background(), handler)
	assert.False(t, submitted)
	assert.False(t, called)
}

func TestModal_SubmitHandlerErrorStillCloses(t *testing.T) {
	boom := errors.New("Failed to generate parole summary")
	m := Modal{}.Open().Select(sampleFile("case.pdf"))

	next, submitted, err := m.Submit(context.Background(), func(context.Context, types.UploadFile) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.True(t, submitted)
	assert.False(t, next.IsOpen())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		file    types.UploadFile
		maxSize int64
		wantErr bool
	}{
		{"valid", types.UploadFile{Name: "case.pdf", Size: 10}, 100, false},
		{"upper-case extension", types.UploadFile{Name: "CASE.PDF", Size: 10}, 100, false},
		{"no limit", types.UploadFile{Name: "case.pdf", Size: 1 << 40}, 0, false},
		{"wrong extension", types.UploadFile{Name: "case.docx", Size: 10}, 100, true},
		{"missing name", types.UploadFile{Size: 10}, 100, true},
		{"empty file", types.UploadFile{Name: "case.pdf"}, 100, true},
		{"too large", types.UploadFile{Name: "case.pdf", Size: 101}, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.file, tt.maxSize)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFile_RealPDF(t *testing.T) {
	dir := t.TempDir()
	path := writePDF(t, dir, "hearing.pdf", 3)

	file, err := LoadFile(path, types.DefaultMaxUploadSize)
	require.NoError(t, err)

	assert.Equal(t, "hearing.pdf", file.Name)
	assert.Equal(t, 3, file.Pages)
	assert.Equal(t, int64(len(file.Content)), file.Size)
	assert.Positive(t, file.Size)
}

func TestLoadFile_Rejects(t *testing.T) {
	dir := t.TempDir()

	notPDF := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(notPDF, []byte("just some text, not a pdf"), 0o644))

	wrongExt := writePDF(t, dir, "hearing.txt", 1)
	big := writePDF(t, dir, "big.pdf", 1)

	tests := []struct {
		name    string
		path    string
		maxSize int64
		wantMsg string
	}{
		{"missing file", filepath.Join(dir, "absent.pdf"), 1 << 20, "reading"},
		{"directory", dir, 1 << 20, "is a directory"},
		{"not a pdf", notPDF, 1 << 20, "not a readable PDF"},
		{"wrong extension", wrongExt, 1 << 20, "only PDF files are supported"},
		{"over limit", big, 16, "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path, tt.maxSize)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDescribe(t *testing.T) {
	f := types.UploadFile{Name: "case.pdf", Size: 3 * 1024 * 1024 / 2}
	assert.Equal(t, "Selected: case.pdf (1.50 MB)", Describe(f))
}
