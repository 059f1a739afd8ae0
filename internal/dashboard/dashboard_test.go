// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/parole-review/internal/apiclient"
	"github.com/pdiddy/parole-review/internal/casestore"
	"github.com/pdiddy/parole-review/internal/roster"
	"github.com/pdiddy/parole-review/pkg/types"
)

var fixedNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

const summaryBody = `{
  "success": true,
  "filename": "case.pdf",
  "file_size": 13,
  "extracted_text_length": 5120,
  "markdown_summary": "# Parole Hearing Summary\n- **Risk:** moderate",
  "summary_type": "parole_hearing_summary",
  "demographics": {"clientInfo": {"name": "", "cdcrNumber": "", "dateOfBirth": "", "contactInfo": ""}}
}`

func pdfFile(name string) types.UploadFile {
	content := []byte("%PDF-1.4 fake")
	return types.UploadFile{Name: name, Size: int64(len(content)), Content: content}
}

func demoState(t *testing.T) roster.State {
	t.Helper()
	records, err := roster.Demo()
	require.NoError(t, err)
	return roster.New(records)
}

// newService starts a fake summarization service and counts its calls.
func newService(t *testing.T, status int, body string) (*apiclient.Client, *int) {
	t.Helper()
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/pdf/parole-summary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return apiclient.New(types.ServiceConfig{BaseURL: ts.URL}, ts.Client()), &calls
}

func newStore(t *testing.T) *casestore.Store {
	t.Helper()
	s, err := casestore.Open(types.StoreConfig{Path: filepath.Join(t.TempDir(), "cases.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSubmitUpload_AddsAndPersistsRecord(t *testing.T) {
	ctx := context.Background()
	api, calls := newService(t, http.StatusOK, summaryBody)
	store := newStore(t)
	d := New(api, demoState(t), Options{Store: store, Now: func() time.Time { return fixedNow }})

	d.OpenUpload()
	d.ChooseFile(pdfFile("case.pdf"))
	require.True(t, d.Modal().CanSubmit())

	rec, submitted, err := d.SubmitUpload(ctx)
	require.NoError(t, err)
	assert.True(t, submitted)
	assert.Equal(t, 1, *calls)

	assert.Equal(t, 4, rec.ID)
	assert.Equal(t, "Client from case.pdf", rec.DisplayName())
	assert.Equal(t, "N/A", rec.Demographics.ClientInfo.CDCRNumber)
	assert.False(t, d.Modal().IsOpen())

	sel, ok := d.State().Selected()
	require.True(t, ok)
	assert.Equal(t, 4, sel.ID)
	assert.Equal(t, 4, d.State().Records()[0].ID)

	msg, ok := d.Notice()
	require.True(t, ok)
	assert.Equal(t, "Successfully processed case.pdf", msg)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, rec, stored[0])
	id, ok, err := store.SelectedID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, id)
}

func TestSubmitUpload_FailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	api, calls := newService(t, http.StatusInternalServerError, `{"detail": "Error processing PDF: model unavailable"}`)
	d := New(api, demoState(t), Options{Now: func() time.Time { return fixedNow }})
	before := d.State()

	d.OpenUpload()
	d.ChooseFile(pdfFile("case.pdf"))
	_, submitted, err := d.SubmitUpload(ctx)

	require.Error(t, err)
	assert.True(t, submitted)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "Error processing PDF: model unavailable", err.Error())

	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	assert.Equal(t, before.Records(), d.State().Records())
	assert.False(t, d.Modal().IsOpen())
	_, ok := d.Notice()
	assert.False(t, ok)
}

func TestSubmitUpload_WithoutFileDoesNothing(t *testing.T) {
	api, calls := newService(t, http.StatusOK, summaryBody)
	d := New(api, demoState(t), Options{})

	d.OpenUpload()
	_, submitted, err := d.SubmitUpload(context.Background())
	require.NoError(t, err)
	assert.False(t, submitted)
	assert.Zero(t, *calls)
	assert.True(t, d.Modal().IsOpen())

	d.CancelUpload()
	assert.False(t, d.Modal().IsOpen())
	_, submitted, err = d.SubmitUpload(context.Background())
	require.NoError(t, err)
	assert.False(t, submitted)
}

func TestNotice_ClearsAfterTTL(t *testing.T) {
	api, _ := newService(t, http.StatusOK, summaryBody)
	now := fixedNow
	d := New(api, demoState(t), Options{Now: func() time.Time { return now }})

	d.OpenUpload()
	d.ChooseFile(pdfFile("case.pdf"))
	_, _, err := d.SubmitUpload(context.Background())
	require.NoError(t, err)

	_, ok := d.Notice()
	assert.True(t, ok)
	now = now.Add(roster.NoticeTTL)
	_, ok = d.Notice()
	assert.False(t, ok)
}

func TestSelectAndSearch(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	d := New(nil, demoState(t), Options{Store: store})

	require.NoError(t, d.Select(ctx, 1))
	sel, _ := d.State().Selected()
	assert.Equal(t, "Sarah Johnson", sel.DisplayName())

	assert.ErrorIs(t, d.Select(ctx, 42), roster.ErrUnknownClient)
	sel, _ = d.State().Selected()
	assert.Equal(t, 1, sel.ID)

	rows := d.Search("SJ")
	require.Len(t, rows, 1)
	assert.Equal(t, "Sarah Johnson", rows[0].Name)
	assert.Equal(t, 3, d.State().Len())

	id, ok, err := store.SelectedID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	d := New(nil, demoState(t), Options{ExportDir: dir, Details: true, Now: func() time.Time { return fixedNow }})
	require.NoError(t, d.Select(context.Background(), 1))

	path, err := d.Export()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "parole_hearing_summary_Sarah_Johnson_1777627800000.pdf"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "%PDF"))
}

func TestExport_EmptyRoster(t *testing.T) {
	d := New(nil, roster.New(nil), Options{ExportDir: t.TempDir()})
	_, err := d.Export()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	d := New(nil, demoState(t), Options{ExportDir: dir, Now: func() time.Time { return fixedNow }})

	path, err := d.ExportAll()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "all_parole_cases_1777627800000.pdf"), path)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
