// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dashboard drives the case review screen: the client roster,
// the upload dialog and PDF export. A Dashboard is not safe for
// concurrent use.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdiddy/parole-review/internal/export"
	"github.com/pdiddy/parole-review/internal/roster"
	"github.com/pdiddy/parole-review/internal/upload"
	"github.com/pdiddy/parole-review/pkg/types"
)

// ErrNoSelection is returned by Export when the roster is empty.
var ErrNoSelection = errors.New("no client selected")

// Summarizer turns an uploaded PDF into a parole hearing summary.
type Summarizer interface {
	ParoleSummary(ctx context.Context, file types.UploadFile) (*types.ParoleSummaryResponse, error)
}

// Store persists roster changes.
type Store interface {
	Save(ctx context.Context, r types.ClientRecord) error
	SetSelectedID(ctx context.Context, id int) error
}

// Options configures a Dashboard. All fields are optional.
type Options struct {
	// Store receives new records and selection changes. Nil keeps the
	// roster in memory only.
	Store Store

	// ExportDir is where exported PDFs are written. Defaults to ".".
	ExportDir string

	// Details appends the structured case sections to single-case exports.
	Details bool

	Now    func() time.Time
	Logger *slog.Logger
}

// Dashboard holds the roster and the upload dialog.
type Dashboard struct {
	api   Summarizer
	opts  Options
	state roster.State
	modal upload.Modal
}

// New returns a Dashboard showing state.
func New(api Summarizer, state roster.State, opts Options) *Dashboard {
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Dashboard{api: api, opts: opts, state: state}
}

// State returns the current roster.
func (d *Dashboard) State() roster.State { return d.state }

// Modal returns the upload dialog.
func (d *Dashboard) Modal() upload.Modal { return d.modal }

// Notice returns the transient notice, if still showing.
func (d *Dashboard) Notice() (string, bool) { return d.state.Notice(d.opts.Now()) }

// OpenUpload shows the upload dialog with nothing selected.
func (d *Dashboard) OpenUpload() { d.modal = d.modal.Open() }

// ChooseFile selects file in the open dialog.
func (d *Dashboard) ChooseFile(file types.UploadFile) { d.modal = d.modal.Select(file) }

// CancelUpload closes the dialog and drops the selection.
func (d *Dashboard) CancelUpload() { d.modal = d.modal.Cancel() }

// SubmitUpload sends the selected file for summarization. On success the
// new record is prepended, selected and persisted, and a notice is shown.
// On failure the roster is unchanged and the error is returned. The
// dialog closes either way. Without a selection nothing happens and
// submitted is false.
func (d *Dashboard) SubmitUpload(ctx context.Context) (rec types.ClientRecord, submitted bool, err error) {
	var added bool
	handler := func(ctx context.Context, file types.UploadFile) error {
		d.opts.Logger.Info("uploading", "file", file.Name, "bytes", file.Size)
		resp, err := d.api.ParoleSummary(ctx, file)
		if err != nil {
			return err
		}
		d.state, rec = d.state.WithUpload(*resp, d.opts.Now())
		added = true
		return nil
	}

	d.modal, submitted, err = d.modal.Submit(ctx, handler)
	if err != nil {
		d.opts.Logger.Warn("upload failed", "error", err)
		return types.ClientRecord{}, submitted, err
	}
	if !added {
		return types.ClientRecord{}, submitted, nil
	}

	d.opts.Logger.Info("processed", "file", rec.Filename, "client", rec.ID)
	if d.opts.Store != nil {
		if err := d.opts.Store.Save(ctx, rec); err != nil {
			return rec, true, fmt.Errorf("saving client %d: %w", rec.ID, err)
		}
		if err := d.opts.Store.SetSelectedID(ctx, rec.ID); err != nil {
			return rec, true, err
		}
	}
	return rec, true, nil
}

// Select makes the client with id the selected one.
func (d *Dashboard) Select(ctx context.Context, id int) error {
	next, err := d.state.Select(id)
	if err != nil {
		return err
	}
	d.state = next
	if d.opts.Store != nil {
		return d.opts.Store.SetSelectedID(ctx, id)
	}
	return nil
}

// Search filters the sidebar.
func (d *Dashboard) Search(text string) []types.SidebarClient {
	d.state = d.state.WithSearch(text)
	return d.state.Sidebar()
}

// Export writes the selected client's summary PDF and returns its path.
func (d *Dashboard) Export() (string, error) {
	r, ok := d.state.Selected()
	if !ok {
		return "", ErrNoSelection
	}
	now := d.opts.Now()
	e := export.RenderRecord(r, now)
	if d.opts.Details {
		e.AddCaseDetails(r.Demographics)
	}
	path, err := e.Save(d.opts.ExportDir, export.Filename(r.DisplayName(), now))
	if err != nil {
		return "", fmt.Errorf("exporting client %d: %w", r.ID, err)
	}
	d.opts.Logger.Info("exported", "client", r.ID, "path", path, "pages", e.Page())
	return path, nil
}

// ExportAll writes the roster summary PDF, one page per client, and
// returns its path.
func (d *Dashboard) ExportAll() (string, error) {
	now := d.opts.Now()
	records := d.state.Records()
	e := export.RenderAll(records, now)
	path, err := e.Save(d.opts.ExportDir, export.AllFilename(now))
	if err != nil {
		return "", fmt.Errorf("exporting roster: %w", err)
	}
	d.opts.Logger.Info("exported roster", "clients", len(records), "path", path)
	return path, nil
}
