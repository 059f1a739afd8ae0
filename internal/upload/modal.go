// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upload holds the upload dialog state machine and local checks
// on the files chosen for upload.
package upload

import (
	"context"

	"github.com/pdiddy/parole-review/pkg/types"
)

// Handler receives the selected file when the dialog is submitted.
type Handler func(ctx context.Context, file types.UploadFile) error

// Modal is the upload dialog. It is a value: every transition returns
// the next state and leaves the receiver untouched. The zero Modal is
// closed with nothing selected.
//
//	closed --Open--> open
//	open --Select--> open (selection replaced)
//	open --Cancel--> closed (selection discarded)
//	open --Submit[file selected]--> closed (handler called once)
type Modal struct {
	open     bool
	selected *types.UploadFile
}

// IsOpen reports whether the dialog is shown.
func (m Modal) IsOpen() bool { return m.open }

// Selected returns the chosen file, if any.
func (m Modal) Selected() (types.UploadFile, bool) {
	if m.selected == nil {
		return types.UploadFile{}, false
	}
	return *m.selected, true
}

// CanSubmit reports whether the submit control is enabled.
func (m Modal) CanSubmit() bool {
	return m.open && m.selected != nil
}

// Open shows the dialog with no selection.
func (m Modal) Open() Modal {
	if m.open {
		return m
	}
	return Modal{open: true}
}

// Select replaces the selection. Selecting while closed has no effect.
func (m Modal) Select(file types.UploadFile) Modal {
	if !m.open {
		return m
	}
	f := file
	return Modal{open: true, selected: &f}
}

// Cancel discards the selection and closes the dialog.
func (m Modal) Cancel() Modal {
	return Modal{}
}

// Submit calls handler with the selected file exactly once, then
// returns a closed dialog with no selection. The handler's error is
// returned as is; the dialog closes either way. Without a selection
// Submit is a no-op and reports submitted=false.
func (m Modal) Submit(ctx context.Context, handler Handler) (next Modal, submitted bool, err error) {
	if !m.CanSubmit() {
		return m, false, nil
	}
	file := *m.selected
	if handler != nil {
		err = handler(ctx, file)
	}
	return Modal{}, true, err
}
