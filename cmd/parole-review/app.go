// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pdiddy/parole-review/internal/apiclient"
	"github.com/pdiddy/parole-review/internal/casestore"
	"github.com/pdiddy/parole-review/internal/dashboard"
	"github.com/pdiddy/parole-review/internal/roster"
	"github.com/pdiddy/parole-review/pkg/types"
)

// app bundles what a command needs: the validated config, the service
// client, the case store and the roster loaded from it.
type app struct {
	cfg   types.AppConfig
	api   *apiclient.Client
	store *casestore.Store
	state roster.State
}

// openApp loads configuration, opens the case store (seeding the demo
// roster into an empty one when enabled) and restores the persisted
// selection. Callers must call close.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := casestore.Open(cfg.Store)
	if err != nil {
		return nil, err
	}

	if cfg.Store.SeedDemo {
		demo, err := roster.Demo()
		if err != nil {
			store.Close()
			return nil, err
		}
		n, err := store.Seed(ctx, demo)
		if err != nil {
			store.Close()
			return nil, err
		}
		if n > 0 {
			slog.Debug("seeded demo roster", slog.Int("clients", n))
		}
	}

	records, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	state := roster.New(records)
	if id, ok, err := store.SelectedID(ctx); err != nil {
		store.Close()
		return nil, err
	} else if ok {
		// A stale selection falls back to the newest client.
		if next, err := state.Select(id); err == nil {
			state = next
		}
	}

	return &app{cfg: cfg, api: newAPIClient(cfg), store: store, state: state}, nil
}

func newAPIClient(cfg types.AppConfig) *apiclient.Client {
	return apiclient.New(cfg.API, nil).WithLogger(slog.Default())
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("closing case store", slog.String("error", err.Error()))
	}
}

// dashboard returns a Dashboard over the loaded roster that summarizes
// uploads with s.
func (a *app) dashboard(s dashboard.Summarizer, exportDir string, details bool) *dashboard.Dashboard {
	if exportDir == "" {
		exportDir = a.cfg.Export.Dir
	}
	return dashboard.New(s, a.state, dashboard.Options{
		Store:     a.store,
		ExportDir: exportDir,
		Details:   details || a.cfg.Export.Details,
		Logger:    slog.Default(),
	})
}

// processSummarizer adapts the general /pdf/process endpoint to the
// dashboard. Its responses carry no demographics, so the roster fills in
// placeholder identity fields.
type processSummarizer struct {
	api  *apiclient.Client
	opts apiclient.ProcessOptions
}

func (p processSummarizer) ParoleSummary(ctx context.Context, file types.UploadFile) (*types.ParoleSummaryResponse, error) {
	resp, err := p.api.ProcessPDF(ctx, file, p.opts)
	if err != nil {
		return nil, err
	}
	return &types.ParoleSummaryResponse{ProcessResponse: *resp}, nil
}

// selectedOrArg resolves the client a command acts on: the id given on
// the command line, or the current selection.
func selectedOrArg(state roster.State, args []string) (types.ClientRecord, error) {
	if len(args) == 0 {
		r, ok := state.Selected()
		if !ok {
			return types.ClientRecord{}, dashboard.ErrNoSelection
		}
		return r, nil
	}
	id, err := parseID(args[0])
	if err != nil {
		return types.ClientRecord{}, err
	}
	r, ok := state.Record(id)
	if !ok {
		return types.ClientRecord{}, fmt.Errorf("%w: %d", roster.ErrUnknownClient, id)
	}
	return r, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid client id %q", s)
	}
	return id, nil
}
