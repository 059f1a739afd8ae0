// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package casestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/parole-review/internal/roster"
	"github.com/pdiddy/parole-review/pkg/types"
)

// ExportEntry is one record as written by ExportYAML and ExportJSON.
type ExportEntry struct {
	types.ClientRecord `yaml:",inline"`
	Status             string `json:"status" yaml:"status"`
}

// ExportYAML writes every stored record to w as a YAML list, newest first.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes every stored record to w as an indented JSON array,
// newest first.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	entries := make([]ExportEntry, len(records))
	for i, r := range records {
		entries[i] = ExportEntry{ClientRecord: r, Status: roster.Project(r).Status}
	}
	return entries, nil
}
