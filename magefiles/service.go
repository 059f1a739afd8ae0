//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Service groups targets that talk to a running summarization service.
type Service mg.Namespace

// Health builds the CLI and checks that the configured service is up.
func (Service) Health() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "health")
}

// Upload builds the CLI, uploads the PDF at path and exports the summary.
func (Service) Upload(path string) error {
	mg.Deps(Build)
	if err := sh.RunV(filepath.Join(binDir, binName), "upload", "--export", path); err != nil {
		return fmt.Errorf("uploading %s: %w", path, err)
	}
	return nil
}
