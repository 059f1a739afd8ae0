// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/parole-review/pkg/types"
)

//go:embed seed.yaml
var seedYAML []byte

// Demo returns the demonstration roster shown before any upload, newest
// first.
func Demo() ([]types.ClientRecord, error) {
	var records []types.ClientRecord
	if err := yaml.Unmarshal(seedYAML, &records); err != nil {
		return nil, fmt.Errorf("parsing demo roster: %w", err)
	}
	return records, nil
}
