// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// remap.go — contracted district graph back to a unit partition.

package seed

import (
	"fmt"

	"github.com/katalvlaran/mmseed/partition"
)

// Remap assigns every unit of p the index, in ascending node-id order, of
// the contracted node whose Children contain the unit's current district.
// The result shares p's unit graph and updaters. Remap is pure: the same
// inputs always yield the same assignment.
//
// Errors:
//   - ErrNilSource, ErrNilGraph for nil inputs.
//   - ErrInvalidContraction if some district of p has no node in g.
func Remap(p *partition.Partition, g *DistrictGraph) (*partition.Partition, error) {
	if p == nil {
		return nil, ErrNilSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	index := make(map[int]int, g.Children())
	for idx, children := range g.Groups() {
		for _, child := range children {
			index[child] = idx
		}
	}

	current := p.Assignment()
	assignment := make(map[string]int, len(current))
	for unit, district := range current {
		idx, ok := index[district]
		if !ok {
			return nil, fmt.Errorf("Remap: district %d: %w", district, ErrInvalidContraction)
		}
		assignment[unit] = idx
	}

	seeded, err := p.Reassign(assignment)
	if err != nil {
		return nil, fmt.Errorf("Remap: %w", err)
	}

	return seeded, nil
}
