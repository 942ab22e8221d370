// SPDX-License-Identifier: MIT
// Package: mmseed/partition
//
// updaters.go — stock aggregate functions.

package partition

import (
	"errors"
	"fmt"
)

// ErrMissingAttr indicates a unit lacks a numeric attribute a Tally needs.
var ErrMissingAttr = errors.New("partition: missing numeric attribute")

// PopulationKey is the conventional updater and attribute name for population.
const PopulationKey = "population"

// Tally returns an Updater summing the numeric vertex attribute attr over
// the units of each district.
func Tally(attr string) Updater {
	return func(p *Partition) (map[int]float64, error) {
		out := make(map[int]float64, len(p.parts))
		for part, units := range p.parts {
			var sum float64
			for _, unit := range units {
				v, ok := p.graph.Float(unit, attr)
				if !ok {
					return nil, fmt.Errorf("Tally(%s): unit %q: %w", attr, unit, ErrMissingAttr)
				}
				sum += v
			}
			out[part] = sum
		}

		return out, nil
	}
}

// Count is an Updater reporting the number of units per district.
func Count(p *Partition) (map[int]float64, error) {
	out := make(map[int]float64, len(p.parts))
	for part, units := range p.parts {
		out[part] = float64(len(units))
	}

	return out, nil
}
