// SPDX-License-Identifier: MIT
// Package: mmseed/builder
//
// api.go — BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mmseed/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate early, return sentinel errors and
// never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts and applies
// cons in order. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ constructor cost.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
