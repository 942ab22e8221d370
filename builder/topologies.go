// SPDX-License-Identifier: MIT
// Package: mmseed/builder
//
// topologies.go — Path, Cycle, Star and Grid constructors.
//
// Vertices are added in ascending index order (row-major for Grid) and edges
// are emitted in a stable order, so repeated builds are identical.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mmseed/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodGrid  = "Grid"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
	minGridDim    = 1

	// StarCenter is the fixed ID of the hub added by Star.
	StarCenter = "Center"

	gridIDFmt = "%d,%d"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, n)
		if err := addVertices(g, cfg, methodPath, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := indexIDs(cfg, n)
		if err := addVertices(g, cfg, methodCycle, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds StarCenter plus n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := append([]string{StarCenter}, indexIDs(cfg, n-1)...)
		if err := addVertices(g, cfg, methodStar, ids); err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err := addEdge(g, methodStar, StarCenter, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid returns a Constructor that builds a rows×cols 4-neighborhood lattice
// with IDs "r,c". For each cell the right edge is emitted before the bottom.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := make([]string, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids = append(ids, GridID(r, c))
			}
		}
		if err := addVertices(g, cfg, methodGrid, ids); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, methodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

func indexIDs(cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
	}

	return ids
}
