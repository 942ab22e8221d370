// Package builder assembles deterministic unit graphs for tests, examples
// and synthetic seeding runs.
//
// One orchestrator, BuildGraph, creates a core.Graph, resolves the builder
// options and applies Constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{
//	        builder.WithSeed(42),
//	        builder.WithRandomAttr("population", 900, 1100),
//	    },
//	    builder.Grid(4, 6),
//	)
//
// Topologies:
//
//	Path(n)        — u0–u1–…–u(n-1), n ≥ 2
//	Cycle(n)       — closed ring, n ≥ 3
//	Star(n)        — "Center" plus n-1 leaves, n ≥ 2
//	Grid(rows,cols)— 4-neighborhood lattice with IDs "r,c"
//
// Attributes:
//
//	WithUniformAttr(key, v)      — every vertex gets v
//	WithRandomAttr(key, lo, hi)  — uniform draw in [lo,hi); needs WithSeed/WithRand
//
// Determinism: the same options, seed and constructor order yield identical
// graphs and attribute values. Constructors never panic; option
// constructors panic on meaningless values.
package builder
