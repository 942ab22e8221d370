// Package mmseed builds starting plans for multi-member districting.
//
// Given a plan of single-member districts over a unit graph and a multiset
// of group sizes, mmseed merges adjacent districts into connected groups of
// exactly those sizes and reports each group's seat count,
// round(population / seat target).
//
// Layout:
//
//	core/       — thread-safe undirected unit graph with per-vertex attributes
//	bfs/        — breadth-first traversal used for contiguity checks
//	partition/  — unit→district assignment, cut edges, cached aggregates
//	builder/    — deterministic fixture topologies (path, cycle, star, grid)
//	seed/       — district adjacency, randomized contraction, remap, seats, batch runs
//	dataset/    — JSON plans in and out
//	store/      — SQLite history of seeding runs
//	cmd/mmseed/ — command line front end
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithUniformAttr(partition.PopulationKey, 1000)},
//	    builder.Grid(4, 6))
//	p, _ := partition.New(g, partition.Singletons(g), map[string]partition.Updater{
//	    partition.PopulationKey: partition.Tally(partition.PopulationKey),
//	})
//	res, err := seed.Seed(p, partition.PopulationKey, []int{4, 4, 4, 4, 4, 4}, 4000,
//	    seed.WithSeed(7))
//
// Seeding is randomized but reproducible: the same inputs and seed give the
// same plan. Failure to find a plan within the configured budgets is an
// ordinary error (seed.ErrSeedingExhausted), not a panic.
package mmseed
