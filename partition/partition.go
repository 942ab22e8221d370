// SPDX-License-Identifier: MIT
// Package: mmseed/partition
//
// partition.go — Partition of a unit graph into districts, with named
// per-district aggregates ("updaters").

// Package partition assigns every unit of a core.Graph to an integer
// district and exposes what seeding needs from such an assignment: the
// district set, the cut edges between districts and named per-district
// aggregates such as population.
//
// A Partition is immutable after New. Aggregates are computed lazily and
// cached, so a single Partition may be shared by concurrent readers.
package partition

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/mmseed/bfs"
	"github.com/katalvlaran/mmseed/core"
)

// Sentinel errors for partition construction and queries.
var (
	// ErrNilGraph indicates New was called without a unit graph.
	ErrNilGraph = errors.New("partition: graph is nil")

	// ErrUnassignedUnit indicates a graph vertex has no district in the assignment.
	ErrUnassignedUnit = errors.New("partition: unit has no district")

	// ErrUnknownUnit indicates the assignment names a unit absent from the graph.
	ErrUnknownUnit = errors.New("partition: unit not in graph")

	// ErrUnknownUpdater indicates Aggregate was asked for an unregistered name.
	ErrUnknownUpdater = errors.New("partition: unknown updater")

	// ErrUnknownPart indicates a query referenced a district with no units.
	ErrUnknownPart = errors.New("partition: unknown district")
)

// CutEdge is a pair of adjacent units assigned to different districts.
type CutEdge struct {
	U, V string
}

// Updater computes one aggregate value per district.
type Updater func(p *Partition) (map[int]float64, error)

// Partition is a unit→district assignment over a unit graph.
type Partition struct {
	graph      *core.Graph
	assignment map[string]int
	parts      map[int][]string
	updaters   map[string]Updater

	mu    sync.Mutex
	cache map[string]map[int]float64
}

// New validates that assignment covers exactly the vertices of g and
// returns the Partition.
//
// Errors:
//   - ErrNilGraph, ErrUnassignedUnit, ErrUnknownUnit.
//
// Complexity: O(V·log V).
func New(g *core.Graph, assignment map[string]int, updaters map[string]Updater) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	units := g.Vertices()
	if len(assignment) != len(units) {
		for unit := range assignment {
			if !g.HasVertex(unit) {
				return nil, fmt.Errorf("New: %q: %w", unit, ErrUnknownUnit)
			}
		}
	}

	p := &Partition{
		graph:      g,
		assignment: make(map[string]int, len(units)),
		parts:      make(map[int][]string),
		updaters:   make(map[string]Updater, len(updaters)),
		cache:      make(map[string]map[int]float64),
	}
	for _, unit := range units {
		part, ok := assignment[unit]
		if !ok {
			return nil, fmt.Errorf("New: %q: %w", unit, ErrUnassignedUnit)
		}
		p.assignment[unit] = part
		p.parts[part] = append(p.parts[part], unit)
	}
	for name, fn := range updaters {
		if fn != nil {
			p.updaters[name] = fn
		}
	}

	return p, nil
}

// Singletons returns an assignment placing every unit in its own district,
// numbered 0..V-1 in sorted unit order.
func Singletons(g *core.Graph) map[string]int {
	units := g.Vertices()
	out := make(map[string]int, len(units))
	for i, unit := range units {
		out[unit] = i
	}

	return out
}

// Graph returns the underlying unit graph.
func (p *Partition) Graph() *core.Graph { return p.graph }

// Assignment returns a copy of the unit→district mapping.
func (p *Partition) Assignment() map[string]int {
	out := make(map[string]int, len(p.assignment))
	for unit, part := range p.assignment {
		out[unit] = part
	}

	return out
}

// District returns the district of unit.
func (p *Partition) District(unit string) (int, bool) {
	part, ok := p.assignment[unit]
	return part, ok
}

// Parts returns the district ids sorted ascending.
func (p *Partition) Parts() []int {
	out := make([]int, 0, len(p.parts))
	for part := range p.parts {
		out = append(out, part)
	}
	sort.Ints(out)

	return out
}

// Len returns the number of districts.
func (p *Partition) Len() int { return len(p.parts) }

// Members returns the units of part sorted ascending.
func (p *Partition) Members(part int) []string {
	members := p.parts[part]
	out := make([]string, len(members))
	copy(out, members)

	return out
}

// Updaters returns a copy of the registered updater set.
func (p *Partition) Updaters() map[string]Updater {
	out := make(map[string]Updater, len(p.updaters))
	for name, fn := range p.updaters {
		out[name] = fn
	}

	return out
}

// CutEdges returns the unit pairs whose endpoints lie in different
// districts, in core.Graph.Edges order.
// Complexity: O(E·log E).
func (p *Partition) CutEdges() []CutEdge {
	var out []CutEdge
	for _, e := range p.graph.Edges() {
		if p.assignment[e.From] != p.assignment[e.To] {
			out = append(out, CutEdge{U: e.From, V: e.To})
		}
	}

	return out
}

// Aggregate evaluates the updater registered as name. Results are cached
// per Partition; callers receive a copy.
//
// The updater runs without p's lock held, so it may read other aggregates
// of p. Concurrent first calls may each run the updater; the first result
// stored is the one every caller sees.
func (p *Partition) Aggregate(name string) (map[int]float64, error) {
	p.mu.Lock()
	cached, ok := p.cache[name]
	p.mu.Unlock()
	if ok {
		return copyAggregate(cached), nil
	}

	fn, ok := p.updaters[name]
	if !ok {
		return nil, fmt.Errorf("Aggregate(%s): %w", name, ErrUnknownUpdater)
	}
	vals, err := fn(p)
	if err != nil {
		return nil, fmt.Errorf("Aggregate(%s): %w", name, err)
	}

	p.mu.Lock()
	if prev, ok := p.cache[name]; ok {
		vals = prev
	} else {
		p.cache[name] = vals
	}
	p.mu.Unlock()

	return copyAggregate(vals), nil
}

// Reassign builds a new Partition over the same graph and updaters.
func (p *Partition) Reassign(assignment map[string]int) (*Partition, error) {
	return New(p.graph, assignment, p.updaters)
}

// Contiguous reports whether the units of part form one connected piece
// of the unit graph.
func (p *Partition) Contiguous(ctx context.Context, part int) (bool, error) {
	members := p.parts[part]
	if len(members) == 0 {
		return false, fmt.Errorf("Contiguous(%d): %w", part, ErrUnknownPart)
	}
	seen, err := bfs.Within(ctx, p.graph, members[0], func(id string) bool {
		return p.assignment[id] == part
	})
	if err != nil {
		return false, fmt.Errorf("Contiguous(%d): %w", part, err)
	}

	return len(seen) == len(members), nil
}

// Disconnected returns the districts that are not contiguous, ascending.
// Complexity: O(V + E) over all districts.
func (p *Partition) Disconnected(ctx context.Context) ([]int, error) {
	var out []int
	for _, part := range p.Parts() {
		ok, err := p.Contiguous(ctx, part)
		if err != nil {
			return nil, err
		}
		if !ok {
			out = append(out, part)
		}
	}

	return out, nil
}

func copyAggregate(in map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
