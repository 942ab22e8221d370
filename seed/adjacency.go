// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// adjacency.go — district adjacency graph from a unit partition.

package seed

import (
	"fmt"

	"github.com/katalvlaran/mmseed/partition"
)

// DistrictSource is the read-only view of a unit partition the builder needs.
// *partition.Partition satisfies it.
type DistrictSource interface {
	Assignment() map[string]int
	CutEdges() []partition.CutEdge
	Aggregate(name string) (map[int]float64, error)
}

// DistrictAdjacency forms the district adjacency graph of src. Every
// district present in the assignment or in the popKey aggregate becomes a
// node whose Population is its aggregate value and whose Children is [id].
// Two districts are adjacent iff a cut edge joins them.
//
// Errors:
//   - ErrNilSource if src is nil.
//   - the wrapped Aggregate error if popKey cannot be evaluated.
//
// Complexity: O(U + C) for U units and C cut edges.
func DistrictAdjacency(src DistrictSource, popKey string) (*DistrictGraph, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	pops, err := src.Aggregate(popKey)
	if err != nil {
		return nil, fmt.Errorf("DistrictAdjacency: %w", err)
	}
	assignment := src.Assignment()

	g := NewDistrictGraph()
	for _, part := range assignment {
		if _, ok := g.nodes[part]; !ok {
			_ = g.AddNode(part, pops[part])
		}
	}
	for part, pop := range pops {
		if _, ok := g.nodes[part]; !ok {
			_ = g.AddNode(part, pop)
		}
	}
	for _, e := range src.CutEdges() {
		a, b := assignment[e.U], assignment[e.V]
		if a == b {
			continue
		}
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("DistrictAdjacency: cut edge %s-%s: %w", e.U, e.V, err)
		}
	}

	return g, nil
}
