// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount/NeighborIDs.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To, ID).
//   - NeighborIDs() returns unique neighbor IDs sorted ascending.

package core

import (
	"sort"
	"strconv"
)

// edgeIDPrefix keeps edge identifiers human-readable: "e1", "e2", …
const edgeIDPrefix = "e"

// AddEdge connects from and to with an undirected edge, creating missing
// endpoints on the fly.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Lock, ensure endpoints, check the multi-edge constraint.
//  3. Generate the edge ID, store the edge and mirror adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.link(from, to, eid)
	if from != to {
		g.link(to, from, eid)
	}

	return eid, nil
}

// link records eid under adjacency[u][v]. Caller holds g.mu.
func (g *Graph) link(u, v, eid string) {
	bucket, ok := g.adjacency[u][v]
	if !ok {
		bucket = make(map[string]struct{})
		g.adjacency[u][v] = bucket
	}
	bucket[eid] = struct{}{}
}

// HasEdge reports whether at least one edge joins from and to.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// NeighborIDs returns the unique neighbors of id sorted ascending.
// A self-loop lists id itself.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	row, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(row))
	for nbr, eids := range row {
		if len(eids) > 0 {
			out = append(out, nbr)
		}
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out, nil
}

// Edges returns copies of all edges sorted by (From, To, ID).
// Complexity: O(E·log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		cp := *e
		out = append(out, &cp)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
