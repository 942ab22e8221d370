// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// graph.go — DistrictGraph: mutable district adjacency with node contraction.
//
// Determinism:
//   - NodeIDs() and Neighbors() return ids sorted ascending.

package seed

import (
	"fmt"
	"sort"
)

// DistrictNode is one node of the district graph.
//
// Children lists the original single-member districts the node stands for;
// a fresh node's Children is [ID].
type DistrictNode struct {
	ID         int
	Population float64
	Children   []int
}

// DistrictGraph is an undirected simple graph of districts indexed by
// stable integer ids. It is not safe for concurrent mutation; Contract
// only ever mutates private clones.
type DistrictGraph struct {
	nodes map[int]*DistrictNode
	adj   map[int]map[int]struct{}
}

// NewDistrictGraph returns an empty graph.
func NewDistrictGraph() *DistrictGraph {
	return &DistrictGraph{
		nodes: make(map[int]*DistrictNode),
		adj:   make(map[int]map[int]struct{}),
	}
}

// AddNode inserts district id with the given population and Children [id].
//
// Errors:
//   - ErrDuplicateNode if id is already present.
func (g *DistrictGraph) AddNode(id int, population float64) error {
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = &DistrictNode{ID: id, Population: population, Children: []int{id}}
	g.adj[id] = make(map[int]struct{})

	return nil
}

// AddEdge joins a and b. Re-adding an existing edge is a no-op.
//
// Errors:
//   - ErrSelfLoop if a == b.
//   - ErrUnknownNode if either endpoint is missing.
func (g *DistrictGraph) AddEdge(a, b int) error {
	if a == b {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrSelfLoop)
	}
	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrUnknownNode)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, ErrUnknownNode)
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}

	return nil
}

// HasEdge reports whether a and b are adjacent.
func (g *DistrictGraph) HasEdge(a, b int) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Len returns the number of nodes.
func (g *DistrictGraph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges.
func (g *DistrictGraph) EdgeCount() int {
	n := 0
	for _, row := range g.adj {
		n += len(row)
	}

	return n / 2
}

// Node returns a copy of node id.
func (g *DistrictGraph) Node(id int) (DistrictNode, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return DistrictNode{}, false
	}
	cp := *n
	cp.Children = append([]int(nil), n.Children...)

	return cp, true
}

// NodeIDs returns node ids sorted ascending.
func (g *DistrictGraph) NodeIDs() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Neighbors returns the neighbors of id sorted ascending (nil if id is absent).
func (g *DistrictGraph) Neighbors(id int) []int {
	row, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(row))
	for nbr := range row {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out
}

// Children returns the total number of original districts represented.
func (g *DistrictGraph) Children() int {
	n := 0
	for _, node := range g.nodes {
		n += len(node.Children)
	}

	return n
}

// Groups returns each node's children in NodeIDs order. Index i of the
// result is the district index Remap assigns.
func (g *DistrictGraph) Groups() [][]int {
	ids := g.NodeIDs()
	out := make([][]int, len(ids))
	for i, id := range ids {
		out[i] = append([]int(nil), g.nodes[id].Children...)
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(n + m).
func (g *DistrictGraph) Clone() *DistrictGraph {
	c := &DistrictGraph{
		nodes: make(map[int]*DistrictNode, len(g.nodes)),
		adj:   make(map[int]map[int]struct{}, len(g.adj)),
	}
	for id, n := range g.nodes {
		c.nodes[id] = &DistrictNode{
			ID:         n.ID,
			Population: n.Population,
			Children:   append([]int(nil), n.Children...),
		}
	}
	for id, row := range g.adj {
		cp := make(map[int]struct{}, len(row))
		for nbr := range row {
			cp[nbr] = struct{}{}
		}
		c.adj[id] = cp
	}

	return c
}

// merge contracts node from into node into: population and children move to
// into, from's neighbors become into's neighbors, and from is deleted.
// Callers guarantee both nodes exist and are adjacent.
func (g *DistrictGraph) merge(into, from int) {
	dst, src := g.nodes[into], g.nodes[from]
	dst.Population += src.Population
	dst.Children = append(dst.Children, src.Children...)

	for nbr := range g.adj[from] {
		delete(g.adj[nbr], from)
		if nbr == into {
			continue
		}
		g.adj[into][nbr] = struct{}{}
		g.adj[nbr][into] = struct{}{}
	}
	delete(g.adj, from)
	delete(g.nodes, from)
}
