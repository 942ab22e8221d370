// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmseed/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
)

// TestGraph_AddRemoveVertex verifies AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexA))
	require.True(t, g.HasVertex(VertexA))

	// duplicate insert is a no-op
	require.NoError(t, g.AddVertex(VertexA))
	require.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex(VertexB), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(VertexA))
	require.False(t, g.HasVertex(VertexA))
}

// TestGraph_RemoveVertexDropsEdges ensures incident edges disappear with the vertex.
func TestGraph_RemoveVertexDropsEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexA, VertexB)
	_, _ = g.AddEdge(VertexB, VertexC)

	require.NoError(t, g.RemoveVertex(VertexB))
	require.Equal(t, 0, g.EdgeCount())
	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	require.Empty(t, nbrs)
}

// TestGraph_AddEdgeConstraints covers loop and multi-edge policies.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(VertexEmpty, VertexA)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)
	require.True(t, g.HasEdge(VertexB, VertexA), "edges are undirected")

	_, err = g.AddEdge(VertexB, VertexA)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	gm := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	require.True(t, gm.Looped())
	require.True(t, gm.Multigraph())
	_, err = gm.AddEdge(VertexA, VertexA)
	require.NoError(t, err)
	_, err = gm.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	_, err = gm.AddEdge(VertexA, VertexB)
	require.NoError(t, err)
	require.Equal(t, 3, gm.EdgeCount())

	nbrs, err := gm.NeighborIDs(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexA, VertexB}, nbrs)
}

// TestGraph_DeterministicOrder anchors sorted enumeration.
func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(VertexC, VertexA)
	_, _ = g.AddEdge(VertexB, VertexA)

	require.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())

	nbrs, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	require.Equal(t, []string{VertexB, VertexC}, nbrs)

	edges := g.Edges()
	require.Len(t, edges, 2)
	require.Equal(t, VertexB, edges[0].From)
	require.Equal(t, VertexC, edges[1].From)

	_, err = g.NeighborIDs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_Attributes covers SetAttr/Attr/Float conversions.
func TestGraph_Attributes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA))

	require.ErrorIs(t, g.SetAttr(VertexB, "population", 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetAttr(VertexEmpty, "population", 1), core.ErrEmptyVertexID)

	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"float64", 12.5, 12.5, true},
		{"int", 7, 7, true},
		{"int64", int64(9), 9, true},
		{"uint", uint(3), 3, true},
		{"string", "12", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, g.SetAttr(VertexA, "population", tc.value))
			got, ok := g.Float(VertexA, "population")
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}

	_, ok := g.Float(VertexA, "votes")
	require.False(t, ok)
	_, ok = g.Attr(VertexB, "population")
	require.False(t, ok)
}

// TestGraph_ConcurrentReads exercises parallel readers against a shared graph.
func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 20; i++ {
		_, _ = g.AddEdge(string(rune('a'+i)), string(rune('a'+i+1)))
	}

	var wg sync.WaitGroup
	for r := 0; r < 16; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range g.Vertices() {
				_, _ = g.NeighborIDs(id)
			}
			_ = g.Edges()
		}()
	}
	wg.Wait()
	require.Equal(t, 21, g.VertexCount())
}
