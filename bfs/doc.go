// Package bfs provides breadth-first search over a core.Graph of units.
//
// It is the contiguity primitive of this module: restricting the walk with
// WithFilterNeighbor to units of one district and comparing the visit count
// to the district size tells whether the district is connected (see Within).
//
// Determinism
//
//	core.Graph.NeighborIDs returns sorted IDs and BFS enqueues neighbors in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//	)
//
//	seen, err := bfs.Within(ctx, g, "u0", func(id string) bool { return district[id] == 3 })
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if Within gets no region or a start outside it.
//   - ErrNeighbors            if neighbor lookup fails for a vertex.
//   - ctx.Err() on cancellation.
package bfs
