// Package core provides a thread-safe, in-memory undirected Graph of
// geographic units with a minimal, composable API surface.
//
// A unit is a vertex identified by a non-empty string. Adjacency between two
// units (they share a border) is an undirected edge. Each vertex carries a
// Metadata map holding numeric attributes such as "population" that the
// partition package aggregates per district.
//
// Behavior:
//
//   - Undirected, unweighted edges; each edge is mirrored in the adjacency index.
//   - Self-loops are rejected unless WithLoops is supplied.
//   - Parallel edges are rejected unless WithMultiEdges is supplied.
//   - Collision-free Edge.ID generation ("e1", "e2", …).
//   - Deterministic iteration: Vertices(), Edges() and NeighborIDs() return sorted results.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                    // O(1)
//	HasVertex(id string) bool                     // O(1)
//	RemoveVertex(id string) error                 // O(deg(v))
//	SetAttr(id, key string, value interface{}) error
//	Attr(id, key string) (interface{}, bool)
//	Float(id, key string) (float64, bool)
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                       // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)  // O(d·log d)
//	Vertices() []string                       // O(V·log V)
//	Edges() []*Edge                           // O(E·log E)
//	VertexCount(), EdgeCount() int            // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
