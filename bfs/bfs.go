package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mmseed/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []string
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, or the
// context error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		res:     &Result{Order: make([]string, 0, n)},
	}
	w.enqueue(startID)

	return w.res, w.loop()
}

// Within returns the set of vertices reachable from start without leaving
// the region described by keep. The start itself must satisfy keep.
func Within(ctx context.Context, g *core.Graph, start string, keep func(id string) bool) (map[string]bool, error) {
	if keep == nil || !keep(start) {
		return nil, fmt.Errorf("%w: start %q outside region", ErrOptionViolation, start)
	}
	res, err := BFS(g, start,
		WithContext(ctx),
		WithFilterNeighbor(func(_, nbr string) bool { return keep(nbr) }),
	)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(res.Order))
	for _, id := range res.Order {
		seen[id] = true
	}

	return seen, nil
}

func (w *walker) enqueue(id string) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, id)
		if err := w.expand(id); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues each unseen neighbor that passes the filter.
func (w *walker) expand(id string) error {
	neighbors, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		w.enqueue(nbr)
	}

	return nil
}
