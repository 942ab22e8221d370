// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// contract.go — randomized greedy contraction of a district graph.
//
// One call is one attempt. Its state (working graph, remaining sizes,
// done-set) is created fresh from the caller's inputs and discarded on
// failure; nothing is undone incrementally.

package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
)

// attempt is the mutable state of one contraction attempt.
type attempt struct {
	graph     *DistrictGraph
	remaining []int
	done      map[int]struct{} // original districts already in a committed group
	committed map[int]struct{} // node ids of committed groups
	total     int
}

func newAttempt(g *DistrictGraph, sizes []int) *attempt {
	return &attempt{
		graph:     g.Clone(),
		remaining: append([]int(nil), sizes...),
		done:      make(map[int]struct{}, g.Children()),
		committed: make(map[int]struct{}),
		total:     g.Children(),
	}
}

// Contract merges the nodes of g into groups whose child counts are exactly
// the multiset sizes. g and sizes are never modified.
//
// Each outer iteration (at most MaxTries):
//  1. Draw k uniformly from the remaining sizes (respecting multiplicity).
//  2. Draw a root uniformly from the free nodes with at most k children.
//  3. Grow the root on a scratch copy by merging random free neighbors while
//     the child count stays ≤ k.
//  4. If the root reaches exactly k, adopt the copy, consume k and mark the
//     root's children done.
//
// The attempt returns as soon as every original district is done.
//
// Errors:
//   - ErrNilGraph, ErrBadSizes, ErrConservationViolation before any merge.
//   - ErrContractionExhausted when MaxTries iterations do not finish.
func Contract(g *DistrictGraph, sizes []int, opts ...Option) (*DistrictGraph, error) {
	return contract(g, sizes, newConfig(opts...))
}

func contract(g *DistrictGraph, sizes []int, cfg *config) (*DistrictGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := checkSizes(sizes, g.Children()); err != nil {
		return nil, err
	}

	st := newAttempt(g, sizes)
	for i := 0; i < cfg.maxTries; i++ {
		if len(st.remaining) == 0 {
			break
		}
		k := st.remaining[cfg.rng.Intn(len(st.remaining))]
		root, ok := st.drawRoot(cfg.rng, k)
		if !ok {
			continue
		}
		grown, ok := st.grow(root, k, cfg)
		if ok {
			st.commit(grown, root, k)
			cfg.metrics.observeMerge()
		}
		if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
			cfg.logger.Debug("contract step",
				slog.Int("iter", i),
				slog.Int("size", k),
				slog.Int("root", root),
				slog.Bool("committed", ok),
				slog.Any("remaining", st.remaining),
				slog.Int("done", len(st.done)),
				slog.Int("nodes", st.graph.Len()),
			)
		}
		if len(st.done) == st.total {
			break
		}
	}

	if len(st.remaining) == 0 && len(st.done) == st.total {
		cfg.metrics.observeContraction(true)
		return st.graph, nil
	}
	cfg.metrics.observeContraction(false)

	return nil, fmt.Errorf("Contract: %d tries, %d of %d districts merged: %w",
		cfg.maxTries, len(st.done), st.total, ErrContractionExhausted)
}

// checkSizes enforces positive sizes and the conservation law. Each size
// is bounded by districts before it is added, so the sum cannot overflow.
func checkSizes(sizes []int, districts int) error {
	sum := 0
	for _, k := range sizes {
		if k < 1 {
			return fmt.Errorf("size %d: %w", k, ErrBadSizes)
		}
		if k > districts-sum {
			return fmt.Errorf("size %d exceeds %d districts: %w", k, districts, ErrConservationViolation)
		}
		sum += k
	}
	if sum != districts {
		return fmt.Errorf("sum(sizes)=%d, districts=%d: %w", sum, districts, ErrConservationViolation)
	}

	return nil
}

// drawRoot picks a free node with at most k children. Fresh graphs hold
// only single-child nodes, so every free node is eligible there.
func (st *attempt) drawRoot(rng *rand.Rand, k int) (int, bool) {
	var free []int
	for _, id := range st.graph.NodeIDs() {
		if _, ok := st.committed[id]; ok {
			continue
		}
		if len(st.graph.nodes[id].Children) <= k {
			free = append(free, id)
		}
	}
	if len(free) == 0 {
		return 0, false
	}

	return free[rng.Intn(len(free))], true
}

// grow enlarges root on a scratch copy of the working graph. Growth stops
// when the root holds k children, when no free neighbor fits, or after
// maxGrowthPicks infeasible picks. It reports whether exactly k was reached.
func (st *attempt) grow(root, k int, cfg *config) (*DistrictGraph, bool) {
	work := st.graph.Clone()
	wasted := 0
	for len(work.nodes[root].Children) < k {
		have := len(work.nodes[root].Children)
		nbrs := make([]int, 0, len(work.adj[root]))
		fits := false
		for _, nbr := range work.Neighbors(root) {
			if _, frozen := st.committed[nbr]; frozen {
				continue
			}
			nbrs = append(nbrs, nbr)
			if have+len(work.nodes[nbr].Children) <= k {
				fits = true
			}
		}
		if !fits {
			break
		}

		pick := nbrs[cfg.rng.Intn(len(nbrs))]
		if have+len(work.nodes[pick].Children) > k {
			wasted++
			if wasted >= cfg.maxGrowthPicks {
				break
			}
			continue
		}
		work.merge(root, pick)
	}

	return work, len(work.nodes[root].Children) == k
}

// commit adopts the grown graph and consumes one occurrence of k.
func (st *attempt) commit(grown *DistrictGraph, root, k int) {
	st.graph = grown
	for i, v := range st.remaining {
		if v == k {
			st.remaining = append(st.remaining[:i], st.remaining[i+1:]...)
			break
		}
	}
	st.committed[root] = struct{}{}
	for _, child := range grown.nodes[root].Children {
		st.done[child] = struct{}{}
	}
}
