// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// batch.go — independent seeding runs in parallel.

package seed

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mmseed/partition"
)

// BatchResult is the outcome of one run of Batch.
type BatchResult struct {
	// RandSeed is the seed of the run's private random source.
	RandSeed int64

	// Result is nil when the run exhausted its attempts.
	Result *Result

	// Err is nil on success, or wraps ErrSeedingExhausted.
	Err error
}

// Batch runs Seed once per entry of seeds with at most workers concurrent
// runs. Each run gets its own source via WithSeed, appended after opts, so
// results depend only on the inputs and the seed. p is shared read-only.
//
// Exhausted runs are reported in their BatchResult. Any other error (bad
// sizes, bad target, cancelled ctx) stops the batch and is returned.
func Batch(ctx context.Context, p *partition.Partition, popKey string, sizes []int, seatTarget float64,
	seeds []int64, workers int, opts ...Option) ([]BatchResult, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]BatchResult, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, s := range seeds {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runOpts := make([]Option, 0, len(opts)+1)
			runOpts = append(runOpts, opts...)
			runOpts = append(runOpts, WithSeed(s))

			res, err := Seed(p, popKey, sizes, seatTarget, runOpts...)
			out[i] = BatchResult{RandSeed: s, Result: res, Err: err}
			if err != nil && !errors.Is(err, ErrSeedingExhausted) {
				return err
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
