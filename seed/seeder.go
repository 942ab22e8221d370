// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// seeder.go — top-level orchestration: build, contract with retries, remap,
// compute seats.

package seed

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mmseed/partition"
)

// Result is a successful seed.
type Result struct {
	// Partition assigns every unit to a multi-member district 0..len(sizes)-1.
	Partition *partition.Partition

	// Seats maps each multi-member district to round(population / seatTarget).
	Seats map[int]int

	// Graph is the contracted district graph the partition was built from.
	Graph *DistrictGraph

	// Attempts is the number of top-level contraction attempts used (≥ 1).
	Attempts int
}

// Seed merges the districts of p into groups whose sizes are the multiset
// sizes and reports each group's seat count.
//
// Steps:
//  1. Build the district adjacency graph once (popKey names the population
//     updater of p).
//  2. Run up to MaxAttempts contractions, each on a fresh copy.
//  3. On the first success remap p and compute seats with round half to even.
//
// Errors:
//   - ErrNilSource, ErrBadSeatTarget, ErrBadSizes, ErrConservationViolation
//     are returned immediately.
//   - ErrSeedingExhausted when every attempt fails. This is an expected
//     outcome: raise the budgets or change the sizes and retry.
func Seed(p *partition.Partition, popKey string, sizes []int, seatTarget float64, opts ...Option) (*Result, error) {
	if p == nil {
		return nil, ErrNilSource
	}
	if !(seatTarget > 0) || math.IsInf(seatTarget, 1) {
		return nil, fmt.Errorf("Seed: %v: %w", seatTarget, ErrBadSeatTarget)
	}
	cfg := newConfig(opts...)

	g, err := DistrictAdjacency(p, popKey)
	if err != nil {
		return nil, fmt.Errorf("Seed: %w", err)
	}
	if err := checkSizes(sizes, g.Children()); err != nil {
		return nil, fmt.Errorf("Seed: %w", err)
	}

	for n := 1; n <= cfg.maxAttempts; n++ {
		contracted, err := contract(g, sizes, cfg)
		if errors.Is(err, ErrContractionExhausted) {
			cfg.logger.Debug("contraction failed", slog.Int("attempt", n))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("Seed: %w", err)
		}

		seeded, err := Remap(p, contracted)
		if err != nil {
			return nil, fmt.Errorf("Seed: %w", err)
		}
		seats, err := Seats(seeded, popKey, seatTarget)
		if err != nil {
			return nil, fmt.Errorf("Seed: %w", err)
		}

		cfg.metrics.observeSeed(true, n)
		cfg.logger.Info("seed found",
			slog.Int("attempts", n),
			slog.Int("districts", seeded.Len()),
		)

		return &Result{Partition: seeded, Seats: seats, Graph: contracted, Attempts: n}, nil
	}

	cfg.metrics.observeSeed(false, cfg.maxAttempts)
	cfg.logger.Warn("no valid merge found", slog.Int("attempts", cfg.maxAttempts))

	return nil, fmt.Errorf("Seed: %d attempts: %w", cfg.maxAttempts, ErrSeedingExhausted)
}

// Seats computes round(population / seatTarget) per district of p, rounding
// half to even.
func Seats(p *partition.Partition, popKey string, seatTarget float64) (map[int]int, error) {
	if !(seatTarget > 0) || math.IsInf(seatTarget, 1) {
		return nil, fmt.Errorf("Seats: %v: %w", seatTarget, ErrBadSeatTarget)
	}
	pops, err := p.Aggregate(popKey)
	if err != nil {
		return nil, err
	}
	seats := make(map[int]int, len(pops))
	for district, pop := range pops {
		seats[district] = int(math.RoundToEven(pop / seatTarget))
	}

	return seats, nil
}
