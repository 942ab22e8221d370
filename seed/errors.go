// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// errors.go — sentinel errors for the seed package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package seed

import "errors"

var (
	// ErrConservationViolation indicates sum(sizes) differs from the district count.
	ErrConservationViolation = errors.New("seed: group sizes do not sum to district count")

	// ErrBadSizes indicates a non-positive group size.
	ErrBadSizes = errors.New("seed: group sizes must be positive")

	// ErrContractionExhausted indicates one contraction attempt used up its tries.
	ErrContractionExhausted = errors.New("seed: contraction tries exhausted")

	// ErrSeedingExhausted indicates every top-level attempt failed.
	ErrSeedingExhausted = errors.New("seed: no valid seed found")

	// ErrBadSeatTarget indicates a seat target that is zero, negative, NaN or infinite.
	ErrBadSeatTarget = errors.New("seed: seat target must be positive and finite")

	// ErrNilSource indicates a nil partition was supplied.
	ErrNilSource = errors.New("seed: partition is nil")

	// ErrNilGraph indicates a nil district graph was supplied.
	ErrNilGraph = errors.New("seed: district graph is nil")

	// ErrInvalidContraction indicates a contracted graph that does not cover
	// every district of the partition being remapped.
	ErrInvalidContraction = errors.New("seed: contracted graph does not cover partition")

	// ErrUnknownNode indicates a district graph operation on a missing node.
	ErrUnknownNode = errors.New("seed: district node not found")

	// ErrDuplicateNode indicates AddNode for an id already present.
	ErrDuplicateNode = errors.New("seed: district node already exists")

	// ErrSelfLoop indicates an edge from a district to itself.
	ErrSelfLoop = errors.New("seed: district self-loop")
)
