package seed_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mmseed/builder"
	"github.com/katalvlaran/mmseed/partition"
	"github.com/katalvlaran/mmseed/seed"
)

// SeedSuite exercises Seed, Remap and Seats end to end.
type SeedSuite struct {
	suite.Suite
	path *partition.Partition
}

func (s *SeedSuite) SetupTest() {
	s.path = singletons(s.T(), 100, builder.Path(6))
}

// TestPathOfSix: six districts of 100 into three pairs, target 100.
func (s *SeedSuite) TestPathOfSix() {
	res, err := seed.Seed(s.path, partition.PopulationKey, []int{2, 2, 2}, 100)
	require.NoError(s.T(), err)

	require.Equal(s.T(), 3, res.Partition.Len())
	require.Equal(s.T(), map[int]int{0: 2, 1: 2, 2: 2}, res.Seats)
	require.GreaterOrEqual(s.T(), res.Attempts, 1)
	require.Equal(s.T(), []string{"u0", "u1"}, res.Partition.Members(0))
	require.Equal(s.T(), []string{"u2", "u3"}, res.Partition.Members(1))
	require.Equal(s.T(), []string{"u4", "u5"}, res.Partition.Members(2))

	for _, part := range res.Partition.Parts() {
		ok, err := res.Partition.Contiguous(context.Background(), part)
		require.NoError(s.T(), err)
		require.True(s.T(), ok)
	}

	// Original partition is untouched.
	require.Equal(s.T(), 6, s.path.Len())
}

// TestStarExhausts: a star cannot be split into two pairs.
func (s *SeedSuite) TestStarExhausts() {
	star := singletons(s.T(), 100, builder.Star(4))
	_, err := seed.Seed(star, partition.PopulationKey, []int{2, 2}, 100,
		seed.WithMaxAttempts(5), seed.WithMaxTries(50))
	require.ErrorIs(s.T(), err, seed.ErrSeedingExhausted)
}

func (s *SeedSuite) TestValidation() {
	_, err := seed.Seed(nil, partition.PopulationKey, []int{6}, 100)
	require.ErrorIs(s.T(), err, seed.ErrNilSource)

	for _, target := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = seed.Seed(s.path, partition.PopulationKey, []int{6}, target)
		require.ErrorIs(s.T(), err, seed.ErrBadSeatTarget, "target %v", target)
	}

	_, err = seed.Seed(s.path, partition.PopulationKey, []int{2, 2}, 100)
	require.ErrorIs(s.T(), err, seed.ErrConservationViolation)

	_, err = seed.Seed(s.path, partition.PopulationKey, []int{math.MaxInt, math.MaxInt, 8}, 100,
		seed.WithMaxAttempts(3))
	require.ErrorIs(s.T(), err, seed.ErrConservationViolation)

	_, err = seed.Seed(s.path, "missing", []int{6}, 100)
	require.ErrorIs(s.T(), err, partition.ErrUnknownUpdater)
}

// TestRemapIdempotent: remapping a seeded partition through its own
// uncontracted adjacency graph changes nothing.
func (s *SeedSuite) TestRemapIdempotent() {
	res, err := seed.Seed(s.path, partition.PopulationKey, []int{3, 3}, 100, seed.WithSeed(9))
	require.NoError(s.T(), err)

	g, err := seed.DistrictAdjacency(res.Partition, partition.PopulationKey)
	require.NoError(s.T(), err)
	again, err := seed.Remap(res.Partition, g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Partition.Assignment(), again.Assignment())
}

func (s *SeedSuite) TestRemapRejectsForeignGraph() {
	g := seed.NewDistrictGraph()
	require.NoError(s.T(), g.AddNode(0, 100))

	_, err := seed.Remap(s.path, g)
	require.ErrorIs(s.T(), err, seed.ErrInvalidContraction)

	_, err = seed.Remap(s.path, nil)
	require.ErrorIs(s.T(), err, seed.ErrNilGraph)
}

func (s *SeedSuite) TestLogging() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := seed.Seed(s.path, partition.PopulationKey, []int{2, 4}, 100, seed.WithLogger(logger))
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), `"msg":"seed found"`)
	require.Contains(s.T(), buf.String(), `"msg":"contract step"`)
}

func (s *SeedSuite) TestOptionPanics() {
	require.Panics(s.T(), func() { seed.WithRand(nil) })
	require.Panics(s.T(), func() { seed.WithLogger(nil) })
	require.Panics(s.T(), func() { seed.WithMaxTries(0) })
	require.Panics(s.T(), func() { seed.WithMaxAttempts(0) })
	require.Panics(s.T(), func() { seed.WithMaxGrowthPicks(0) })
}

func TestSeedSuite(t *testing.T) {
	suite.Run(t, new(SeedSuite))
}

// TestSeats checks round half to even on district populations.
func TestSeats(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	for id, pop := range map[string]float64{"u0": 250, "u1": 350, "u2": 149, "u3": 151} {
		require.NoError(t, g.SetAttr(id, partition.PopulationKey, pop))
	}
	p, err := partition.New(g, partition.Singletons(g), map[string]partition.Updater{
		partition.PopulationKey: partition.Tally(partition.PopulationKey),
	})
	require.NoError(t, err)

	seats, err := seed.Seats(p, partition.PopulationKey, 100)
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 2, 1: 4, 2: 1, 3: 2}, seats)

	_, err = seed.Seats(p, partition.PopulationKey, 0)
	require.ErrorIs(t, err, seed.ErrBadSeatTarget)
}
