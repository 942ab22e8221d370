package seed_test

import (
	"testing"

	"github.com/katalvlaran/mmseed/builder"
	"github.com/katalvlaran/mmseed/partition"
	"github.com/katalvlaran/mmseed/seed"
)

func BenchmarkContract_Grid8x8(b *testing.B) {
	p := singletons(b, 100, builder.Grid(8, 8))
	g, err := seed.DistrictAdjacency(p, partition.PopulationKey)
	if err != nil {
		b.Fatal(err)
	}
	sizes := []int{4, 4, 4, 4, 4, 4, 4, 4, 8, 8, 8, 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = seed.Contract(g, sizes, seed.WithSeed(int64(i)))
	}
}
