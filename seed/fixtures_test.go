package seed_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmseed/builder"
	"github.com/katalvlaran/mmseed/partition"
	"github.com/katalvlaran/mmseed/seed"
)

// singletons builds a unit graph with ctor, gives every unit population pop
// and places each unit in its own district.
func singletons(t testing.TB, pop float64, ctor builder.Constructor) *partition.Partition {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithUniformAttr(partition.PopulationKey, pop)},
		ctor)
	require.NoError(t, err)

	p, err := partition.New(g, partition.Singletons(g), map[string]partition.Updater{
		partition.PopulationKey: partition.Tally(partition.PopulationKey),
	})
	require.NoError(t, err)

	return p
}

// groupSizes returns the sorted child counts of g's nodes.
func groupSizes(g *seed.DistrictGraph) []int {
	var out []int
	for _, grp := range g.Groups() {
		out = append(out, len(grp))
	}
	sort.Ints(out)

	return out
}

// sortedGroups returns each group sorted, in Groups order.
func sortedGroups(g *seed.DistrictGraph) [][]int {
	groups := g.Groups()
	for _, grp := range groups {
		sort.Ints(grp)
	}

	return groups
}
