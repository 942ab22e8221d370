package dataset_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmseed/dataset"
	"github.com/katalvlaran/mmseed/partition"
)

const square = `{
  "units": [
    {"id": "a", "district": 0, "population": 100},
    {"id": "b", "district": 0, "population": 150},
    {"id": "c", "district": 1, "population": 200},
    {"id": "d", "district": 2, "population": 50}
  ],
  "edges": [["a","b"], ["b","c"], ["c","d"], ["d","a"], ["b","a"]]
}`

func TestLoad(t *testing.T) {
	p, err := dataset.Load(strings.NewReader(square))
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, p.Parts())
	require.Equal(t, 4, p.Graph().EdgeCount(), "duplicate edge collapses")
	pops, err := p.Aggregate(partition.PopulationKey)
	require.NoError(t, err)
	require.Equal(t, map[int]float64{0: 250, 1: 200, 2: 50}, pops)
	require.Len(t, p.CutEdges(), 3)
}

func TestLoad_Singletons(t *testing.T) {
	p, err := dataset.Load(strings.NewReader(
		`{"units":[{"id":"x","population":1},{"id":"y","population":2}],"edges":[["x","y"]]}`))
	require.NoError(t, err)
	require.Equal(t, map[string]int{"x": 0, "y": 1}, p.Assignment())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", `{"units":[],"edges":[]}`, dataset.ErrNoUnits},
		{"duplicate", `{"units":[{"id":"a"},{"id":"a"}]}`, dataset.ErrDuplicateUnit},
		{"endpoint", `{"units":[{"id":"a"}],"edges":[["a","z"]]}`, dataset.ErrUnknownEndpoint},
		{"partial", `{"units":[{"id":"a","district":0},{"id":"b"}]}`, dataset.ErrPartialDistricts},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := dataset.Load(strings.NewReader(`{"units":[{"id":"a","extra":1}]}`))
	require.Error(t, err, "unknown fields are rejected")
}

// TestWriteThenLoad checks that a written partition loads back to the same
// assignment and populations.
func TestWriteThenLoad(t *testing.T) {
	p, err := dataset.Load(strings.NewReader(square))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.Write(&buf, p, partition.PopulationKey))

	back, err := dataset.Load(&buf)
	require.NoError(t, err)
	require.Equal(t, p.Assignment(), back.Assignment())
	want, _ := p.Aggregate(partition.PopulationKey)
	got, _ := back.Aggregate(partition.PopulationKey)
	require.Equal(t, want, got)
}
