package seed

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	g := pathGraph(t, 4)
	_, err = Contract(g, []int{4}, WithMetrics(m))
	require.NoError(t, err)
	require.Equal(t, 1.0, testutil.ToFloat64(m.contractions.WithLabelValues(outcomeSuccess)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.merges))

	// Star: hub 0 with leaves 1..3.
	star := NewDistrictGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, star.AddNode(i, 1))
	}
	for i := 1; i < 4; i++ {
		require.NoError(t, star.AddEdge(0, i))
	}
	_, err = Contract(star, []int{2, 2}, WithMetrics(m), WithMaxTries(10))
	require.ErrorIs(t, err, ErrContractionExhausted)
	require.Equal(t, 1.0, testutil.ToFloat64(m.contractions.WithLabelValues(outcomeExhausted)))

	// Same collectors cannot be registered twice.
	_, err = NewMetrics(reg)
	require.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.observeContraction(true)
		m.observeMerge()
		m.observeSeed(false, 3)
	})
}
