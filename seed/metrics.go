// SPDX-License-Identifier: MIT
// Package: mmseed/seed
//
// metrics.go — Prometheus instrumentation for contraction and seeding.

package seed

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeSuccess   = "success"
	outcomeExhausted = "exhausted"
)

// Metrics counts contraction and seeding outcomes. All methods are safe on
// a nil receiver, which records nothing.
type Metrics struct {
	contractions *prometheus.CounterVec
	merges       prometheus.Counter
	seeds        *prometheus.CounterVec
	attempts     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		contractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mmseed_contractions_total",
			Help: "Contraction attempts by outcome",
		}, []string{"outcome"}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mmseed_merges_committed_total",
			Help: "Groups committed during contraction attempts",
		}),
		seeds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mmseed_seeds_total",
			Help: "Seed calls by outcome",
		}, []string{"outcome"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mmseed_seed_attempts",
			Help:    "Top-level contraction attempts used per seed call",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
		}),
	}
	for _, c := range []prometheus.Collector{m.contractions, m.merges, m.seeds, m.attempts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observeContraction(ok bool) {
	if m == nil {
		return
	}
	m.contractions.WithLabelValues(outcome(ok)).Inc()
}

func (m *Metrics) observeMerge() {
	if m == nil {
		return
	}
	m.merges.Inc()
}

func (m *Metrics) observeSeed(ok bool, attempts int) {
	if m == nil {
		return
	}
	m.seeds.WithLabelValues(outcome(ok)).Inc()
	m.attempts.Observe(float64(attempts))
}

func outcome(ok bool) string {
	if ok {
		return outcomeSuccess
	}
	return outcomeExhausted
}
