// SPDX-License-Identifier: MIT
// Package: mmseed/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • idFn  = unitID ("u0","u1",...)
//   • rng   = nil    (random attributes fail with ErrNeedRandSource)
//   • attrs = none

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/mmseed/core"
)

// attrSpec describes one vertex attribute to stamp on added vertices.
type attrSpec struct {
	key    string
	lo, hi float64
	random bool
}

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn  func(int) string
	rng   *rand.Rand
	attrs []attrSpec
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: unitID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// unitID renders an index as "u<i>".
func unitID(i int) string {
	return "u" + strconv.Itoa(i)
}

// addVertices inserts ids in order and stamps configured attributes.
func addVertices(g *core.Graph, cfg builderConfig, method string, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	for _, a := range cfg.attrs {
		if a.random && cfg.rng == nil {
			return fmt.Errorf("%s: attribute %q: %w", method, a.key, ErrNeedRandSource)
		}
		for _, id := range ids {
			v := a.lo
			if a.random {
				v = a.lo + cfg.rng.Float64()*(a.hi-a.lo)
			}
			if err := g.SetAttr(id, a.key, v); err != nil {
				return fmt.Errorf("%s: SetAttr(%s,%s): %w", method, id, a.key, err)
			}
		}
	}

	return nil
}

// addEdge wraps core.AddEdge with constructor context.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}

	return nil
}
