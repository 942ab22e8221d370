// SPDX-License-Identifier: MIT
// Package: mmseed/dataset
//
// dataset.go — JSON encoding of a unit graph with district assignment.

// Package dataset reads and writes the JSON document the mmseed command
// works with:
//
//	{
//	  "units": [{"id": "a", "district": 0, "population": 1200}, ...],
//	  "edges": [["a", "b"], ...]
//	}
//
// "district" may be omitted on every unit, in which case each unit becomes
// its own district (numbered in sorted id order). Omitting it on only some
// units is an error.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/mmseed/core"
	"github.com/katalvlaran/mmseed/partition"
)

var (
	// ErrDuplicateUnit indicates two units share an id.
	ErrDuplicateUnit = errors.New("dataset: duplicate unit")

	// ErrUnknownEndpoint indicates an edge naming a unit that is not listed.
	ErrUnknownEndpoint = errors.New("dataset: edge endpoint not a unit")

	// ErrPartialDistricts indicates some but not all units carry a district.
	ErrPartialDistricts = errors.New("dataset: district given for some units only")

	// ErrNoUnits indicates an empty document.
	ErrNoUnits = errors.New("dataset: no units")
)

// Unit is one record of the "units" array.
type Unit struct {
	ID         string  `json:"id"`
	District   *int    `json:"district,omitempty"`
	Population float64 `json:"population"`
}

// Document is the on-disk form.
type Document struct {
	Units []Unit      `json:"units"`
	Edges [][2]string `json:"edges"`
}

// Load decodes a Document from r and returns a Partition whose unit graph
// carries each unit's population under partition.PopulationKey and whose
// updaters include a population Tally under the same name.
func Load(r io.Reader) (*partition.Partition, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("Load: decoding: %w", err)
	}

	return doc.Partition()
}

// Partition builds the unit graph and assignment described by d.
func (d *Document) Partition() (*partition.Partition, error) {
	if len(d.Units) == 0 {
		return nil, ErrNoUnits
	}

	g := core.NewGraph()
	assignment := make(map[string]int, len(d.Units))
	withDistrict := 0
	for _, u := range d.Units {
		if g.HasVertex(u.ID) {
			return nil, fmt.Errorf("Load: unit %q: %w", u.ID, ErrDuplicateUnit)
		}
		if err := g.AddVertex(u.ID); err != nil {
			return nil, fmt.Errorf("Load: unit %q: %w", u.ID, err)
		}
		if err := g.SetAttr(u.ID, partition.PopulationKey, u.Population); err != nil {
			return nil, fmt.Errorf("Load: unit %q: %w", u.ID, err)
		}
		if u.District != nil {
			assignment[u.ID] = *u.District
			withDistrict++
		}
	}
	switch withDistrict {
	case 0:
		assignment = partition.Singletons(g)
	case len(d.Units):
	default:
		return nil, fmt.Errorf("Load: %d of %d units: %w", withDistrict, len(d.Units), ErrPartialDistricts)
	}

	for _, e := range d.Edges {
		if !g.HasVertex(e[0]) || !g.HasVertex(e[1]) {
			return nil, fmt.Errorf("Load: edge %s-%s: %w", e[0], e[1], ErrUnknownEndpoint)
		}
		if g.HasEdge(e[0], e[1]) {
			continue
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("Load: edge %s-%s: %w", e[0], e[1], err)
		}
	}

	return partition.New(g, assignment, map[string]partition.Updater{
		partition.PopulationKey: partition.Tally(partition.PopulationKey),
	})
}

// FromPartition captures p as a Document: units in sorted id order with
// their district and popKey attribute, edges in core.Graph.Edges order.
func FromPartition(p *partition.Partition, popKey string) *Document {
	g := p.Graph()
	doc := &Document{}
	for _, id := range g.Vertices() {
		district, _ := p.District(id)
		pop, _ := g.Float(id, popKey)
		doc.Units = append(doc.Units, Unit{ID: id, District: &district, Population: pop})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, [2]string{e.From, e.To})
	}

	return doc
}

// Write encodes p as an indented Document.
func Write(w io.Writer, p *partition.Partition, popKey string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromPartition(p, popKey)); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}
