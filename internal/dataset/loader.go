// Package dataset loads the bridge model file: node coordinates, element
// connectivity, girder groupings and the per-element force table. The file
// is TOML; force rows carry a component table restricted to the four
// recognized names (Vy_i, Vy_j, Mz_i, Mz_j) and anything else fails fast.
package dataset

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/DSinghania13/girdervis/internal/model"
)

// Girder is a caller-supplied grouping: a named, ordered element chain.
type Girder struct {
	Name     string
	Elements []model.ElemID
}

// Model is the loaded bridge: read-only stores plus the girder groupings in
// file order.
type Model struct {
	Geometry *model.Geometry
	Forces   *model.Forces
	Girders  []Girder
}

// Girder returns the grouping with the given name.
func (m *Model) Girder(name string) (Girder, bool) {
	for _, g := range m.Girders {
		if g.Name == name {
			return g, true
		}
	}
	return Girder{}, false
}

// File schema.
type modelFile struct {
	Nodes    []nodeRow   `toml:"nodes"`
	Elements []elemRow   `toml:"elements"`
	Girders  []girderRow `toml:"girders"`
	Forces   []forceRow  `toml:"forces"`
}

type nodeRow struct {
	ID int64   `toml:"id"`
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
	Z  float64 `toml:"z"`
}

type elemRow struct {
	ID    int64 `toml:"id"`
	Start int64 `toml:"start"`
	End   int64 `toml:"end"`
}

type girderRow struct {
	Name     string  `toml:"name"`
	Elements []int64 `toml:"elements"`
}

type forceRow struct {
	Element    int64              `toml:"element"`
	Components map[string]float64 `toml:"components"`
}

// Load reads and validates a model file.
func Load(path string) (*Model, error) {
	var mf modelFile
	if _, err := toml.DecodeFile(path, &mf); err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	m, err := build(&mf)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return m, nil
}

func build(mf *modelFile) (*Model, error) {
	if len(mf.Nodes) == 0 {
		return nil, &model.DataError{Reason: "model has no nodes"}
	}
	if len(mf.Elements) == 0 {
		return nil, &model.DataError{Reason: "model has no elements"}
	}

	nodes := make(map[model.NodeID]model.Vec3, len(mf.Nodes))
	for _, n := range mf.Nodes {
		if n.ID <= 0 {
			return nil, &model.DataError{Reason: fmt.Sprintf("node id %d is not positive", n.ID)}
		}
		id := model.NodeID(n.ID)
		if _, dup := nodes[id]; dup {
			return nil, &model.DataError{Reason: fmt.Sprintf("duplicate node id %d", n.ID)}
		}
		nodes[id] = model.Vec3{X: n.X, Y: n.Y, Z: n.Z}
	}

	elems := make(map[model.ElemID]model.Element, len(mf.Elements))
	for _, e := range mf.Elements {
		if e.ID <= 0 {
			return nil, &model.DataError{Reason: fmt.Sprintf("element id %d is not positive", e.ID)}
		}
		id := model.ElemID(e.ID)
		if _, dup := elems[id]; dup {
			return nil, &model.DataError{Reason: fmt.Sprintf("duplicate element id %d", e.ID)}
		}
		elems[id] = model.Element{Start: model.NodeID(e.Start), End: model.NodeID(e.End)}
	}

	samples := make(map[model.ElemID]model.ForceSample, len(mf.Forces))
	for _, row := range mf.Forces {
		id := model.ElemID(row.Element)
		if _, dup := samples[id]; dup {
			return nil, &model.DataError{Elem: id, Reason: "duplicate force row for element"}
		}
		sample, err := sampleFromComponents(id, row.Components)
		if err != nil {
			return nil, err
		}
		samples[id] = sample
	}

	girders := make([]Girder, 0, len(mf.Girders))
	seen := make(map[string]bool, len(mf.Girders))
	for _, g := range mf.Girders {
		if g.Name == "" {
			return nil, &model.DataError{Reason: "girder with empty name"}
		}
		if seen[g.Name] {
			return nil, &model.DataError{Girder: g.Name, Reason: "duplicate girder name"}
		}
		seen[g.Name] = true
		ids := make([]model.ElemID, len(g.Elements))
		for i, e := range g.Elements {
			ids[i] = model.ElemID(e)
		}
		girders = append(girders, Girder{Name: g.Name, Elements: ids})
	}

	return &Model{
		Geometry: model.NewGeometry(nodes, elems),
		Forces:   model.NewForces(samples),
		Girders:  girders,
	}, nil
}

// sampleFromComponents converts a component table into a ForceSample,
// rejecting unrecognized names and requiring all four components. Values
// pass through untouched; the dataset sign convention is preserved.
func sampleFromComponents(id model.ElemID, comps map[string]float64) (model.ForceSample, error) {
	var s model.ForceSample
	for name := range comps {
		if _, err := model.ParseComponent(name); err != nil {
			return s, &model.DataError{Elem: id, Reason: err.Error()}
		}
	}
	for _, want := range model.Components() {
		if _, ok := comps[string(want)]; !ok {
			return s, &model.DataError{Elem: id, Reason: fmt.Sprintf("missing component %s", want)}
		}
	}
	s.ShearI = comps[string(model.ShearStart)]
	s.ShearJ = comps[string(model.ShearEnd)]
	s.MomentI = comps[string(model.MomentStart)]
	s.MomentJ = comps[string(model.MomentEnd)]
	return s, nil
}
