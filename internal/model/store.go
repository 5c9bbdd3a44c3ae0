package model

// Geometry is the read-only store of node coordinates and element
// connectivity. It performs lookups only; all derived quantities live in
// the girder package. Safe for concurrent reads once constructed.
type Geometry struct {
	nodes map[NodeID]Vec3
	elems map[ElemID]Element
}

// NewGeometry builds a geometry store from node and element tables.
// The maps are copied; later mutation of the arguments has no effect.
func NewGeometry(nodes map[NodeID]Vec3, elems map[ElemID]Element) *Geometry {
	g := &Geometry{
		nodes: make(map[NodeID]Vec3, len(nodes)),
		elems: make(map[ElemID]Element, len(elems)),
	}
	for id, pos := range nodes {
		g.nodes[id] = pos
	}
	for id, el := range elems {
		g.elems[id] = el
	}
	return g
}

// Node returns the coordinates of a node.
func (g *Geometry) Node(id NodeID) (Vec3, error) {
	pos, ok := g.nodes[id]
	if !ok {
		return Vec3{}, &LookupError{Kind: "node", ID: int(id)}
	}
	return pos, nil
}

// Element returns the (start, end) node pair of an element.
func (g *Geometry) Element(id ElemID) (Element, error) {
	el, ok := g.elems[id]
	if !ok {
		return Element{}, &LookupError{Kind: "element", ID: int(id)}
	}
	return el, nil
}

// NumNodes returns the number of stored nodes.
func (g *Geometry) NumNodes() int { return len(g.nodes) }

// NumElements returns the number of stored elements.
func (g *Geometry) NumElements() int { return len(g.elems) }

// Forces is the read-only store of per-element force samples. Values keep
// the sign convention of the source dataset. Safe for concurrent reads.
type Forces struct {
	samples map[ElemID]ForceSample
}

// NewForces builds a force store from a sample table. The map is copied.
func NewForces(samples map[ElemID]ForceSample) *Forces {
	f := &Forces{samples: make(map[ElemID]ForceSample, len(samples))}
	for id, s := range samples {
		f.samples[id] = s
	}
	return f
}

// Sample returns the force sample of an element.
func (f *Forces) Sample(id ElemID) (ForceSample, error) {
	s, ok := f.samples[id]
	if !ok {
		return ForceSample{}, &LookupError{Kind: "element", ID: int(id)}
	}
	return s, nil
}

// Has reports whether a sample exists for the element.
func (f *Forces) Has(id ElemID) bool {
	_, ok := f.samples[id]
	return ok
}

// NumSamples returns the number of stored samples.
func (f *Forces) NumSamples() int { return len(f.samples) }
