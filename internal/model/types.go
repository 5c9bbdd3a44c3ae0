package model

import (
	"fmt"
	"math"
)

// NodeID identifies a node of the finite-element mesh.
type NodeID int

// ElemID identifies a frame element of the finite-element mesh.
type ElemID int

// Vec3 is a point in the global coordinate system.
// X is the bridge longitudinal axis, Y is vertical, Z is transverse (m).
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Dist returns the Euclidean distance between two points.
func (v Vec3) Dist(w Vec3) float64 {
	dx := v.X - w.X
	dy := v.Y - w.Y
	dz := v.Z - w.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Element is an ordered node pair. Start is the local "i" end and End the
// local "j" end; the order fixes the sign convention of the force dataset.
type Element struct {
	Start NodeID
	End   NodeID
}

// ForceSample holds the internal forces reported at the two ends of one
// element, exactly as stored in the source dataset. Values are never sign
// corrected or otherwise re-derived by this program.
type ForceSample struct {
	ShearI  float64 // Vy_i (kN)
	ShearJ  float64 // Vy_j (kN)
	MomentI float64 // Mz_i (kN-m)
	MomentJ float64 // Mz_j (kN-m)
}

// Component names a force component column of the source dataset.
type Component string

// The four recognized dataset components.
const (
	ShearStart  Component = "Vy_i"
	ShearEnd    Component = "Vy_j"
	MomentStart Component = "Mz_i"
	MomentEnd   Component = "Mz_j"
)

// Components lists all recognized component names in dataset order.
func Components() []Component {
	return []Component{ShearStart, ShearEnd, MomentStart, MomentEnd}
}

// ParseComponent maps a dataset column name to a Component, rejecting
// anything outside the recognized set.
func ParseComponent(name string) (Component, error) {
	switch Component(name) {
	case ShearStart, ShearEnd, MomentStart, MomentEnd:
		return Component(name), nil
	}
	return "", fmt.Errorf("unrecognized force component %q (want one of Vy_i, Vy_j, Mz_i, Mz_j)", name)
}
