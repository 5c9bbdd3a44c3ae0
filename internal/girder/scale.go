package girder

import "math"

// Scale maps diagram values to a visual extent shared by every function of
// one rendering pass. Computing it once over all girders in a scene keeps
// rendered magnitudes comparable between girders.
type Scale struct {
	Factor float64 // multiply a value to get its rendered height
	MaxAbs float64 // largest |value| in scope
	Min    float64 // signed minimum in scope
	Max    float64 // signed maximum in scope
}

// Normalize computes the scale for a set of diagram functions so that the
// largest magnitude renders at targetExtent. An all-zero scope degenerates
// to Factor 1 and renders flat.
func Normalize(targetExtent float64, fns ...*Function) Scale {
	sc := Scale{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, fn := range fns {
		sc.MaxAbs = math.Max(sc.MaxAbs, fn.MaxAbs())
		lo, hi := fn.Range()
		sc.Min = math.Min(sc.Min, lo)
		sc.Max = math.Max(sc.Max, hi)
	}
	if len(fns) == 0 || sc.MaxAbs == 0 {
		sc.Min, sc.Max = 0, 0
		sc.Factor = 1
		return sc
	}
	sc.Factor = targetExtent / sc.MaxAbs
	return sc
}
