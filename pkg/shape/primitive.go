// Package shape implements the analytic primitives the tracer can
// intersect, the Body wrapper that places a primitive in the world under a
// transform and material, grouped hierarchies, and the intersection
// records the integrator consumes.
//
// Every primitive is defined in its own object space: the unit sphere at
// the origin, the xz plane, the unit cube at +-1, and the y-axis cylinder
// and double cone. World-space behavior comes from conjugating with the
// body's transform.
package shape

import (
	gmath "whitted/pkg/math"
)

// Primitive is a shape in its canonical object-space frame.
type Primitive interface {
	// IntersectObjectSpace returns the t values where an object-space ray
	// meets the surface. The slice may be empty and is not sorted unless
	// the primitive documents otherwise.
	IntersectObjectSpace(r gmath.Ray) []float64
	// NormalAtObjectSpace returns the surface normal at an object-space
	// point assumed to lie on the surface.
	NormalAtObjectSpace(p gmath.Tuple) gmath.Tuple
}

func maxFloat(a, b, c float64) float64 {
	out := a
	if b > out {
		out = b
	}
	if c > out {
		out = c
	}
	return out
}

func minFloat(a, b, c float64) float64 {
	out := a
	if b < out {
		out = b
	}
	if c < out {
		out = c
	}
	return out
}
