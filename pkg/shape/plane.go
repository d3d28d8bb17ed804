package shape

import (
	"math"

	gmath "whitted/pkg/math"
)

// Plane is the xz plane at y=0, extending to infinity.
type Plane struct{}

// IntersectObjectSpace yields the single crossing of the y=0 plane, or
// nothing when the ray is parallel to it.
func (Plane) IntersectObjectSpace(r gmath.Ray) []float64 {
	if math.Abs(r.Direction.Y) < gmath.Epsilon {
		return nil
	}
	return []float64{-r.Origin.Y / r.Direction.Y}
}

// NormalAtObjectSpace is constant for a plane.
func (Plane) NormalAtObjectSpace(gmath.Tuple) gmath.Tuple {
	return gmath.NewVector(0, 1, 0)
}
