package shape

import (
	"math"

	gmath "whitted/pkg/math"
)

// Sphere is the unit sphere centered at the origin.
type Sphere struct{}

// IntersectObjectSpace solves the quadratic for a ray against the unit
// sphere, yielding zero, one, or two roots.
func (Sphere) IntersectObjectSpace(r gmath.Ray) []float64 {
	// Vector from the sphere center to the ray origin.
	oc := r.Origin.Subtract(gmath.NewPoint(0, 0, 0))

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(oc)
	c := oc.Dot(oc) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sqrtD := math.Sqrt(disc)
	return []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
}

// NormalAtObjectSpace returns the vector from the center to the point.
func (Sphere) NormalAtObjectSpace(p gmath.Tuple) gmath.Tuple {
	return p.Subtract(gmath.NewPoint(0, 0, 0))
}
