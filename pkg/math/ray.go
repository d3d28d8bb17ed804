package math

// Ray is an origin point plus a direction vector.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns a new ray with both origin and direction multiplied
// by m. The direction is not renormalized, so t values computed against
// the transformed ray remain valid for the original.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
