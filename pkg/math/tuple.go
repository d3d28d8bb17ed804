package math

import "math"

// Epsilon is the tolerance used for float comparisons, grazing-ray
// rejection, and the bias applied to shadow and refraction ray origins.
const Epsilon = 1e-5

// Tuple is a homogeneous 4-component value. W=1 encodes a point and W=0 a
// vector; W participates in matrix products, so subtracting two points
// yields a vector and adding a vector to a point yields a point.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with an explicit w component.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (w=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (w=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Magnitude returns the length of the tuple treated as a vector.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	return Tuple{t.X / m, t.Y / m, t.Z / m, t.W / m}
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. The w components are
// ignored and the result is a vector.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the normal n,
// computed as t - 2*(t.n)*n.
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Subtract(n.Multiply(2 * t.Dot(n)))
}

// Equals reports whether two tuples are component-wise equal within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return math.Abs(t.X-other.X) < Epsilon &&
		math.Abs(t.Y-other.Y) < Epsilon &&
		math.Abs(t.Z-other.Z) < Epsilon &&
		math.Abs(t.W-other.W) < Epsilon
}
