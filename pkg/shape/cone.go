package shape

import (
	"math"
	"sort"

	gmath "whitted/pkg/math"
)

// DoubleCone is two opposed cones meeting at the origin along the y axis,
// with radius |y|, truncated to y in (-Height/2, Height/2). When Closed,
// disc caps seal both ends.
type DoubleCone struct {
	Height float64
	Closed bool
}

// IntersectObjectSpace solves the cone quadratic. A ray parallel to one
// of the cone's halves degenerates to a single tangent root.
func (c DoubleCone) IntersectObjectSpace(r gmath.Ray) []float64 {
	ymin, ymax := -c.Height/2, c.Height/2
	var ts []float64

	a := r.Direction.X*r.Direction.X - r.Direction.Y*r.Direction.Y + r.Direction.Z*r.Direction.Z
	b := 2 * (r.Origin.X*r.Direction.X - r.Origin.Y*r.Direction.Y + r.Origin.Z*r.Direction.Z)
	cc := r.Origin.X*r.Origin.X - r.Origin.Y*r.Origin.Y + r.Origin.Z*r.Origin.Z

	if math.Abs(a) < gmath.Epsilon {
		if math.Abs(b) >= gmath.Epsilon {
			ts = append(ts, -cc/(2*b))
		}
	} else {
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sqrtD := math.Sqrt(disc)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}
			if y := r.Origin.Y + t0*r.Direction.Y; y > ymin && y < ymax {
				ts = append(ts, t0)
			}
			if y := r.Origin.Y + t1*r.Direction.Y; y > ymin && y < ymax {
				ts = append(ts, t1)
			}
		}
	}

	if c.Closed && math.Abs(r.Direction.Y) >= gmath.Epsilon {
		for _, yCap := range []float64{ymin, ymax} {
			t := (yCap - r.Origin.Y) / r.Direction.Y
			x := r.Origin.X + t*r.Direction.X
			y := r.Origin.Y + t*r.Direction.Y
			z := r.Origin.Z + t*r.Direction.Z
			if x*x+z*z <= y*y {
				ts = append(ts, t)
			}
		}
	}

	sort.Float64s(ts)
	return ts
}

// NormalAtObjectSpace returns the cap normal inside the end discs and the
// slanted surface normal elsewhere.
func (c DoubleCone) NormalAtObjectSpace(p gmath.Tuple) gmath.Tuple {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < p.Y*p.Y && p.Y <= -c.Height/2+gmath.Epsilon:
		return gmath.NewVector(0, -1, 0)
	case dist < p.Y*p.Y && p.Y >= c.Height/2-gmath.Epsilon:
		return gmath.NewVector(0, 1, 0)
	default:
		return gmath.NewVector(p.X, -p.Y, p.Z).Normalize()
	}
}
