package shape

import (
	"math"
	"sort"

	gmath "whitted/pkg/math"
)

// Cylinder is the y-axis cylinder of radius 1, truncated to
// y in (-Height/2, Height/2). When Closed, disc caps seal both ends.
type Cylinder struct {
	Height float64
	Closed bool
}

// IntersectObjectSpace solves the quadratic on the xz projection and,
// for closed cylinders, tests the two cap discs. At most the first two
// valid roots are kept, sorted ascending.
func (c Cylinder) IntersectObjectSpace(r gmath.Ray) []float64 {
	ymin, ymax := -c.Height/2, c.Height/2
	var ts []float64

	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	// A ray parallel to the axis has no body roots.
	if math.Abs(a) >= gmath.Epsilon {
		b := 2 * (r.Origin.X*r.Direction.X + r.Origin.Z*r.Direction.Z)
		cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1
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
			z := r.Origin.Z + t*r.Direction.Z
			if x*x+z*z <= 1 {
				ts = append(ts, t)
			}
		}
	}

	sort.Float64s(ts)
	if len(ts) > 2 {
		ts = ts[:2]
	}
	return ts
}

// NormalAtObjectSpace returns the cap normal inside the end discs and the
// radial normal on the barrel.
func (c Cylinder) NormalAtObjectSpace(p gmath.Tuple) gmath.Tuple {
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < 1 && p.Y <= -c.Height/2+gmath.Epsilon:
		return gmath.NewVector(0, -1, 0)
	case dist < 1 && p.Y >= c.Height/2-gmath.Epsilon:
		return gmath.NewVector(0, 1, 0)
	default:
		return gmath.NewVector(p.X, 0, p.Z)
	}
}
