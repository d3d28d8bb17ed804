package shape

import (
	"math"

	gmath "whitted/pkg/math"
)

// Cube is the axis-aligned cube with vertices at +-1.
type Cube struct{}

// IntersectObjectSpace runs the slab test against each pair of parallel
// faces.
func (Cube) IntersectObjectSpace(r gmath.Ray) []float64 {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z)

	tmin := maxFloat(xtmin, ytmin, ztmin)
	tmax := minFloat(xtmax, ytmax, ztmax)
	if tmin > tmax {
		return nil
	}
	return []float64{tmin, tmax}
}

func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin
	if math.Abs(direction) >= gmath.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// NormalAtObjectSpace picks the face whose coordinate has the largest
// absolute value, preserving its sign. The x axis wins ties, then y.
func (Cube) NormalAtObjectSpace(p gmath.Tuple) gmath.Tuple {
	maxc := maxFloat(math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z))
	switch maxc {
	case math.Abs(p.X):
		return gmath.NewVector(p.X, 0, 0)
	case math.Abs(p.Y):
		return gmath.NewVector(0, p.Y, 0)
	default:
		return gmath.NewVector(0, 0, p.Z)
	}
}
