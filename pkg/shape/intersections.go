package shape

import (
	"math"
	"sort"

	gmath "whitted/pkg/math"
)

// Intersection records that a ray meets a body at parameter t. The t
// value is an opaque parameter consumed via Ray.Position.
type Intersection struct {
	T    float64
	Body *Body
	Ray  gmath.Ray
}

// Intersections is an ordered collection of intersections for one ray.
type Intersections []Intersection

// Sort orders the intersections by ascending t.
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// FilterNaN drops roots that degenerated to NaN.
func (xs Intersections) FilterNaN() Intersections {
	out := xs[:0]
	for _, i := range xs {
		if !math.IsNaN(i.T) {
			out = append(out, i)
		}
	}
	return out
}

// HitIndex returns the index of the first intersection with t > 0, or -1
// when every t is non-positive. The collection must already be sorted.
func (xs Intersections) HitIndex() int {
	for idx := range xs {
		if xs[idx].T > 0 {
			return idx
		}
	}
	return -1
}

// Hit returns the intersection with the smallest strictly-positive t.
func (xs Intersections) Hit() (Intersection, bool) {
	idx := xs.HitIndex()
	if idx < 0 {
		return Intersection{}, false
	}
	return xs[idx], true
}

// ComputedIntersection is the immutable shading record derived from a
// hit: the surface point with its biased variants, the viewing and
// surface vectors, and the refractive indices on both sides of the
// interface.
type ComputedIntersection struct {
	Inside     bool
	Point      gmath.Tuple
	OverPoint  gmath.Tuple
	UnderPoint gmath.Tuple
	Body       *Body
	EyeV       gmath.Tuple
	NormalV    gmath.Tuple
	ReflectV   gmath.Tuple
	MuFrom     float64
	MuTo       float64
}

// Prepare derives the shading record for the hit at index hit of the
// sorted collection. The whole collection participates so the
// refractive-index stack can be replayed up to the hit.
func (xs Intersections) Prepare(hit int) ComputedIntersection {
	muFrom, muTo := xs.refractiveIndices(hit)

	i := xs[hit]
	point := i.Ray.Position(i.T)
	normalv := i.Body.NormalAt(point)
	eyev := i.Ray.Direction.Negate()
	inside := normalv.Dot(eyev) < 0
	if inside {
		normalv = normalv.Negate()
	}
	bias := normalv.Multiply(gmath.Epsilon)

	return ComputedIntersection{
		Inside:     inside,
		Point:      point,
		OverPoint:  point.Add(bias),
		UnderPoint: point.Subtract(bias),
		Body:       i.Body,
		EyeV:       eyev,
		NormalV:    normalv,
		ReflectV:   i.Ray.Direction.Reflect(normalv),
		MuFrom:     muFrom,
		MuTo:       muTo,
	}
}

// refractiveIndices replays the container stack along the sorted
// intersections: entering a body pushes it, meeting it again pops it. The
// indices on either side of the hit are those of the innermost container
// just before and just after the boundary.
func (xs Intersections) refractiveIndices(hit int) (muFrom, muTo float64) {
	muFrom, muTo = 1, 1
	containers := make([]*Body, 0, 4)
	for idx := range xs {
		if idx == hit && len(containers) > 0 {
			muFrom = containers[len(containers)-1].Material.RefractiveIndex
		}

		if pos := indexOfBody(containers, xs[idx].Body); pos >= 0 {
			containers = append(containers[:pos], containers[pos+1:]...)
		} else {
			containers = append(containers, xs[idx].Body)
		}

		if idx == hit {
			if len(containers) > 0 {
				muTo = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}
	return muFrom, muTo
}

func indexOfBody(bodies []*Body, b *Body) int {
	for i, candidate := range bodies {
		if candidate == b {
			return i
		}
	}
	return -1
}
