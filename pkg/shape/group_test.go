package shape

import (
	"math"
	"testing"

	"whitted/pkg/material"
	gmath "whitted/pkg/math"
)

func TestGroup_Empty(t *testing.T) {
	g := NewGroup(gmath.Identity()).Build()
	if len(g.Bodies()) != 0 {
		t.Errorf("Got %d bodies", len(g.Bodies()))
	}
	r := gmath.NewRay(gmath.NewPoint(0, 0, 0), gmath.NewVector(0, 0, 1))
	if xs := g.Intersect(r); len(xs) != 0 {
		t.Errorf("Got %v", xs)
	}
}

func TestGroup_IntersectSorted(t *testing.T) {
	g := NewGroup(gmath.Identity())
	g.AddBody(NewSphere(gmath.Identity(), material.Default()))
	g.AddBody(NewSphere(gmath.Translation(0, 0, -3), material.Default()))
	g.AddBody(NewSphere(gmath.Translation(5, 0, 0), material.Default()))
	g.Build()

	r := gmath.NewRay(gmath.NewPoint(0, 0, -5), gmath.NewVector(0, 0, 1))
	xs := g.Intersect(r)
	if len(xs) != 4 {
		t.Fatalf("Got %d intersections, want 4", len(xs))
	}
	want := []float64{1, 3, 4, 6}
	for i := range xs {
		if !approxEqual(xs[i].T, want[i]) {
			t.Errorf("Root %d = %f, want %f", i, xs[i].T, want[i])
		}
	}
}

func TestGroup_BakesAncestorTransforms(t *testing.T) {
	g := NewGroup(gmath.Scaling(2, 2, 2))
	g.AddBody(NewSphere(gmath.Translation(5, 0, 0), material.Default()))
	g.Build()

	r := gmath.NewRay(gmath.NewPoint(10, 0, -10), gmath.NewVector(0, 0, 1))
	xs := g.Intersect(r)
	if len(xs) != 2 {
		t.Fatalf("Got %d intersections, want 2", len(xs))
	}
}

func TestGroup_NestedNormal(t *testing.T) {
	inner := NewGroup(gmath.Scaling(1, 2, 3))
	inner.AddBody(NewSphere(gmath.Translation(5, 0, 0), material.Default()))
	outer := NewGroup(gmath.RotationY(math.Pi / 2))
	outer.AddGroup(inner)
	outer.Build()

	bodies := outer.Bodies()
	if len(bodies) != 1 {
		t.Fatalf("Got %d bodies, want 1", len(bodies))
	}
	got := bodies[0].NormalAt(gmath.NewPoint(1.7321, 1.1547, -5.5774))
	want := gmath.NewVector(0.2857, 0.4286, -0.8571)
	for name, pair := range map[string][2]float64{
		"x": {got.X, want.X},
		"y": {got.Y, want.Y},
		"z": {got.Z, want.Z},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-4 {
			t.Errorf("Normal %s = %f, want %f", name, pair[0], pair[1])
		}
	}
}

func TestGroup_BuildIsIdempotent(t *testing.T) {
	g := NewGroup(gmath.Scaling(2, 2, 2))
	g.AddBody(NewSphere(gmath.Translation(5, 0, 0), material.Default()))
	g.Build()
	first := g.Bodies()[0].Transform
	g.Build()
	second := g.Bodies()[0].Transform
	if !first.Equals(second) {
		t.Errorf("Rebuild changed baked transform: %v vs %v", first, second)
	}
	if !first.Equals(gmath.Scaling(2, 2, 2).Multiply(gmath.Translation(5, 0, 0))) {
		t.Errorf("Baked transform = %v", first)
	}
}
