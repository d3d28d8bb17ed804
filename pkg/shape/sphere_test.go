package shape

import (
	"math"
	"testing"

	"whitted/pkg/material"
	gmath "whitted/pkg/math"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < gmath.Epsilon
}

func TestSphere_Intersect(t *testing.T) {
	tests := []struct {
		name string
		ray  gmath.Ray
		want []float64
	}{
		{
			name: "through the center",
			ray:  gmath.NewRay(gmath.NewPoint(0, 0, -5), gmath.NewVector(0, 0, 1)),
			want: []float64{4, 6},
		},
		{
			name: "at a tangent",
			ray:  gmath.NewRay(gmath.NewPoint(0, 1, -5), gmath.NewVector(0, 0, 1)),
			want: []float64{5, 5},
		},
		{
			name: "missing entirely",
			ray:  gmath.NewRay(gmath.NewPoint(0, 2, -5), gmath.NewVector(0, 0, 1)),
			want: nil,
		},
		{
			name: "originating inside",
			ray:  gmath.NewRay(gmath.NewPoint(0, 0, 0), gmath.NewVector(0, 0, 1)),
			want: []float64{-1, 1},
		},
		{
			name: "sphere behind the ray",
			ray:  gmath.NewRay(gmath.NewPoint(0, 0, 5), gmath.NewVector(0, 0, 1)),
			want: []float64{-6, -4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sphere{}.IntersectObjectSpace(tt.ray)
			if len(got) != len(tt.want) {
				t.Fatalf("Got %d roots %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("Root %d = %f, want %f", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSphere_IntersectTransformed(t *testing.T) {
	r := gmath.NewRay(gmath.NewPoint(0, 0, -5), gmath.NewVector(0, 0, 1))

	scaled := NewSphere(gmath.Scaling(2, 2, 2), material.Default())
	xs := scaled.Intersect(r)
	if len(xs) != 2 || !approxEqual(xs[0].T, 3) || !approxEqual(xs[1].T, 7) {
		t.Errorf("Scaled sphere roots: %v", xs)
	}
	for _, x := range xs {
		if x.Body != &scaled {
			t.Error("Intersection not tagged with its body")
		}
		if !x.Ray.Origin.Equals(r.Origin) {
			t.Error("Intersection not tagged with the original ray")
		}
	}

	translated := NewSphere(gmath.Translation(5, 0, 0), material.Default())
	if xs := translated.Intersect(r); len(xs) != 0 {
		t.Errorf("Translated sphere should miss, got %v", xs)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	s := Sphere{}
	sqrt3over3 := math.Sqrt(3) / 3
	tests := []struct {
		name  string
		point gmath.Tuple
		want  gmath.Tuple
	}{
		{"on the x axis", gmath.NewPoint(1, 0, 0), gmath.NewVector(1, 0, 0)},
		{"on the y axis", gmath.NewPoint(0, 1, 0), gmath.NewVector(0, 1, 0)},
		{"on the z axis", gmath.NewPoint(0, 0, 1), gmath.NewVector(0, 0, 1)},
		{
			"at a nonaxial point",
			gmath.NewPoint(sqrt3over3, sqrt3over3, sqrt3over3),
			gmath.NewVector(sqrt3over3, sqrt3over3, sqrt3over3),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.NormalAtObjectSpace(tt.point)
			if !got.Equals(tt.want) {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
			if !got.Equals(got.Normalize()) {
				t.Errorf("Normal %v is not normalized", got)
			}
		})
	}
}

func TestBody_NormalAtTransformed(t *testing.T) {
	translated := NewSphere(gmath.Translation(0, 1, 0), material.Default())
	got := translated.NormalAt(gmath.NewPoint(0, 1.70711, -0.70711))
	if !got.Equals(gmath.NewVector(0, 0.70711, -0.70711)) {
		t.Errorf("Got %v", got)
	}

	m := gmath.Scaling(1, 0.5, 1).Multiply(gmath.RotationZ(math.Pi / 5))
	deformed := NewSphere(m, material.Default())
	got = deformed.NormalAt(gmath.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2))
	if !got.Equals(gmath.NewVector(0, 0.97014, -0.24254)) {
		t.Errorf("Got %v", got)
	}
}
