package shape

import (
	"testing"

	gmath "whitted/pkg/math"
)

func TestPlane_Intersect(t *testing.T) {
	p := Plane{}
	tests := []struct {
		name string
		ray  gmath.Ray
		want []float64
	}{
		{
			name: "parallel ray misses",
			ray:  gmath.NewRay(gmath.NewPoint(0, 10, 0), gmath.NewVector(0, 0, 1)),
			want: nil,
		},
		{
			name: "coplanar ray misses",
			ray:  gmath.NewRay(gmath.NewPoint(0, 0, 0), gmath.NewVector(0, 0, 1)),
			want: nil,
		},
		{
			name: "from above",
			ray:  gmath.NewRay(gmath.NewPoint(0, 1, 0), gmath.NewVector(0, -1, 0)),
			want: []float64{1},
		},
		{
			name: "from below",
			ray:  gmath.NewRay(gmath.NewPoint(0, -1, 0), gmath.NewVector(0, 1, 0)),
			want: []float64{1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.IntersectObjectSpace(tt.ray)
			if len(got) != len(tt.want) {
				t.Fatalf("Got %v, want %v", got, tt.want)
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("Root %d = %f, want %f", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlane_NormalAt(t *testing.T) {
	p := Plane{}
	want := gmath.NewVector(0, 1, 0)
	for _, point := range []gmath.Tuple{
		gmath.NewPoint(0, 0, 0),
		gmath.NewPoint(10, 0, -10),
		gmath.NewPoint(-5, 0, 150),
	} {
		if got := p.NormalAtObjectSpace(point); !got.Equals(want) {
			t.Errorf("NormalAtObjectSpace(%v) = %v, want %v", point, got, want)
		}
	}
}
