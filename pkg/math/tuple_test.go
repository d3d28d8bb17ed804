package math

import (
	"math"
	"testing"
)

func TestTuple_PointAndVector(t *testing.T) {
	p := NewPoint(4.3, -4.2, 3.1)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Expected point, got w=%f", p.W)
	}

	v := NewVector(4.3, -4.2, 3.1)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("Expected vector, got w=%f", v.W)
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Tuple
		want Tuple
	}{
		{
			name: "adding point and vector yields point",
			got:  NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1)),
			want: NewPoint(1, 1, 6),
		},
		{
			name: "subtracting two points yields vector",
			got:  NewPoint(3, 2, 1).Subtract(NewPoint(5, 6, 7)),
			want: NewVector(-2, -4, -6),
		},
		{
			name: "subtracting vector from point yields point",
			got:  NewPoint(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			want: NewPoint(-2, -4, -6),
		},
		{
			name: "subtracting two vectors yields vector",
			got:  NewVector(3, 2, 1).Subtract(NewVector(5, 6, 7)),
			want: NewVector(-2, -4, -6),
		},
		{
			name: "negation",
			got:  NewTuple(1, -2, 3, -4).Negate(),
			want: NewTuple(-1, 2, -3, 4),
		},
		{
			name: "scalar multiplication",
			got:  NewTuple(1, -2, 3, -4).Multiply(3.5),
			want: NewTuple(3.5, -7, 10.5, -14),
		},
		{
			name: "scalar division",
			got:  NewTuple(1, -2, 3, -4).Divide(2),
			want: NewTuple(0.5, -1, 1.5, -2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.want) {
				t.Errorf("Got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestTuple_Magnitude(t *testing.T) {
	if got := NewVector(1, 0, 0).Magnitude(); got != 1 {
		t.Errorf("Expected magnitude 1, got %f", got)
	}
	if got := NewVector(1, 2, 3).Magnitude(); math.Abs(got-math.Sqrt(14)) > Epsilon {
		t.Errorf("Expected magnitude sqrt(14), got %f", got)
	}
}

func TestTuple_Normalize(t *testing.T) {
	if got := NewVector(4, 0, 0).Normalize(); !got.Equals(NewVector(1, 0, 0)) {
		t.Errorf("Got %v", got)
	}
	got := NewVector(1, 2, 3).Normalize()
	if math.Abs(got.Magnitude()-1) > Epsilon {
		t.Errorf("Normalized vector has magnitude %f", got.Magnitude())
	}
}

func TestTuple_DotAndCross(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)
	if got := a.Dot(b); got != 20 {
		t.Errorf("Expected dot 20, got %f", got)
	}
	if got := a.Cross(b); !got.Equals(NewVector(-1, 2, -1)) {
		t.Errorf("Got cross %v", got)
	}
	if got := b.Cross(a); !got.Equals(NewVector(1, -2, 1)) {
		t.Errorf("Got cross %v", got)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name string
		v    Tuple
		n    Tuple
		want Tuple
	}{
		{
			name: "approaching at 45 degrees",
			v:    NewVector(1, -1, 0),
			n:    NewVector(0, 1, 0),
			want: NewVector(1, 1, 0),
		},
		{
			name: "off a slanted surface",
			v:    NewVector(0, -1, 0),
			n:    NewVector(math.Sqrt2/2, math.Sqrt2/2, 0),
			want: NewVector(1, 0, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Reflect(tt.n); !got.Equals(tt.want) {
				t.Errorf("Got %v, want %v", got, tt.want)
			}
		})
	}
}
