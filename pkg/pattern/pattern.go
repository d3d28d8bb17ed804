// Package pattern implements the procedural surface textures a material
// samples: solid color, stripes, gradient, rings, and checkers. Each
// pattern defines its color purely in its own pattern space; ColorAtObject
// brings a world point into that space through the body and pattern
// transforms.
package pattern

import (
	"math"

	"whitted/pkg/color"
	gmath "whitted/pkg/math"
)

// Pattern is a texture sampled in its own pattern-local space.
type Pattern interface {
	// ColorAtPatternSpace returns the color at a point already expressed
	// in pattern space.
	ColorAtPatternSpace(p gmath.Tuple) color.Color
	// Transform is the pattern-space-to-object-space transform.
	Transform() gmath.Matrix4
}

// ColorAtObject samples a pattern at a world-space point on a body with
// the given transform.
func ColorAtObject(pat Pattern, bodyTransform gmath.Matrix4, worldPoint gmath.Tuple) color.Color {
	objectPoint := bodyTransform.Inverse().MultiplyTuple(worldPoint)
	patternPoint := pat.Transform().Inverse().MultiplyTuple(objectPoint)
	return pat.ColorAtPatternSpace(patternPoint)
}

// Flat is a constant color.
type Flat struct {
	C color.Color
}

// NewFlat creates a solid-color pattern.
func NewFlat(c color.Color) Flat {
	return Flat{C: c}
}

func (f Flat) ColorAtPatternSpace(gmath.Tuple) color.Color {
	return f.C
}

func (f Flat) Transform() gmath.Matrix4 {
	return gmath.Identity()
}

// Striped alternates between two colors along x in unit-wide bands.
type Striped struct {
	A, B color.Color
	M    gmath.Matrix4
}

// NewStriped creates a stripe pattern.
func NewStriped(a, b color.Color, transform gmath.Matrix4) Striped {
	return Striped{A: a, B: b, M: transform}
}

func (s Striped) ColorAtPatternSpace(p gmath.Tuple) color.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return s.A
	}
	return s.B
}

func (s Striped) Transform() gmath.Matrix4 {
	return s.M
}

// Gradient blends linearly from a to b within each unit interval of x.
// It does not wrap.
type Gradient struct {
	A, B color.Color
	M    gmath.Matrix4
}

// NewGradient creates a gradient pattern.
func NewGradient(a, b color.Color, transform gmath.Matrix4) Gradient {
	return Gradient{A: a, B: b, M: transform}
}

func (g Gradient) ColorAtPatternSpace(p gmath.Tuple) color.Color {
	fraction := p.X - math.Floor(p.X)
	return g.A.Add(g.B.Subtract(g.A).Multiply(fraction))
}

func (g Gradient) Transform() gmath.Matrix4 {
	return g.M
}

// Ring alternates between two colors in concentric rings around the z
// axis. Only x and y participate; z is ignored.
type Ring struct {
	A, B color.Color
	M    gmath.Matrix4
}

// NewRing creates a ring pattern.
func NewRing(a, b color.Color, transform gmath.Matrix4) Ring {
	return Ring{A: a, B: b, M: transform}
}

func (r Ring) ColorAtPatternSpace(p gmath.Tuple) color.Color {
	distance := math.Sqrt(p.X*p.X + p.Y*p.Y)
	if int(math.Floor(distance))%2 == 0 {
		return r.A
	}
	return r.B
}

func (r Ring) Transform() gmath.Matrix4 {
	return r.M
}

// Checkers alternates between two colors in a 3D checkerboard of unit
// cubes.
type Checkers struct {
	A, B color.Color
	M    gmath.Matrix4
}

// NewCheckers creates a checker pattern.
func NewCheckers(a, b color.Color, transform gmath.Matrix4) Checkers {
	return Checkers{A: a, B: b, M: transform}
}

func (c Checkers) ColorAtPatternSpace(p gmath.Tuple) color.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if int(sum)%2 == 0 {
		return c.A
	}
	return c.B
}

func (c Checkers) Transform() gmath.Matrix4 {
	return c.M
}
