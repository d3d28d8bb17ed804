package world

import (
	"whitted/pkg/color"
	"whitted/pkg/material"
	gmath "whitted/pkg/math"
	"whitted/pkg/pattern"
	"whitted/pkg/shape"
)

// Default returns a small two-sphere world: an outer green sphere and an
// inner half-size default sphere, lit by a single white light. Tests and
// example scenes build on it.
func Default() *World {
	outer := material.Default()
	outer.Pattern = pattern.NewFlat(color.New(0.8, 1.0, 0.6))
	outer.Diffuse = 0.7
	outer.Specular = 0.2

	return New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{
			shape.NewSphere(gmath.Identity(), outer),
			shape.NewSphere(gmath.Scaling(0.5, 0.5, 0.5), material.Default()),
		},
		nil,
		0,
	)
}
