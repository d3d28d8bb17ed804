package scene

import (
	"math"

	"whitted/pkg/camera"
	"whitted/pkg/color"
	"whitted/pkg/material"
	gmath "whitted/pkg/math"
	"whitted/pkg/pattern"
	"whitted/pkg/shape"
	"whitted/pkg/world"
)

var (
	red   = color.New(1, 0, 0)
	green = color.New(0, 1, 0)
	blue  = color.New(0, 0, 1)
)

// Patterns shows each procedural texture on its own body: a striped
// floor, a ringed sphere, a striped sphere, a gradient sphere, and a
// checkered sphere.
func Patterns() (*world.World, *camera.Camera) {
	floorMaterial := material.Default()
	floorMaterial.Pattern = pattern.NewStriped(color.Black(), color.White(), gmath.Identity())
	floorMaterial.Specular = 0
	floor := shape.NewPlane(gmath.Identity(), floorMaterial)

	ringed := material.Default()
	ringed.Pattern = pattern.NewRing(red, color.White(),
		gmath.RotationY(-math.Pi/6).Multiply(gmath.Scaling(0.2, 0.2, 0.2)))
	farLeft := shape.NewSphere(gmath.Translation(-6, 3, 10), ringed)

	striped := material.Default()
	striped.Pattern = pattern.NewStriped(red, color.White(),
		gmath.RotationZ(-math.Pi/6).
			Multiply(gmath.Translation(-1, 0, 0)).
			Multiply(gmath.Scaling(0.2, 1, 1)))
	left := shape.NewSphere(
		gmath.Translation(-1.5, 0.33, -0.75).Multiply(gmath.Scaling(0.33, 0.33, 0.33)),
		striped)

	graded := material.Default()
	graded.Pattern = pattern.NewGradient(red, green,
		gmath.RotationZ(math.Pi/2).
			Multiply(gmath.Translation(-1, 0, 0)).
			Multiply(gmath.Scaling(2, 1, 1)))
	graded.Diffuse = 0.9
	graded.Specular = 1.8
	middle := shape.NewSphere(gmath.Translation(-0.5, 1, 1.5), graded)

	checkered := material.Default()
	checkered.Pattern = pattern.NewCheckers(blue, color.White(),
		gmath.RotationZ(math.Pi/6).Multiply(gmath.Scaling(0.4, 0.4, 0.4)))
	right := shape.NewSphere(
		gmath.Translation(1.5, 0.5, -0.5).Multiply(gmath.Scaling(0.5, 0.5, 0.5)),
		checkered)

	w := world.New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{floor, farLeft, left, middle, right},
		nil,
		0,
	)

	cam := camera.New(1620, 1080, math.Pi/3).LookAt(
		gmath.NewPoint(0, 1.5, -5),
		gmath.NewPoint(0, 1, 0),
		gmath.NewVector(0, 1, 0),
	)
	return w, cam
}
