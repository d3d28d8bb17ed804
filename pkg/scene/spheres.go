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

// Spheres is the classic three-spheres-in-a-corner scene. The floor and
// walls are squashed spheres, which keeps the scene renderable before
// planes exist.
func Spheres() (*world.World, *camera.Camera) {
	wallMaterial := material.Default()
	wallMaterial.Pattern = pattern.NewFlat(color.New(1, 0.9, 0.9))
	wallMaterial.Specular = 0

	floor := shape.NewSphere(gmath.Scaling(10, 0.01, 10), wallMaterial)
	leftWall := shape.NewSphere(
		gmath.Translation(0, 0, 5).
			Multiply(gmath.RotationY(-math.Pi/4)).
			Multiply(gmath.RotationX(math.Pi/2)).
			Multiply(gmath.Scaling(10, 0.01, 10)),
		wallMaterial)
	rightWall := shape.NewSphere(
		gmath.Translation(0, 0, 5).
			Multiply(gmath.RotationY(math.Pi/4)).
			Multiply(gmath.RotationX(math.Pi/2)).
			Multiply(gmath.Scaling(10, 0.01, 10)),
		wallMaterial)

	middle := shape.NewSphere(gmath.Translation(-0.5, 1, 0.5), glossy(color.New(0.1, 1, 0.5)))
	right := shape.NewSphere(
		gmath.Translation(1.5, 0.5, -0.5).Multiply(gmath.Scaling(0.5, 0.5, 0.5)),
		glossy(color.New(0.5, 1, 0.1)))
	left := shape.NewSphere(
		gmath.Translation(-1.5, 0.33, -0.75).Multiply(gmath.Scaling(0.33, 0.33, 0.33)),
		glossy(color.New(1, 0.8, 0.1)))

	w := world.New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{floor, leftWall, rightWall, middle, right, left},
		nil,
		0,
	)

	cam := camera.New(1200, 600, math.Pi/3).LookAt(
		gmath.NewPoint(0, 1.5, -5),
		gmath.NewPoint(0, 1, 0),
		gmath.NewVector(0, 1, 0),
	)
	return w, cam
}

func glossy(c color.Color) material.Phong {
	m := material.Default()
	m.Pattern = pattern.NewFlat(c)
	m.Diffuse = 0.7
	m.Specular = 0.3
	return m
}
