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

// Grouped arranges a cube, spheres, a cylinder, and a double cone under a
// single rotated group, with one free sphere outside it.
func Grouped() (*world.World, *camera.Camera) {
	redMaterial := material.Default()
	redMaterial.Pattern = pattern.NewFlat(red)

	group := shape.NewGroup(gmath.RotationZ(-math.Pi / 4))
	group.AddBody(shape.NewCube(
		gmath.Translation(0, 2, 0).Multiply(gmath.Scaling(0.4, 0.4, 0.4)),
		redMaterial))
	group.AddBody(shape.NewSphere(
		gmath.Translation(-2, 0, 0).Multiply(gmath.Scaling(0.4, 0.4, 0.4)),
		material.Default()))
	group.AddBody(shape.NewSphere(
		gmath.Translation(0, -2, 0).Multiply(gmath.Scaling(0.4, 0.4, 0.4)),
		material.Default()))
	group.AddBody(shape.NewCylinder(
		gmath.Translation(-5, 2, 0).
			Multiply(gmath.RotationX(-math.Pi/3)).
			Multiply(gmath.RotationZ(math.Pi/6)),
		gradedMetal(), 2, true))
	group.AddBody(shape.NewDoubleCone(gmath.Translation(5, 2, 0), stripedMetal(), 2, true))

	free := shape.NewSphere(
		gmath.Translation(2, 0, 0).Multiply(gmath.Scaling(0.4, 0.4, 0.4)),
		material.Default())

	w := world.New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{free},
		[]*shape.Group{group},
		5,
	)

	cam := camera.New(1620, 1080, math.Pi/3).LookAt(
		gmath.NewPoint(0, 3.5, -15),
		gmath.NewPoint(0, 1, 0),
		gmath.NewVector(0, 1, 0),
	)
	return w, cam
}
