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

// Cylinders shows a capped cylinder and a capped double cone over a
// reflective checkered floor.
func Cylinders() (*world.World, *camera.Camera) {
	floorMaterial := material.Default()
	floorMaterial.Pattern = pattern.NewCheckers(color.Black(), color.White(), gmath.Identity())
	floorMaterial.Reflectiveness = 0.5
	floor := shape.NewPlane(gmath.Identity(), floorMaterial)

	cylinder := shape.NewCylinder(
		gmath.Translation(-5, 2, 0).
			Multiply(gmath.RotationX(-math.Pi/3)).
			Multiply(gmath.RotationZ(math.Pi/6)),
		gradedMetal(), 2, true)

	cone := shape.NewDoubleCone(gmath.Translation(5, 2, 0), stripedMetal(), 2, true)

	w := world.New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{floor, cylinder, cone},
		nil,
		5,
	)

	cam := camera.New(1620, 1080, math.Pi/3).LookAt(
		gmath.NewPoint(0, 3.5, -15),
		gmath.NewPoint(0, 1, 0),
		gmath.NewVector(0, 1, 0),
	)
	return w, cam
}

func gradedMetal() material.Phong {
	m := material.Default()
	m.Pattern = pattern.NewGradient(red, green,
		gmath.Translation(-1, 0, 0).Multiply(gmath.Scaling(2, 1, 1)))
	m.Reflectiveness = 0.1
	return m
}

func stripedMetal() material.Phong {
	m := material.Default()
	m.Pattern = pattern.NewStriped(blue, color.White(),
		gmath.RotationZ(-math.Pi/2).Multiply(gmath.Scaling(0.1, 0.1, 0.1)))
	m.Reflectiveness = 0.1
	return m
}
