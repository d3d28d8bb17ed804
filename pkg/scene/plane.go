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

// PlaneFloor places three matte spheres on a true plane floor.
func PlaneFloor() (*world.World, *camera.Camera) {
	floorMaterial := material.Default()
	floorMaterial.Pattern = pattern.NewFlat(color.New(0.5, 0.45, 0.45))
	floorMaterial.Specular = 0
	floor := shape.NewPlane(gmath.Identity(), floorMaterial)

	leftMaterial := material.Default()
	leftMaterial.Pattern = pattern.NewFlat(color.New(0.78, 0.28, 0.96))
	left := shape.NewSphere(
		gmath.Translation(-1.5, 0.33, -0.75).Multiply(gmath.Scaling(0.33, 0.33, 0.33)),
		leftMaterial)

	middleMaterial := material.Default()
	middleMaterial.Pattern = pattern.NewFlat(color.New(1, 0.49, 0))
	middleMaterial.Diffuse = 0.7
	middleMaterial.Specular = 0.1
	middleMaterial.Shininess = 50
	middle := shape.NewSphere(gmath.Translation(-0.5, 1, 0.5), middleMaterial)

	rightMaterial := material.Default()
	rightMaterial.Pattern = pattern.NewFlat(color.New(0.51, 0.75, 0.06))
	right := shape.NewSphere(
		gmath.Translation(1.5, 0.5, -0.5).Multiply(gmath.Scaling(0.5, 0.5, 0.5)),
		rightMaterial)

	w := world.New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{floor, left, middle, right},
		nil,
		0,
	)

	cam := camera.New(800, 800, math.Pi/3).LookAt(
		gmath.NewPoint(0, 2.3, -8),
		gmath.NewPoint(0, 1, 0),
		gmath.NewVector(0, 1, 0),
	)
	return w, cam
}
