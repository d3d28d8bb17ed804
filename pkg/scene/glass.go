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

// Glass pairs a fully transparent sphere with a fully reflective one over
// a reflective checkered floor.
func Glass() (*world.World, *camera.Camera) {
	floorMaterial := material.Default()
	floorMaterial.Pattern = pattern.NewCheckers(color.Black(), color.White(), gmath.Identity())
	floorMaterial.Specular = 0
	floorMaterial.Reflectiveness = 0.5
	floor := shape.NewPlane(gmath.Identity(), floorMaterial)

	graded := material.Default()
	graded.Pattern = pattern.NewGradient(red, green,
		gmath.RotationZ(270.0/180.0*math.Pi).
			Multiply(gmath.Translation(1, 0, 0)).
			Multiply(gmath.Scaling(2, 2, 2)))
	left := shape.NewSphere(
		gmath.Translation(-1.5, 0.33, -0.75).Multiply(gmath.Scaling(0.33, 0.33, 0.33)),
		graded)

	glass := material.Default()
	glass.Pattern = pattern.NewFlat(color.Black())
	glass.Diffuse = 0.1
	glass.Specular = 0.3
	glass.Shininess = 200
	glass.Transparency = 1
	glass.RefractiveIndex = 1.5
	middle := shape.NewSphere(gmath.Translation(-0.5, 1, 0.5), glass)

	mirror := material.Default()
	mirror.Pattern = pattern.NewFlat(color.Black())
	mirror.Shininess = 1000
	mirror.RefractiveIndex = 1.5
	mirror.Reflectiveness = 1
	right := shape.NewSphere(
		gmath.Translation(1.5, 0.5, -0.5).Multiply(gmath.Scaling(0.5, 0.5, 0.5)),
		mirror)

	w := world.New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{floor, left, middle, right},
		nil,
		5,
	)

	cam := camera.New(1620, 1080, math.Pi/3).LookAt(
		gmath.NewPoint(0, 1.5, -5),
		gmath.NewPoint(0, 1, 0),
		gmath.NewVector(0, 1, 0),
	)
	return w, cam
}
