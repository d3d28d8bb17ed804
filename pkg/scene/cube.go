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

// GlassCube floats a tilted glass cube over a reflective checkered floor.
func GlassCube() (*world.World, *camera.Camera) {
	floorMaterial := material.Default()
	floorMaterial.Pattern = pattern.NewCheckers(color.Black(), color.White(), gmath.Identity())
	floorMaterial.Specular = 0
	floorMaterial.Reflectiveness = 0.5
	floor := shape.NewPlane(gmath.Identity(), floorMaterial)

	glass := material.Default()
	glass.Reflectiveness = 0.2
	glass.Transparency = 0.8
	glass.RefractiveIndex = 1.5
	cube := shape.NewCube(
		gmath.Translation(0, 2, 0).
			Multiply(gmath.RotationY(0.955531)).
			Multiply(gmath.RotationX(-math.Pi/6)),
		glass)

	w := world.New(
		[]material.PointLight{
			material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White()),
		},
		[]shape.Body{floor, cube},
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
