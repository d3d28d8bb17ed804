// Package material implements the Phong reflection model with the
// extensions the integrator needs: reflectiveness, transparency, and a
// refractive index for dielectrics.
package material

import (
	"math"

	"whitted/pkg/color"
	gmath "whitted/pkg/math"
	"whitted/pkg/pattern"
)

// Phong holds the parameters of the Phong lighting model plus the
// reflection and refraction coefficients the integrator consumes.
type Phong struct {
	Pattern         pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflectiveness  float64 // in [0, 1]
	Transparency    float64 // in [0, 1]
	RefractiveIndex float64 // >= 1
}

// Default returns a matte white material.
func Default() Phong {
	return Phong{
		Pattern:         pattern.NewFlat(color.White()),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflectiveness:  0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// ColorAt samples the material's pattern at a world-space point on a body
// with the given transform.
func (m Phong) ColorAt(bodyTransform gmath.Matrix4, worldPoint gmath.Tuple) color.Color {
	return pattern.ColorAtObject(m.Pattern, bodyTransform, worldPoint)
}

// Lighting computes the Phong contribution of one light at a point.
// transparency is the fraction of the light that reaches the point: 1 if
// fully lit, 0 if fully shadowed, fractional behind transparent
// occluders. It attenuates the diffuse and specular terms; ambient always
// applies.
func (m Phong) Lighting(bodyTransform gmath.Matrix4, light PointLight, point, eyev, normalv gmath.Tuple, transparency float64) color.Color {
	effective := m.ColorAt(bodyTransform, point).Blend(light.Intensity)
	ambient := effective.Multiply(m.Ambient)

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	specular := color.Black()
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse.Add(specular).Multiply(transparency))
}
