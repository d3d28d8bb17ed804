// Package world implements the scene container and the Whitted
// integrator: closest-hit shading with shadows, recursive reflection and
// refraction, and Schlick's Fresnel mixing.
package world

import (
	"math"

	"whitted/pkg/color"
	"whitted/pkg/material"
	gmath "whitted/pkg/math"
	"whitted/pkg/shape"
)

// World owns the lights and bodies of a scene plus the recursion cap for
// reflection and refraction rays. During rendering it is treated as
// read-only; build a world once, render it many times.
type World struct {
	Lights          []material.PointLight
	Bodies          []shape.Body
	Groups          []*shape.Group
	ReflectionLimit int
}

// New creates a world. Any groups are built so their ancestor transforms
// are baked before the first render.
func New(lights []material.PointLight, bodies []shape.Body, groups []*shape.Group, reflectionLimit int) *World {
	for _, g := range groups {
		g.Build()
	}
	return &World{
		Lights:          lights,
		Bodies:          bodies,
		Groups:          groups,
		ReflectionLimit: reflectionLimit,
	}
}

// AddLight appends a point light.
func (w *World) AddLight(l material.PointLight) {
	w.Lights = append(w.Lights, l)
}

// AddBody appends a body.
func (w *World) AddBody(b shape.Body) {
	w.Bodies = append(w.Bodies, b)
}

// AddGroup builds and appends a group.
func (w *World) AddGroup(g *shape.Group) {
	w.Groups = append(w.Groups, g.Build())
}

// Intersect returns every intersection of the ray with the world's
// bodies, NaN roots dropped, sorted by t.
func (w *World) Intersect(r gmath.Ray) shape.Intersections {
	var xs shape.Intersections
	for i := range w.Bodies {
		xs = append(xs, w.Bodies[i].Intersect(r)...)
	}
	for _, g := range w.Groups {
		xs = append(xs, g.Intersect(r)...)
	}
	xs = xs.FilterNaN()
	xs.Sort()
	return xs
}

// ColorAt returns the color seen along a ray, recursing into reflection
// and refraction up to the world's reflection limit.
func (w *World) ColorAt(r gmath.Ray) color.Color {
	return w.colorAt(r, w.ReflectionLimit)
}

func (w *World) colorAt(r gmath.Ray, remaining int) color.Color {
	xs := w.Intersect(r)
	hit := xs.HitIndex()
	if hit < 0 {
		return color.Black()
	}
	return w.shadeHit(xs.Prepare(hit), remaining)
}

// shadeHit combines the surface, reflected, and refracted contributions
// for one shading record. When the material is both reflective and
// transparent, the secondary contributions are mixed by the Schlick
// reflectance.
func (w *World) shadeHit(cs shape.ComputedIntersection, remaining int) color.Color {
	surface := w.surfaceColorAt(cs)
	reflected := w.reflectedColorAt(cs, remaining)
	refracted := w.refractedColorAt(cs, remaining)

	m := cs.Body.Material
	if m.Reflectiveness > 0 && m.Transparency > 0 {
		reflectance := Schlick(cs)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// surfaceColorAt sums the Phong contribution of every light, each
// attenuated by the transparency of whatever stands between the surface
// and that light.
func (w *World) surfaceColorAt(cs shape.ComputedIntersection) color.Color {
	out := color.Black()
	for _, light := range w.Lights {
		factor := w.TransparencyFactor(cs.OverPoint, light)
		out = out.Add(cs.Body.Material.Lighting(
			cs.Body.Transform, light, cs.Point, cs.EyeV, cs.NormalV, factor))
	}
	return out
}

// reflectedColorAt follows the reflection ray, scaled by the material's
// reflectiveness. Black once the recursion budget is spent.
func (w *World) reflectedColorAt(cs shape.ComputedIntersection, remaining int) color.Color {
	if remaining == 0 || cs.Body.Material.Reflectiveness == 0 {
		return color.Black()
	}
	reflectRay := gmath.NewRay(cs.OverPoint, cs.ReflectV)
	return w.colorAt(reflectRay, remaining-1).Multiply(cs.Body.Material.Reflectiveness)
}

// refractedColorAt follows the refraction ray through the surface, scaled
// by the material's transparency. Total internal reflection and an
// exhausted recursion budget both yield black.
func (w *World) refractedColorAt(cs shape.ComputedIntersection, remaining int) color.Color {
	if remaining == 0 || cs.Body.Material.Transparency == 0 {
		return color.Black()
	}

	ratio := cs.MuFrom / cs.MuTo
	cosI := cs.EyeV.Dot(cs.NormalV)
	sin2T := ratio * ratio * (1 - cosI*cosI)
	if sin2T > 1 {
		return color.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := cs.NormalV.Multiply(ratio*cosI - cosT).
		Subtract(cs.EyeV.Multiply(ratio))
	refractRay := gmath.NewRay(cs.UnderPoint, direction)
	return w.colorAt(refractRay, remaining-1).Multiply(cs.Body.Material.Transparency)
}

// Schlick approximates the Fresnel reflectance for a shading record:
// the fraction of light that reflects at the interface.
func Schlick(cs shape.ComputedIntersection) float64 {
	cos := cs.EyeV.Dot(cs.NormalV)
	if cs.MuFrom > cs.MuTo {
		ratio := cs.MuFrom / cs.MuTo
		sin2T := ratio * ratio * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}
	r0 := (cs.MuFrom - cs.MuTo) / (cs.MuFrom + cs.MuTo)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}

// TransparencyFactor returns the fraction of a light's intensity that
// reaches a point: 1 when nothing occludes it, 0 behind an opaque body,
// and the product of transparencies behind transparent ones. Each
// occluding body counts once no matter how often the shadow ray crosses
// its surface.
func (w *World) TransparencyFactor(point gmath.Tuple, light material.PointLight) float64 {
	v := light.Position.Subtract(point)
	distance := v.Magnitude()
	r := gmath.NewRay(point, v.Normalize())

	factor := 1.0
	var seen []*shape.Body
	for _, i := range w.Intersect(r) {
		if i.T <= 0 || i.T >= distance {
			continue
		}
		if containsBody(seen, i.Body) {
			continue
		}
		seen = append(seen, i.Body)
		factor *= i.Body.Material.Transparency
	}
	return factor
}

// IsShadowed reports whether any light is at least partly occluded at the
// point.
func (w *World) IsShadowed(point gmath.Tuple) bool {
	for _, light := range w.Lights {
		if w.TransparencyFactor(point, light) < 1 {
			return true
		}
	}
	return false
}

func containsBody(bodies []*shape.Body, b *shape.Body) bool {
	for _, candidate := range bodies {
		if candidate == b {
			return true
		}
	}
	return false
}
