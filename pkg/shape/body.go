package shape

import (
	"whitted/pkg/material"
	gmath "whitted/pkg/math"
)

// Body places a primitive in the world: a shape plus its transform and
// material. The world<->object conversions live here once, so primitives
// only ever see object space.
type Body struct {
	Primitive Primitive
	Transform gmath.Matrix4
	Material  material.Phong
}

// NewBody wraps a primitive with a transform and material.
func NewBody(p Primitive, transform gmath.Matrix4, m material.Phong) Body {
	return Body{Primitive: p, Transform: transform, Material: m}
}

// NewSphere creates a unit-sphere body.
func NewSphere(transform gmath.Matrix4, m material.Phong) Body {
	return NewBody(Sphere{}, transform, m)
}

// NewPlane creates an xz-plane body.
func NewPlane(transform gmath.Matrix4, m material.Phong) Body {
	return NewBody(Plane{}, transform, m)
}

// NewCube creates a unit-cube body.
func NewCube(transform gmath.Matrix4, m material.Phong) Body {
	return NewBody(Cube{}, transform, m)
}

// NewCylinder creates a truncated y-axis cylinder body.
func NewCylinder(transform gmath.Matrix4, m material.Phong, height float64, closed bool) Body {
	return NewBody(Cylinder{Height: height, Closed: closed}, transform, m)
}

// NewDoubleCone creates a truncated double-cone body.
func NewDoubleCone(transform gmath.Matrix4, m material.Phong, height float64, closed bool) Body {
	return NewBody(DoubleCone{Height: height, Closed: closed}, transform, m)
}

// Intersect transforms the ray into object space, intersects the
// primitive, and tags each root with this body and the original ray.
// The t values stay valid for the original ray because the inverse
// transform is applied to the ray rather than the shape.
func (b *Body) Intersect(r gmath.Ray) Intersections {
	local := r.Transform(b.Transform.Inverse())
	ts := b.Primitive.IntersectObjectSpace(local)
	xs := make(Intersections, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Body: b, Ray: r})
	}
	return xs
}

// NormalAt returns the world-space surface normal at a world-space point,
// conjugating the object-space normal with the inverse-transpose of the
// body transform.
func (b *Body) NormalAt(worldPoint gmath.Tuple) gmath.Tuple {
	inv := b.Transform.Inverse()
	objectPoint := inv.MultiplyTuple(worldPoint)
	objectNormal := b.Primitive.NormalAtObjectSpace(objectPoint)
	worldNormal := inv.Transpose().MultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}
