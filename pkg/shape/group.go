package shape

import (
	gmath "whitted/pkg/math"
)

// Group composes a transform with a list of child bodies and subgroups.
// Build bakes the ancestor transforms into a flat list of leaf bodies, so
// render-time traversal needs no upward references. A group must be built
// before it is intersected.
type Group struct {
	Transform gmath.Matrix4
	bodies    []Body
	groups    []*Group
	baked     []Body
}

// NewGroup creates an empty group under the given transform.
func NewGroup(transform gmath.Matrix4) *Group {
	return &Group{Transform: transform}
}

// AddBody appends a child body.
func (g *Group) AddBody(b Body) {
	g.bodies = append(g.bodies, b)
	g.baked = nil
}

// AddGroup appends a child group.
func (g *Group) AddGroup(sub *Group) {
	g.groups = append(g.groups, sub)
	g.baked = nil
}

// Build finalizes the group: every leaf body is copied out with its
// transform pre-multiplied by the product of its ancestors' transforms.
// The children keep their original transforms, so Build is idempotent and
// can be rerun after further additions. Returns the group for chaining.
func (g *Group) Build() *Group {
	g.baked = g.collect(gmath.Identity())
	return g
}

func (g *Group) collect(parent gmath.Matrix4) []Body {
	m := parent.Multiply(g.Transform)
	out := make([]Body, 0, len(g.bodies))
	for _, b := range g.bodies {
		b.Transform = m.Multiply(b.Transform)
		out = append(out, b)
	}
	for _, sub := range g.groups {
		out = append(out, sub.collect(m)...)
	}
	return out
}

// Bodies returns the baked leaf bodies. Empty until Build is called.
func (g *Group) Bodies() []Body {
	return g.baked
}

// Intersect concatenates the intersections of every baked leaf body,
// sorted by t.
func (g *Group) Intersect(r gmath.Ray) Intersections {
	var xs Intersections
	for i := range g.baked {
		xs = append(xs, g.baked[i].Intersect(r)...)
	}
	xs.Sort()
	return xs
}
