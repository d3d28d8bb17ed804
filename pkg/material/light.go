package material

import (
	"whitted/pkg/color"
	gmath "whitted/pkg/math"
)

// PointLight is a dimensionless light source with a position and an
// intensity.
type PointLight struct {
	Position  gmath.Tuple
	Intensity color.Color
}

// NewPointLight creates a point light.
func NewPointLight(position gmath.Tuple, intensity color.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
