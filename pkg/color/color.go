// Package color implements linear RGB color math for the render core.
// Components are unbounded 64-bit floats; clamping happens only at
// serialization time.
package color

import "math"

const epsilon = 1e-5

// Color is a linear RGB triple.
type Color struct {
	R, G, B float64
}

// New creates a color from its components.
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color.
func Black() Color {
	return Color{}
}

// White returns full-intensity white.
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the Hadamard (component-wise) product of two colors.
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are component-wise equal within a
// 1e-5 tolerance.
func (c Color) Equals(other Color) bool {
	return math.Abs(c.R-other.R) < epsilon &&
		math.Abs(c.G-other.G) < epsilon &&
		math.Abs(c.B-other.B) < epsilon
}

// RGB255 returns the color scaled by 255 with each channel clamped to
// [0, 255], ready for serialization.
func (c Color) RGB255() (r, g, b uint8) {
	return channel255(c.R), channel255(c.G), channel255(c.B)
}

func channel255(v float64) uint8 {
	scaled := math.Floor(v * 255)
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(scaled)
}
