// Package canvas implements the 2D color grid an image is rendered into
// and its encoders: plain PPM (P3) and, via the image.Image interface,
// anything the standard image encoders accept.
package canvas

import (
	"bufio"
	"fmt"
	"image"
	stdcolor "image/color"
	"io"
	"os"

	"whitted/pkg/color"
)

// Canvas is a fixed-size grid of colors, row-major in y, initialized to
// black. Concurrent writers must target distinct pixels.
type Canvas struct {
	width  int
	height int
	pixels [][]color.Color
}

// New creates a canvas of the given dimensions with every pixel black.
func New(width, height int) *Canvas {
	pixels := make([][]color.Color, height)
	for y := range pixels {
		pixels[y] = make([]color.Color, width)
	}
	return &Canvas{width: width, height: height, pixels: pixels}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// SetPixel stores a color at (x, y).
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	c.pixels[y][x] = col
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) color.Color {
	return c.pixels[y][x]
}

// WritePPM encodes the canvas as plain PPM (P3): a header, then one pixel
// per line in row-major order, top row first.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("while writing PPM header: %w", err)
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := c.pixels[y][x].RGB255()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("while writing pixel (%d, %d): %w", x, y, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while flushing PPM output: %w", err)
	}
	return nil
}

// SavePPM writes the canvas to a file in plain PPM format.
func (c *Canvas) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating %s: %w", path, err)
	}
	defer f.Close()
	if err := c.WritePPM(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("while closing %s: %w", path, err)
	}
	return nil
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() stdcolor.Model {
	return stdcolor.RGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At implements image.Image, clamping each channel to [0, 255].
func (c *Canvas) At(x, y int) stdcolor.Color {
	r, g, b := c.pixels[y][x].RGB255()
	return stdcolor.RGBA{R: r, G: g, B: b, A: 255}
}
