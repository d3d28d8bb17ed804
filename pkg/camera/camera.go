// Package camera generates one primary ray per pixel from a view
// transform, a field of view, and a resolution, and drives the serial and
// parallel render loops.
package camera

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"whitted/pkg/canvas"
	gmath "whitted/pkg/math"
	"whitted/pkg/world"
)

// Camera maps pixel coordinates to world-space rays. The transform is the
// world-to-camera matrix, usually built with math.ViewTransform.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	Transform   gmath.Matrix4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// New creates a camera at the identity transform. The half extents are
// derived so the smaller canvas dimension spans the half view angle.
func New(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		Transform:   gmath.Identity(),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   2 * halfWidth / float64(hsize),
	}
}

// LookAt sets the camera transform from an eye position, a target point,
// and an up vector, and returns the camera for chaining.
func (c *Camera) LookAt(from, to, up gmath.Tuple) *Camera {
	c.Transform = gmath.ViewTransform(from, to, up)
	return c
}

// PixelSize returns the world-space size of one pixel on the canvas.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the world-space ray through the center of the given
// pixel.
func (c *Camera) RayForPixel(px, py int) gmath.Ray {
	worldX := c.halfWidth - (float64(px)+0.5)*c.pixelSize
	worldY := c.halfHeight - (float64(py)+0.5)*c.pixelSize

	inv := c.Transform.Inverse()
	pixel := inv.MultiplyTuple(gmath.NewPoint(worldX, worldY, -1))
	origin := inv.MultiplyTuple(gmath.NewPoint(0, 0, 0))
	return gmath.NewRay(origin, pixel.Subtract(origin).Normalize())
}

// Render evaluates every pixel serially.
func (c *Camera) Render(w *world.World) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		c.renderRow(w, img, y)
	}
	return img
}

// RenderParallel evaluates pixels across all CPUs, one canvas row per
// task. Every pixel is a pure function of the immutable world, and each
// row is owned by exactly one goroutine, so the result is bit-identical
// to Render.
func (c *Camera) RenderParallel(w *world.World) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)
	var eg errgroup.Group
	eg.SetLimit(runtime.NumCPU())
	for y := 0; y < c.VSize; y++ {
		y := y
		eg.Go(func() error {
			c.renderRow(w, img, y)
			return nil
		})
	}
	// Row workers never fail; Wait only joins them.
	_ = eg.Wait()
	return img
}

func (c *Camera) renderRow(w *world.World, img *canvas.Canvas, y int) {
	for x := 0; x < c.HSize; x++ {
		img.SetPixel(x, y, w.ColorAt(c.RayForPixel(x, y)))
	}
}
