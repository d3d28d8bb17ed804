package camera

import (
	"math"
	"testing"

	"whitted/pkg/color"
	gmath "whitted/pkg/math"
	"whitted/pkg/world"
)

func TestNew_PixelSize(t *testing.T) {
	horizontal := New(200, 125, math.Pi/2)
	if math.Abs(horizontal.PixelSize()-0.01) > gmath.Epsilon {
		t.Errorf("Got %f, want 0.01", horizontal.PixelSize())
	}
	vertical := New(125, 200, math.Pi/2)
	if math.Abs(vertical.PixelSize()-0.01) > gmath.Epsilon {
		t.Errorf("Got %f, want 0.01", vertical.PixelSize())
	}
}

func TestRayForPixel(t *testing.T) {
	t.Run("through the canvas center", func(t *testing.T) {
		c := New(201, 101, math.Pi/2)
		r := c.RayForPixel(100, 50)
		if !r.Origin.Equals(gmath.NewPoint(0, 0, 0)) {
			t.Errorf("Origin = %v", r.Origin)
		}
		if !r.Direction.Equals(gmath.NewVector(0, 0, -1)) {
			t.Errorf("Direction = %v", r.Direction)
		}
	})

	t.Run("through a canvas corner", func(t *testing.T) {
		c := New(201, 101, math.Pi/2)
		r := c.RayForPixel(0, 0)
		if !r.Origin.Equals(gmath.NewPoint(0, 0, 0)) {
			t.Errorf("Origin = %v", r.Origin)
		}
		if !r.Direction.Equals(gmath.NewVector(0.66519, 0.33259, -0.66851)) {
			t.Errorf("Direction = %v", r.Direction)
		}
	})

	t.Run("with a transformed camera", func(t *testing.T) {
		c := New(201, 101, math.Pi/2)
		c.Transform = gmath.RotationY(math.Pi / 4).Multiply(gmath.Translation(0, -2, 5))
		r := c.RayForPixel(100, 50)
		if !r.Origin.Equals(gmath.NewPoint(0, 2, -5)) {
			t.Errorf("Origin = %v", r.Origin)
		}
		if !r.Direction.Equals(gmath.NewVector(math.Sqrt2/2, 0, -math.Sqrt2/2)) {
			t.Errorf("Direction = %v", r.Direction)
		}
	})
}

func TestRender(t *testing.T) {
	w := world.Default()
	c := New(11, 11, math.Pi/2).
		LookAt(gmath.NewPoint(0, 0, -5), gmath.NewPoint(0, 0, 0), gmath.NewVector(0, 1, 0))
	img := c.Render(w)
	got := img.PixelAt(5, 5)
	if !got.Equals(color.New(0.38066, 0.47583, 0.2855)) {
		t.Errorf("Center pixel = %v", got)
	}
}

func TestRenderParallel_MatchesSerial(t *testing.T) {
	w := world.Default()
	c := New(16, 12, math.Pi/3).
		LookAt(gmath.NewPoint(0, 1.5, -5), gmath.NewPoint(0, 1, 0), gmath.NewVector(0, 1, 0))
	serial := c.Render(w)
	parallel := c.RenderParallel(w)
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			if serial.PixelAt(x, y) != parallel.PixelAt(x, y) {
				t.Fatalf("Pixel (%d, %d) differs: %v vs %v",
					x, y, serial.PixelAt(x, y), parallel.PixelAt(x, y))
			}
		}
	}
}
