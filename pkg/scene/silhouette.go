package scene

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"whitted/pkg/canvas"
	"whitted/pkg/color"
	"whitted/pkg/material"
	gmath "whitted/pkg/math"
	"whitted/pkg/pattern"
	"whitted/pkg/shape"
)

// Silhouette renders a single lit sphere by casting rays from a fixed eye
// through a wall behind it, one pixel per wall cell. It predates the
// camera model and renders without one.
func Silhouette(parallel bool) *canvas.Canvas {
	const width = 800
	const wallSize = 10.0
	const half = wallSize / 2

	m := material.Default()
	m.Pattern = pattern.NewFlat(color.New(1, 0.2, 1))
	sphere := shape.NewSphere(gmath.Identity(), m)
	light := material.NewPointLight(gmath.NewPoint(-10, 10, -10), color.White())
	eye := gmath.NewPoint(0, 0, -5)

	img := canvas.New(width, width)
	render := func(j int) {
		for i := 0; i < width; i++ {
			x := -half + (float64(i)/width)*wallSize
			y := half - (float64(j)/width)*wallSize
			wallPoint := gmath.NewPoint(x, y, 10)
			ray := gmath.NewRay(eye, wallPoint.Subtract(eye).Normalize())

			xs := sphere.Intersect(ray)
			xs.Sort()
			hit, ok := xs.Hit()
			if !ok {
				continue
			}
			point := ray.Position(hit.T)
			normal := hit.Body.NormalAt(point)
			eyev := ray.Direction.Negate()
			col := hit.Body.Material.Lighting(hit.Body.Transform, light, point, eyev, normal, 1)
			img.SetPixel(i, j, col)
		}
	}

	if parallel {
		var eg errgroup.Group
		eg.SetLimit(runtime.NumCPU())
		for j := 0; j < width; j++ {
			j := j
			eg.Go(func() error {
				render(j)
				return nil
			})
		}
		_ = eg.Wait()
	} else {
		for j := 0; j < width; j++ {
			render(j)
		}
	}
	return img
}
