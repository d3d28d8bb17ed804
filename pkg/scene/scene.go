// Package scene holds the example scene constructors the CLI renders by
// name. Each constructor assembles a world and the camera that frames it;
// the registry maps scene names to render entry points.
package scene

import (
	"fmt"
	"sort"

	"whitted/pkg/camera"
	"whitted/pkg/canvas"
	"whitted/pkg/world"
)

// RenderFunc renders a named scene to a canvas, in parallel when asked.
type RenderFunc func(parallel bool) *canvas.Canvas

var scenes = map[string]RenderFunc{
	"silhouette": Silhouette,
	"spheres":    renderWith(Spheres),
	"plane":      renderWith(PlaneFloor),
	"patterns":   renderWith(Patterns),
	"glass":      renderWith(Glass),
	"cube":       renderWith(GlassCube),
	"cylinders":  renderWith(Cylinders),
	"group":      renderWith(Grouped),
}

// Render renders the scene registered under name.
func Render(name string, parallel bool) (*canvas.Canvas, error) {
	fn, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return fn(parallel), nil
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func renderWith(build func() (*world.World, *camera.Camera)) RenderFunc {
	return func(parallel bool) *canvas.Canvas {
		w, cam := build()
		if parallel {
			return cam.RenderParallel(w)
		}
		return cam.Render(w)
	}
}
