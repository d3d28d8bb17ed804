package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"

	"whitted/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "spheres", "Scene to render (see -list)")
	outputDir := flag.String("out", "output", "Directory the image is written to")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	serial := flag.Bool("serial", false, "Render on a single goroutine")
	list := flag.Bool("list", false, "List available scenes and exit")
	flag.Parse()

	if *list {
		for _, name := range scene.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*sceneName, *outputDir, *format, !*serial); err != nil {
		glog.Errorf("Render failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

func run(sceneName, outputDir, format string, parallel bool) error {
	glog.Infof("Rendering scene %q (parallel=%t)", sceneName, parallel)

	start := time.Now()
	img, err := scene.Render(sceneName, parallel)
	if err != nil {
		return err
	}
	glog.Infof("Rendered %dx%d pixels in %v", img.Width(), img.Height(), time.Since(start))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("while creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, sceneName+"."+format)
	switch strings.ToLower(format) {
	case "ppm":
		if err := img.SavePPM(path); err != nil {
			return err
		}
	case "png":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("while creating %s: %w", path, err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("while encoding PNG: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	glog.Infof("Saved %s", path)
	return nil
}
