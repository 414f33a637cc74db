package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/example/go-raytracer/pkg/renderer"
	"github.com/example/go-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Scene: 'default' or 'mirrorbox'")
	output := flag.String("output", "render.png", "Output PNG path")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	maxDepth := flag.Int("max-depth", 16, "Maximum ray bounce depth")
	tileSize := flag.Int("tile-size", 64, "Tile size in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	normals := flag.Bool("normals", false, "Render a normal visualization instead of shading")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default   - Sphere showcase over a ground sphere with an area light")
		fmt.Println("  mirrorbox - Facing mirror spheres that stress recursion depth")
		return
	}

	config := scene.Config{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
		NormalsOnly:     *normals,
	}

	selectedScene, err := scene.NewSceneByName(*sceneName, config)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	renderConfig := renderer.RenderConfig{
		TileSize:   *tileSize,
		NumWorkers: *workers,
		Seed:       *seed,
	}

	r, err := renderer.NewRenderer(selectedScene, renderConfig, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering scene %q at %dx%d, %d spp...\n", *sceneName, *width, *height, *samples)

	fb, _, err := r.Render()
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
