package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/example/go-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SilentLogger implements core.Logger by discarding all output
type SilentLogger struct{}

func (sl *SilentLogger) Printf(format string, args ...interface{}) {}

// RenderConfig contains configuration for batch rendering
type RenderConfig struct {
	TileSize   int   // Size of each tile (64x64 recommended)
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; pixel (x,y) samples with Seed + y*width + x

	// NewSampler builds the per-pixel sampler from its seed. Nil means
	// a plain seeded random sampler.
	NewSampler func(seed int64) core.Sampler
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0,
		Seed:       42, // Non-zero so pixel 0 is not seed 0
	}
}

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels   int
	TotalSamples  int
	TilesRendered int
	NumWorkers    int
	ElapsedTime   time.Duration
}

// Renderer renders a scene to a framebuffer using a pool of tile
// workers. Output is deterministic for a given seed: every pixel's
// sampler is seeded from the pixel index, so neither worker scheduling
// nor the tile partitioning affects the image.
type Renderer struct {
	scene  core.Scene
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(scene core.Scene, config RenderConfig, logger core.Logger) (*Renderer, error) {
	if scene == nil {
		return nil, fmt.Errorf("renderer: scene is required")
	}
	if config.TileSize < 0 {
		return nil, fmt.Errorf("renderer: tile size must not be negative, got %d", config.TileSize)
	}
	if config.NumWorkers < 0 {
		return nil, fmt.Errorf("renderer: worker count must not be negative, got %d", config.NumWorkers)
	}
	if config.TileSize == 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if config.NewSampler == nil {
		config.NewSampler = func(seed int64) core.Sampler {
			return core.NewSeededRandomSampler(seed)
		}
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{scene: scene, config: config, logger: logger}, nil
}

// Render renders the full image and blocks until every tile is done
func (r *Renderer) Render() (*Framebuffer, RenderStats, error) {
	width, height := r.scene.Width(), r.scene.Height()
	fb := NewFramebuffer(width, height)
	tiles := NewTileGrid(width, height, r.config.TileSize)

	numWorkers := r.config.NumWorkers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	startTime := time.Now()

	taskQueue := make(chan Tile, len(tiles))
	sampleCounts := make(chan int, len(tiles))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range taskQueue {
				// Each tile writes a disjoint pixel range, so no
				// synchronization is needed on the framebuffer
				sampleCounts <- r.renderTile(tile, fb)
			}
		}()
	}

	for _, tile := range tiles {
		taskQueue <- tile
	}
	close(taskQueue)
	wg.Wait()
	close(sampleCounts)

	stats := RenderStats{
		TotalPixels:   width * height,
		TilesRendered: len(tiles),
		NumWorkers:    numWorkers,
		ElapsedTime:   time.Since(startTime),
	}
	for n := range sampleCounts {
		stats.TotalSamples += n
	}

	r.logger.Printf("Rendered %dx%d (%d tiles, %d workers, %d samples) in %v\n",
		width, height, stats.TilesRendered, stats.NumWorkers, stats.TotalSamples, stats.ElapsedTime)

	return fb, stats, nil
}

// renderTile renders one tile and returns the number of samples taken.
// Each pixel gets its own deterministically seeded sampler, so the
// image is identical under any tile partitioning.
func (r *Renderer) renderTile(tile Tile, fb *Framebuffer) int {
	camera := r.scene.GetCamera()
	integrator := r.scene.GetIntegrator()
	samplesPerPixel := r.scene.SamplesPerPixel()

	width := float64(fb.Width())
	height := float64(fb.Height())
	samplesTaken := 0

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			sampler := r.config.NewSampler(r.config.Seed + int64(y*fb.Width()+x))
			colorSum := core.NewVec3(0, 0, 0)
			for s := 0; s < samplesPerPixel; s++ {
				// Jitter within the pixel with one 2D draw, so a
				// stratified sampler stratifies pixel positions; v
				// flips because the framebuffer origin is top-left
				// and the camera's v axis points up
				jitter := sampler.Get2D()
				u := (float64(x) + jitter.X) / width
				v := 1.0 - (float64(y)+jitter.Y)/height

				ray := camera.GetRay(u, v, sampler)
				colorSum = colorSum.Add(integrator.RayColor(ray, r.scene, sampler))
			}
			fb.Set(x, y, colorSum.Multiply(1.0/float64(samplesPerPixel)))
			samplesTaken += samplesPerPixel
		}
	}

	return samplesTaken
}
