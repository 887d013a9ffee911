package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer drives per-pixel multi-sample accumulation over a scene
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator *integrator.PathTracingIntegrator
	seed       int64
	progress   ProgressSink
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := DefaultSamplingConfig()
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		seed:       42, // Deterministic for testing
		progress:   NopProgress{},
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracingIntegrator(config.MaxDepth)
}

// SetSeed sets the base seed for the per-scanline random generators
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetProgressSink installs a sink for per-scanline progress events
func (rt *Raytracer) SetProgressSink(sink ProgressSink) {
	if sink == nil {
		sink = NopProgress{}
	}
	rt.progress = sink
}

// scanlineRandom derives the deterministic random generator owned by one scanline.
// Serial and parallel renders use the same derivation, so they produce
// identical images for the same seed.
func (rt *Raytracer) scanlineRandom(y int) *rand.Rand {
	return rand.New(rand.NewSource(rt.seed + int64(y)))
}

// samplePixel accumulates the configured number of samples for pixel (x, y)
// in image coordinates (y counts down from the top)
func (rt *Raytracer) samplePixel(camera *Camera, x, y int, ps *PixelStats, random *rand.Rand) {
	// Camera rows count up from the bottom
	j := rt.height - 1 - y
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := camera.GetRay(x, j, random)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene, random))
	}
}

// RenderBounds renders pixels within the specified image-coordinate bounds
// into the shared pixel stats array
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, random *rand.Rand) RenderStats {
	camera := rt.scene.GetCamera()

	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rt.samplePixel(camera, x, y, &pixelStats[y][x], random)
			stats.TotalSamples += pixelStats[y][x].SampleCount
		}
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)

	return stats
}

// RenderPass renders the full frame single-threaded and returns the image
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	pixelStats := newPixelStats(rt.width, rt.height)

	stats := RenderStats{TotalPixels: rt.width * rt.height}
	for y := 0; y < rt.height; y++ {
		rowBounds := image.Rect(0, y, rt.width, y+1)
		rowStats := rt.RenderBounds(rowBounds, pixelStats, rt.scanlineRandom(y))
		stats.TotalSamples += rowStats.TotalSamples
		rt.progress.ScanlineComplete(y+1, rt.height)
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)

	return rt.assembleImage(pixelStats), stats
}

// assembleImage converts accumulated pixel stats into an RGBA image
func (rt *Raytracer) assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			img.SetRGBA(x, y, rt.vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}
	return img
}

// vec3ToColor converts a linear Vec3 color to RGBA with gamma correction and
// quantization. The 255.999 factor nudges exactly 1.0 to 255 under flooring.
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Approximate gamma-2 encoding: sqrt per channel
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.999 * colorVec.X),
		G: uint8(255.999 * colorVec.Y),
		B: uint8(255.999 * colorVec.Z),
		A: 255,
	}
}

// newPixelStats allocates a shared pixel statistics array in image coordinates
func newPixelStats(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}
