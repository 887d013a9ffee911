package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'cover'")
	width := flag.Int("width", 400, "Image width in pixels")
	samples := flag.Int("samples", 100, "Samples per pixel")
	maxDepth := flag.Int("depth", 50, "Maximum ray bounce depth")
	workers := flag.Int("workers", 1, "Number of render workers (0 = CPU count, 1 = single-threaded)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("output", "", "Output file path (default output/<scene>/render_<timestamp>.<format>)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres (diffuse, hollow glass, metal) over a ground sphere")
		fmt.Println("  cover   - Random sphere field with three large showcase spheres")
		return
	}

	selectedScene, err := createScene(*sceneType, *width, *seed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	camera := selectedScene.GetCamera()
	logger := renderer.NewDefaultLogger()

	raytracer := renderer.NewRaytracer(selectedScene, camera.Width(), camera.Height())
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: *samples,
		MaxDepth:        *maxDepth,
	})
	raytracer.SetSeed(*seed)
	raytracer.SetProgressSink(renderer.NewLogProgress(logger))

	logger.Printf("Rendering %s scene at %dx%d, %d samples, depth %d...\n",
		*sceneType, camera.Width(), camera.Height(), *samples, *maxDepth)

	startTime := time.Now()
	var img *image.RGBA
	var stats renderer.RenderStats
	if *workers == 1 {
		img, stats = raytracer.RenderPass()
	} else {
		img, stats = raytracer.RenderParallel(*workers)
	}
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v (%.1f samples/pixel)\n", renderTime, stats.AverageSamples)

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			return
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))
	}

	if err := writeImage(filename, *format, img); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		return
	}

	logger.Printf("Render saved as %s\n", filename)
}

// createScene builds one of the compiled-in scenes by name
func createScene(sceneType string, width int, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(width), nil
	case "cover":
		return scene.NewCoverScene(width, seed), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// writeImage saves the rendered image in the requested format
func writeImage(filename, format string, img *image.RGBA) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(format) {
	case "ppm":
		return renderer.WritePPM(file, img)
	case "png":
		return png.Encode(file, img)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
