package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"

	"github.com/EpikSushi21/CSE287/pkg/renderer"
	"github.com/EpikSushi21/CSE287/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'emissive'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	format := flag.String("format", "png", "Output format: 'png', 'webp', or 'tga'")
	depth := flag.Int("depth", 2, "Maximum reflection recursion depth")
	noShadows := flag.Bool("no-shadows", false, "Disable shadow rays")
	workers := flag.Int("workers", 0, "Render workers (0 = one per CPU, 1 = serial)")
	supersample := flag.Int("supersample", 1, "Render at NxN resolution and downscale")
	orthoHeight := flag.Float64("ortho", 0, "Use orthographic projection with this view plane height")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Room corner with spheres, spot, directional, and point lighting")
		fmt.Println("  emissive - Single emissive plane over a gray background, no lights")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.<format>")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *orthoHeight != 0 {
		if err := selectedScene.Camera.SetOrthographicProjection(*orthoHeight); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	renderWidth := *width * *supersample
	renderHeight := *height * *supersample

	sink := renderer.NewImageSink(renderWidth, renderHeight)
	raytracer := renderer.NewRaytracer(sink, selectedScene.Camera, selectedScene, selectedScene.Background)
	raytracer.SetConfig(renderer.Config{
		RecursionDepth: *depth,
		Shadows:        !*noShadows,
	})
	raytracer.SetLogger(log.Default())

	fmt.Printf("Rendering %s scene at %dx%d...\n", *sceneType, renderWidth, renderHeight)
	startTime := time.Now()
	if *workers == 1 {
		raytracer.RenderScene()
	} else {
		raytracer.RenderSceneParallel(*workers)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	img := renderer.Downsample(sink.Image(), *supersample)

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))

	if err := writeImage(filename, *format, img); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds a scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "emissive":
		return scene.NewEmissiveScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// writeImage encodes the image in the requested format
func writeImage(filename, format string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "png":
		return png.Encode(file, img)
	case "webp":
		return nativewebp.Encode(file, img, nil)
	case "tga":
		return tga.Encode(file, img)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
