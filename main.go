package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "room", "Built-in scene name, scene file name in scenes/, or path to a .yaml file")
	width := flag.Int("width", 0, "Image width (0 = scene default)")
	height := flag.Int("height", 0, "Image height (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum recursion depth (0 = scene default)")
	workers := flag.Int("workers", -1, "Number of parallel workers (0 = CPU count, -1 = scene default)")
	exposure := flag.Float64("exposure", 1, "Exposure gain applied when writing the image")
	out := flag.String("out", "", "Output file (.png, .jpg or .bmp); default output/<scene>/render_<timestamp>.png")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	applyOverrides(selectedScene, *width, *height, *depth, *workers)

	outputPath := *out
	if outputPath == "" {
		outputDir := filepath.Join("output", selectedScene.Name)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	frame := renderer.NewFrameBuffer(selectedScene.RenderConfig.Width, selectedScene.RenderConfig.Height)
	frame.Exposure = *exposure

	raytracer := renderer.NewRaytracer(selectedScene, integrator.FullQuality(), renderer.NewDefaultLogger())
	stats := raytracer.Render(frame)

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Shade calls: %d (%.2f per pixel, %d workers)\n",
		stats.ShadeCalls, stats.CallsPerPixel(), stats.Workers)

	if err := loaders.SaveImage(outputPath, frame.Image()); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", outputPath)
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}

	files, err := scene.ListSceneFiles(scenesDir)
	if err == nil && len(files) > 0 {
		fmt.Println()
		fmt.Println("Scene files:")
		for _, info := range files {
			name := strings.TrimSuffix(filepath.Base(info.FilePath), filepath.Ext(info.FilePath))
			fmt.Printf("  %-12s - %s\n", name, info.Description)
		}
	}
}

// createScene resolves a built-in scene, a file in the scenes directory, or a YAML path
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}

	ext := strings.ToLower(filepath.Ext(sceneType))
	if ext == ".yaml" || ext == ".yml" {
		return loaders.LoadSceneFile(sceneType)
	}

	s, err := scene.NewBuiltinScene(sceneType)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, scene.ErrUnknownScene) {
		return nil, err
	}

	for _, candidate := range []string{sceneType + ".yaml", sceneType + ".yml"} {
		path := filepath.Join(scenesDir, candidate)
		if _, statErr := os.Stat(path); statErr == nil {
			return loaders.LoadSceneFile(path)
		}
	}

	return nil, fmt.Errorf("unknown scene: %s", sceneType)
}

// applyOverrides replaces scene render settings with the non-default flag values
func applyOverrides(s *scene.Scene, width, height, depth, workers int) {
	if width > 0 || height > 0 {
		w, h := s.RenderConfig.Width, s.RenderConfig.Height
		if width > 0 {
			w = width
		}
		if height > 0 {
			h = height
		}
		s.Resize(w, h)
	}
	if depth > 0 {
		s.RenderConfig.MaxDepth = depth
	}
	if workers >= 0 {
		s.RenderConfig.NumWorkers = workers
	}
}
