package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

const defaultOutput = "output.ppm"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene used when no scene file is given")
	output := flag.String("output", "", "Output file (defaults to the scene's OUTPUT line)")
	format := flag.String("format", "", "Image format: 'ppm' or 'png' (defaults to the output extension)")
	maxDepth := flag.Int("max-depth", integrator.DefaultConfig().MaxDepth, "Maximum reflection depth")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options] [scene.txt]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three spheres lit by three point lights")
		return
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(flag.Arg(0), *sceneType, logger)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	filename := outputFilename(selectedScene, *output)
	imageFormat, err := resolveFormat(*format, filename)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	phong := integrator.NewPhongIntegrator(integrator.Config{MaxDepth: *maxDepth})
	raytracer := renderer.NewRaytracer(selectedScene, phong, logger)

	fb, stats, err := raytracer.Render(ctx)
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Peak channel %.3f, average luminance %.3f\n", stats.MaxChannel, stats.AverageLuminance)

	if err := saveImage(filename, imageFormat, fb); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s (%d x %d)\n", filename, fb.Width, fb.Height)
}

// createScene loads the scene file when one is given, otherwise the named
// built-in scene
func createScene(path, sceneType string, logger core.Logger) (*scene.Scene, error) {
	if path != "" {
		return loaders.LoadScene(path, logger)
	}

	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

// outputFilename picks the override, then the scene's OUTPUT name, then a
// fixed default
func outputFilename(sc *scene.Scene, override string) string {
	if override != "" {
		return override
	}
	if sc.Output != "" {
		return sc.Output
	}
	return defaultOutput
}

// resolveFormat returns the explicit format, or infers it from the file
// extension
func resolveFormat(format, filename string) (string, error) {
	if format == "" {
		if strings.EqualFold(filepath.Ext(filename), ".png") {
			return "png", nil
		}
		return "ppm", nil
	}

	switch strings.ToLower(format) {
	case "ppm":
		return "ppm", nil
	case "png":
		return "png", nil
	default:
		return "", fmt.Errorf("unsupported image format: %q", format)
	}
}

func saveImage(filename, format string, fb *renderer.FrameBuffer) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	if format == "png" {
		return loaders.SavePNG(filename, fb)
	}
	return loaders.SavePPM(filename, fb)
}
