package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Raytracer drives a single-threaded render of a scene
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(sc *scene.Scene, integ integrator.Integrator, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:      sc,
		camera:     NewCamera(sc.ViewPlane, sc.Width, sc.Height),
		integrator: integ,
		logger:     logger,
	}
}

// Camera returns the camera used for primary rays
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces every pixel once and returns the frame buffer. Cancellation
// is checked between scanlines.
func (rt *Raytracer) Render(ctx context.Context) (*FrameBuffer, RenderStats, error) {
	width, height := rt.scene.Width, rt.scene.Height
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid resolution %dx%d", width, height)
	}

	rt.logger.Printf("Rendering %dx%d with %d spheres and %d lights...\n",
		width, height, rt.scene.GetPrimitiveCount(), len(rt.scene.Lights))

	fb := NewFrameBuffer(width, height)
	stats := RenderStats{}
	startTime := time.Now()

	progressStep := max(height/10, 1)
	for iy := 0; iy < height; iy++ {
		if err := ctx.Err(); err != nil {
			rt.logger.Printf("Rendering cancelled at scanline %d\n", iy)
			return nil, stats, err
		}

		for ix := 0; ix < width; ix++ {
			color := rt.integrator.RayColor(rt.camera.PrimaryRay(ix, iy), rt.scene)
			fb.SetColor(ix, iy, color)

			peak := max(color[0], color[1], color[2])
			if peak > 1 {
				stats.SaturatedPixels++
			}
			stats.MaxChannel = max(stats.MaxChannel, peak)
			stats.TotalPixels++
		}

		if (iy+1)%progressStep == 0 {
			rt.logger.Printf("Scanline %d/%d\n", iy+1, height)
		}
	}

	stats.Duration = time.Since(startTime)
	stats.AverageLuminance = CalculateAverageLuminance(fb.Image())
	rt.logger.Printf("Render completed in %v (%d pixels, %d saturated)\n",
		stats.Duration, stats.TotalPixels, stats.SaturatedPixels)

	return fb, stats, nil
}
