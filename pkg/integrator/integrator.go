package integrator

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the unclamped color carried back along a ray
	RayColor(ray core.Ray, scene *scene.Scene) mgl64.Vec4
}

// Config contains integrator configuration
type Config struct {
	MaxDepth int // Rays at this reflection level or deeper contribute nothing
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 3,
	}
}
