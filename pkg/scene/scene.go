package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Capacity limits of a scene. Extra spheres or lights are dropped.
const (
	MaxSpheres = 5
	MaxLights  = 5
)

// ViewPlane is the rectangle on the near plane that the image maps onto
type ViewPlane struct {
	Near   float64
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Scene contains all the elements needed for rendering. It is filled in by
// a loader and treated as read-only once rendering starts.
type Scene struct {
	ViewPlane  ViewPlane
	Width      int // Image width
	Height     int // Image height
	Spheres    []*geometry.Sphere
	Lights     []*lights.PointLight
	Background mgl64.Vec4
	Ambient    mgl64.Vec4 // Ambient light intensity
	Output     string     // Output file name requested by the scene
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		Spheres: make([]*geometry.Sphere, 0, MaxSpheres),
		Lights:  make([]*lights.PointLight, 0, MaxLights),
	}
}

// AddSphere appends a sphere. It reports false when the scene is full and
// the sphere was dropped.
func (s *Scene) AddSphere(sphere *geometry.Sphere) bool {
	if len(s.Spheres) >= MaxSpheres {
		return false
	}
	s.Spheres = append(s.Spheres, sphere)
	return true
}

// AddLight appends a light. It reports false when the scene is full and the
// light was dropped.
func (s *Scene) AddLight(light *lights.PointLight) bool {
	if len(s.Lights) >= MaxLights {
		return false
	}
	s.Lights = append(s.Lights, light)
	return true
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}
