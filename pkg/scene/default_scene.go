package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// NewDefaultScene creates a built-in scene with a few spheres and lights
func NewDefaultScene() *Scene {
	s := NewScene()
	s.ViewPlane = ViewPlane{Near: 1, Left: -1, Right: 1, Top: 1, Bottom: -1}
	s.Width = 600
	s.Height = 600
	s.Background = core.NewColor(1, 1, 1)
	s.Ambient = core.NewColor(0.2, 0.2, 0.2)
	s.Output = "default.ppm"

	// An ellipsoid in front, a sphere behind it and a large mirror ball
	s.AddSphere(geometry.NewSphere("s1", core.NewPoint(0, 0, -10), mgl64.Vec3{2, 4, 2}, geometry.Material{
		Color: core.NewColor(0.5, 0, 0), Ka: 1, Kd: 1, Ks: 0.5, Kr: 0, SpecularExponent: 50,
	}))
	s.AddSphere(geometry.NewSphere("s2", core.NewPoint(4, 4, -10), mgl64.Vec3{1, 2, 1}, geometry.Material{
		Color: core.NewColor(0, 0.5, 0), Ka: 1, Kd: 1, Ks: 0.5, Kr: 0, SpecularExponent: 50,
	}))
	s.AddSphere(geometry.NewSphere("s3", core.NewPoint(-4, 2, -10), mgl64.Vec3{1, 2, 1}, geometry.Material{
		Color: core.NewColor(0, 0, 0.5), Ka: 1, Kd: 1, Ks: 0.5, Kr: 0.3, SpecularExponent: 50,
	}))

	s.AddLight(lights.NewPointLight("l1", core.NewPoint(0, 0, 0), core.NewColor(0.9, 0.9, 0.9)))
	s.AddLight(lights.NewPointLight("l2", core.NewPoint(10, 10, -10), core.NewColor(0.9, 0.9, 0)))
	s.AddLight(lights.NewPointLight("l3", core.NewPoint(-10, 5, -5), core.NewColor(0, 0, 0.9)))

	return s
}
