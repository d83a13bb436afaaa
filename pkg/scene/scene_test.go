package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

func TestScene_AddSphereDropsExtras(t *testing.T) {
	s := NewScene()
	for i := 0; i < MaxSpheres; i++ {
		sphere := geometry.NewSphere("s", core.NewPoint(0, 0, float64(-i)), mgl64.Vec3{1, 1, 1}, geometry.Material{})
		if !s.AddSphere(sphere) {
			t.Fatalf("Expected sphere %d to be added", i)
		}
	}

	extra := geometry.NewSphere("extra", core.NewPoint(0, 0, 0), mgl64.Vec3{1, 1, 1}, geometry.Material{})
	if s.AddSphere(extra) {
		t.Error("Expected sphere beyond capacity to be dropped")
	}
	if len(s.Spheres) != MaxSpheres {
		t.Errorf("Expected %d spheres, got %d", MaxSpheres, len(s.Spheres))
	}
	if s.GetPrimitiveCount() != MaxSpheres {
		t.Errorf("Expected primitive count %d, got %d", MaxSpheres, s.GetPrimitiveCount())
	}
}

func TestScene_AddLightDropsExtras(t *testing.T) {
	s := NewScene()
	for i := 0; i < MaxLights+2; i++ {
		s.AddLight(lights.NewPointLight("l", core.NewPoint(0, 0, 0), core.NewColor(1, 1, 1)))
	}
	if len(s.Lights) != MaxLights {
		t.Errorf("Expected %d lights, got %d", MaxLights, len(s.Lights))
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()

	if s.Width <= 0 || s.Height <= 0 {
		t.Errorf("Expected positive resolution, got %dx%d", s.Width, s.Height)
	}
	if len(s.Spheres) == 0 || len(s.Spheres) > MaxSpheres {
		t.Errorf("Expected 1..%d spheres, got %d", MaxSpheres, len(s.Spheres))
	}
	if len(s.Lights) == 0 || len(s.Lights) > MaxLights {
		t.Errorf("Expected 1..%d lights, got %d", MaxLights, len(s.Lights))
	}
	if s.ViewPlane.Near <= 0 {
		t.Errorf("Expected positive near plane, got %f", s.ViewPlane.Near)
	}
}
