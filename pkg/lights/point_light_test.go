package lights

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestPointLight_DirectionFrom(t *testing.T) {
	light := NewPointLight("l1", core.NewDirection(0, 10, 0), core.NewColor(1, 1, 1))

	if light.Position.W() != 1 {
		t.Errorf("Expected light position to be a point, got w=%f", light.Position.W())
	}

	dir := light.DirectionFrom(core.NewPoint(0, 0, 0))
	expected := core.NewDirection(0, 1, 0)
	for i := 0; i < 4; i++ {
		if math.Abs(dir[i]-expected[i]) > 1e-12 {
			t.Fatalf("Expected direction %v, got %v", expected, dir)
		}
	}
}
