package lights

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// PointLight is an infinitesimal light at Position emitting Color.
type PointLight struct {
	ID       string
	Position mgl64.Vec4
	Color    mgl64.Vec4
}

// NewPointLight creates a point light. The position is stored as a point.
func NewPointLight(id string, position, color mgl64.Vec4) *PointLight {
	return &PointLight{
		ID:       id,
		Position: core.NewPoint(position.X(), position.Y(), position.Z()),
		Color:    color,
	}
}

// DirectionFrom returns the unit direction from point toward the light.
func (l *PointLight) DirectionFrom(point mgl64.Vec4) mgl64.Vec4 {
	return core.AsDirection(l.Position.Sub(point))
}
