package renderer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Eye is the fixed pinhole position every primary ray starts from
var Eye = core.NewPoint(0, 0, 0)

// Camera maps pixel coordinates onto the view plane
type Camera struct {
	view   scene.ViewPlane
	width  int
	height int
}

// NewCamera creates a pinhole camera for the given view plane and resolution
func NewCamera(view scene.ViewPlane, width, height int) *Camera {
	return &Camera{
		view:   view,
		width:  width,
		height: height,
	}
}

// PixelToDirection returns the direction from the eye toward pixel (ix, iy).
// Pixel (0, 0) is the bottom-left corner of the view plane.
func (c *Camera) PixelToDirection(ix, iy int) mgl64.Vec4 {
	x := c.view.Left + (float64(ix)/float64(c.width))*(c.view.Right-c.view.Left)
	y := c.view.Bottom + (float64(iy)/float64(c.height))*(c.view.Top-c.view.Bottom)
	return core.NewDirection(x, y, -c.view.Near)
}

// PrimaryRay generates the eye ray through pixel (ix, iy)
func (c *Camera) PrimaryRay(ix, iy int) core.Ray {
	return core.NewRay(Eye, c.PixelToDirection(ix, iy), 0)
}
