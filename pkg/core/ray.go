package core

import "github.com/go-gl/mathgl/mgl64"

// Ray is a homogeneous ray: Origin is a point (w=1), Direction a vector (w=0).
// ReflectionLevel is the recursion depth; 0 marks a primary ray from the eye.
type Ray struct {
	Origin          mgl64.Vec4
	Direction       mgl64.Vec4
	ReflectionLevel int
}

// NewRay creates a new ray
func NewRay(origin, direction mgl64.Vec4, reflectionLevel int) Ray {
	return Ray{Origin: origin, Direction: direction, ReflectionLevel: reflectionLevel}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) mgl64.Vec4 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IsPrimary reports whether the ray was cast directly from the eye.
func (r Ray) IsPrimary() bool {
	return r.ReflectionLevel == 0
}
