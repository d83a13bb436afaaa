package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

const (
	// MinReflectHitTime is the smallest hit time any ray accepts. It keeps
	// shadow and reflection rays from hitting the surface they start on.
	MinReflectHitTime = 1e-4
	// MinHitTime applies to primary rays only: the eye sits behind the near
	// plane, so anything closer than this is ignored.
	MinHitTime = 1.0
	// NoHit is the distance reported when nothing was hit.
	NoHit = -1.0
)

// Intersection is the result of one solver call.
type Intersection struct {
	Ray         core.Ray
	Distance    float64 // NoHit when the ray hit nothing
	Point       mgl64.Vec4
	Interior    bool // the ray started inside the sphere and hits its far side
	SphereIndex int  // index into the sphere slice, -1 on a miss
	Normal      mgl64.Vec4
}

// Hit reports whether the intersection found a sphere.
func (in Intersection) Hit() bool {
	return in.Distance != NoHit
}

// validHitTime applies the epsilon policy for a ray at the given depth.
func validHitTime(t float64, reflectionLevel int) bool {
	if t <= MinReflectHitTime {
		return false
	}
	return reflectionLevel > 0 || t > MinHitTime
}

// Hit intersects the ray with the sphere in its unit-sphere object space.
// It returns the hit time and whether the hit is on the far (interior) side.
func (s *Sphere) Hit(ray core.Ray) (t float64, interior bool, ok bool) {
	S := s.InverseTransform.Mul4x1(s.Position.Sub(ray.Origin))
	C := s.InverseTransform.Mul4x1(ray.Direction)

	// a·t² − 2b·t + c = 0
	a := C.Dot(C)
	b := S.Dot(C)
	c := S.Dot(S) - 1
	if a == 0 {
		return 0, false, false
	}

	discriminant := b*b - a*c
	if discriminant < 0 {
		return 0, false, false
	}

	var t1, t2 float64
	if discriminant == 0 {
		t1 = b / a
		t2 = t1
	} else {
		root := math.Sqrt(discriminant)
		t1 = (b - root) / a
		t2 = (b + root) / a
	}

	if validHitTime(t1, ray.ReflectionLevel) {
		return t1, false, true
	}
	if validHitTime(t2, ray.ReflectionLevel) {
		return t2, true, true
	}
	return 0, false, false
}

// NearestIntersection finds the closest valid hit among spheres. Ties keep
// the earlier sphere. The ray direction must be non-zero.
func NearestIntersection(ray core.Ray, spheres []*Sphere) Intersection {
	result := Intersection{
		Ray:         ray,
		Distance:    NoHit,
		SphereIndex: -1,
	}

	for i, sphere := range spheres {
		t, interior, ok := sphere.Hit(ray)
		if !ok {
			continue
		}
		if result.SphereIndex == -1 || t < result.Distance {
			result.Distance = t
			result.Interior = interior
			result.SphereIndex = i
		}
	}

	if result.SphereIndex == -1 {
		return result
	}

	sphere := spheres[result.SphereIndex]
	result.Point = ray.At(result.Distance)
	result.Normal = sphere.NormalAt(result.Point, result.Interior)
	return result
}
