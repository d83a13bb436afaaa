package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere is a unit sphere scaled per axis and translated to Position.
// Non-uniform scales turn it into an axis-aligned ellipsoid.
type Sphere struct {
	ID       string
	Position mgl64.Vec4 // world-space center, w=1
	Scale    mgl64.Vec3
	Color    mgl64.Vec4

	Ka, Kd, Ks, Kr   float64 // ambient, diffuse, specular and reflective coefficients
	SpecularExponent float64

	// InverseTransform is inverse(Scale3D(Scale)). Scale never changes after
	// construction, so it is computed once here.
	InverseTransform mgl64.Mat4
	// normalTransform is InverseTransformᵀ·InverseTransform
	normalTransform mgl64.Mat4
}

// Material groups the Blinn-Phong coefficients of a sphere.
type Material struct {
	Color            mgl64.Vec4
	Ka, Kd, Ks, Kr   float64
	SpecularExponent float64
}

// NewSphere creates a new sphere. The scale must be non-zero on every axis.
func NewSphere(id string, position mgl64.Vec4, scale mgl64.Vec3, material Material) *Sphere {
	inv := mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()).Inv()
	return &Sphere{
		ID:               id,
		Position:         mgl64.Vec4{position.X(), position.Y(), position.Z(), 1},
		Scale:            scale,
		Color:            material.Color,
		Ka:               material.Ka,
		Kd:               material.Kd,
		Ks:               material.Ks,
		Kr:               material.Kr,
		SpecularExponent: material.SpecularExponent,
		InverseTransform: inv,
		normalTransform:  inv.Transpose().Mul4(inv),
	}
}

// NormalAt returns the unit shading normal at a surface point. Interior hits
// get the inverted normal so it faces the ray origin.
func (s *Sphere) NormalAt(point mgl64.Vec4, interior bool) mgl64.Vec4 {
	n := point.Sub(s.Position)
	if interior {
		n = n.Mul(-1)
	}
	return core.AsDirection(s.normalTransform.Mul4x1(n))
}
