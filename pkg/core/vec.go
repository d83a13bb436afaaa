package core

import "github.com/go-gl/mathgl/mgl64"

// NewPoint returns the homogeneous point (x, y, z, 1).
func NewPoint(x, y, z float64) mgl64.Vec4 {
	return mgl64.Vec4{x, y, z, 1}
}

// NewDirection returns the homogeneous direction (x, y, z, 0).
func NewDirection(x, y, z float64) mgl64.Vec4 {
	return mgl64.Vec4{x, y, z, 0}
}

// NewColor returns an RGB color with alpha 1.
func NewColor(r, g, b float64) mgl64.Vec4 {
	return mgl64.Vec4{r, g, b, 1}
}

// Black is the zero contribution. Its alpha is 0 so sums of colors stay
// meaningful in the RGB channels only.
var Black = mgl64.Vec4{}

// MultiplyVec returns component-wise multiplication of two vectors
func MultiplyVec(a, b mgl64.Vec4) mgl64.Vec4 {
	return mgl64.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// AsDirection drops the homogeneous component and normalizes the result.
// A zero vector is returned unchanged.
func AsDirection(v mgl64.Vec4) mgl64.Vec4 {
	v[3] = 0
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Clamp01 clamps x to [0, 1]
func Clamp01(x float64) float64 {
	return mgl64.Clamp(x, 0, 1)
}
