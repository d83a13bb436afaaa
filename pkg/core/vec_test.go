package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRay_At(t *testing.T) {
	ray := NewRay(NewPoint(1, 2, 3), NewDirection(0, 0, -2), 0)
	p := ray.At(1.5)

	expected := NewPoint(1, 2, 0)
	if !p.ApproxEqualThreshold(expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, p)
	}
	if !ray.IsPrimary() {
		t.Error("Expected level 0 ray to be primary")
	}
}

func TestAsDirection(t *testing.T) {
	tests := []struct {
		name     string
		input    mgl64.Vec4
		expected mgl64.Vec4
	}{
		{"drops w", mgl64.Vec4{3, 0, 4, 7}, mgl64.Vec4{0.6, 0, 0.8, 0}},
		{"already unit", NewDirection(0, 1, 0), NewDirection(0, 1, 0)},
		{"zero stays zero", mgl64.Vec4{0, 0, 0, 1}, mgl64.Vec4{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsDirection(tt.input)
			for i := 0; i < 4; i++ {
				if math.Abs(got[i]-tt.expected[i]) > 1e-12 {
					t.Fatalf("AsDirection(%v) = %v, want %v", tt.input, got, tt.expected)
				}
			}
		})
	}
}

func TestMultiplyVec(t *testing.T) {
	got := MultiplyVec(NewColor(0.5, 1, 2), NewColor(2, 0.25, 0.5))
	expected := mgl64.Vec4{1, 0.25, 1, 1}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.5) != 0 || Clamp01(0.25) != 0.25 || Clamp01(3) != 1 {
		t.Error("Clamp01 did not clamp to [0,1]")
	}
}
