package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Right triangle with legs 3 and 4
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	if math.Abs(area-6.0) > 1e-10 {
		t.Errorf("Area failed: expected 6, got %v", area)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		Zero,
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	if normal := tri.CalculateNormal(); !normal.ApproxEqual(UnitZ, 1e-12) {
		t.Errorf("CalculateNormal failed: expected %v, got %v", UnitZ, normal)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if !center.ApproxEqual(expected, 1e-12) {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}
