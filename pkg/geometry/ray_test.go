package geometry

import (
	"math"
	"testing"
)

func unitCube() BoundingBox {
	return NewBoundingBoxFromCenter(Zero, NewVector3(2, 2, 2))
}

func TestRayIntersectBoxHit(t *testing.T) {
	ray := Ray{Origin: NewVector3(0, 0, -10), Direction: UnitZ}

	hit, ok := ray.IntersectBox(unitCube())
	if !ok {
		t.Fatal("Expected ray to hit the box")
	}
	if math.Abs(hit.Distance-9) > 1e-12 {
		t.Errorf("Distance failed: expected 9, got %v", hit.Distance)
	}
	if hit.Normal != NewVector3(0, 0, -1) {
		t.Errorf("Normal failed: expected (0,0,-1), got %v", hit.Normal)
	}
	if !hit.Point.ApproxEqual(NewVector3(0, 0, -1), 1e-12) {
		t.Errorf("Point failed: expected (0,0,-1), got %v", hit.Point)
	}
}

func TestRayIntersectBoxMiss(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
	}{
		{"parallel outside slab", Ray{Origin: NewVector3(5, 0, -10), Direction: UnitZ}},
		{"pointing away", Ray{Origin: NewVector3(0, 0, -10), Direction: NewVector3(0, 0, -1)}},
		{"diagonal past corner", Ray{Origin: NewVector3(-10, 3, 0), Direction: NewVector3(1, 0.01, 0)}},
		{"zero direction", Ray{Origin: NewVector3(0, 0, -10)}},
	}

	for _, tt := range tests {
		if _, ok := tt.ray.IntersectBox(unitCube()); ok {
			t.Errorf("%s: expected miss", tt.name)
		}
	}
}

func TestRayIntersectBoxFromInside(t *testing.T) {
	ray := Ray{Origin: Zero, Direction: UnitX}

	hit, ok := ray.IntersectBox(unitCube())
	if !ok {
		t.Fatal("Ray starting inside the box should hit")
	}
	if math.Abs(hit.Distance-1) > 1e-12 {
		t.Errorf("Expected exit distance 1, got %v", hit.Distance)
	}
}

func TestRayIntersectEmptyBox(t *testing.T) {
	ray := Ray{Origin: NewVector3(0, 0, -10), Direction: UnitZ}
	if _, ok := ray.IntersectBox(NewBoundingBox()); ok {
		t.Error("Empty box should never be hit")
	}
}
