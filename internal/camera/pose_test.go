package camera

import (
	"testing"

	"github.com/philipparndt/goview/pkg/geometry"
)

func TestParseProjection(t *testing.T) {
	tests := []struct {
		input    string
		expected Projection
		wantErr  bool
	}{
		{"perspective", Perspective, false},
		{"Orthographic", Orthographic, false},
		{"ortho", Orthographic, false},
		{"", Perspective, false},
		{"fisheye", Perspective, true},
	}

	for _, tt := range tests {
		got, err := ParseProjection(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProjection(%q) error: expected %v, got %v", tt.input, tt.wantErr, err)
		}
		if got != tt.expected {
			t.Errorf("ParseProjection(%q) failed: expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestScreenRayCenter(t *testing.T) {
	c := newTestController()
	ray := c.Pose().ScreenRay(400, 225, 800, 450)

	if !ray.Origin.ApproxEqual(c.Position, 1e-9) {
		t.Errorf("Origin failed: expected %v, got %v", c.Position, ray.Origin)
	}
	if !ray.Direction.ApproxEqual(c.Forward, 1e-6) {
		t.Errorf("Direction failed: expected %v, got %v", c.Forward, ray.Direction)
	}
}

func TestScreenRayOffsets(t *testing.T) {
	c := newTestController()
	pose := c.Pose()

	right := pose.ScreenRay(700, 225, 800, 450)
	if right.Direction.Dot(c.Right()) <= 0 {
		t.Errorf("Right of center failed: expected direction towards %v, got %v", c.Right(), right.Direction)
	}

	top := pose.ScreenRay(400, 10, 800, 450)
	if top.Direction.Y <= 0 {
		t.Errorf("Top of screen failed: expected upward direction, got %v", top.Direction)
	}
}

func TestScreenRayHitsModelInView(t *testing.T) {
	c := newTestController()
	box := geometry.BoundingBox{Min: geometry.NewVector3(-1, -1, -1), Max: geometry.NewVector3(1, 1, 1)}

	if _, ok := c.Pose().ScreenRay(400, 225, 800, 450).IntersectBox(box); !ok {
		t.Error("Expected center ray to hit the box")
	}
	if _, ok := c.Pose().ScreenRay(5, 5, 800, 450).IntersectBox(box); ok {
		t.Error("Expected corner ray to miss the box")
	}
}

func TestScreenRayOrthographic(t *testing.T) {
	c := newTestController()
	c.Projection = Orthographic
	pose := c.Pose()

	center := pose.ScreenRay(400, 225, 800, 450)
	if !center.Direction.ApproxEqual(c.Forward, 1e-6) {
		t.Errorf("Direction failed: expected %v, got %v", c.Forward, center.Direction)
	}

	side := pose.ScreenRay(700, 225, 800, 450)
	if !side.Direction.ApproxEqual(c.Forward, 1e-6) {
		t.Errorf("Orthographic rays should be parallel, got %v", side.Direction)
	}
	if side.Origin.Sub(center.Origin).Dot(c.Right()) <= 0 {
		t.Errorf("Origin failed: expected offset towards %v, got %v", c.Right(), side.Origin)
	}
}

func TestScreenRayDegenerateViewport(t *testing.T) {
	c := newTestController()
	ray := c.Pose().ScreenRay(0, 0, 0, 0)

	if ray.Origin != c.Position || !ray.Direction.ApproxEqual(c.Forward, 1e-9) {
		t.Errorf("Fallback failed: expected camera ray, got %v", ray)
	}
}
