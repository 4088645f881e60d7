package geometry

import (
	"math"
	"testing"
)

func TestAxisArrows(t *testing.T) {
	arrows := AxisArrows(5)
	axes := []Vector3{UnitX, UnitY, UnitZ}

	for i, arrow := range arrows {
		shaft := arrow[0]
		if shaft.A != Zero || !shaft.B.ApproxEqual(axes[i].Mul(5), 1e-12) {
			t.Errorf("Axis %d shaft failed: expected origin to %v, got %v", i, axes[i].Mul(5), shaft)
		}

		for _, stroke := range arrow[1:] {
			if stroke.A != shaft.B {
				t.Errorf("Axis %d tip failed: expected stroke to start at the axis end, got %v", i, stroke.A)
			}
			back := stroke.B.Sub(stroke.A).Dot(axes[i])
			if math.Abs(back+0.5) > 1e-12 {
				t.Errorf("Axis %d tip failed: expected 0.5 back along the axis, got %v", i, -back)
			}
		}
	}
}
