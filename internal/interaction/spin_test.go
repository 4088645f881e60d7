package interaction

import (
	"math"
	"testing"
)

func TestSpin(t *testing.T) {
	s := NewSpin(1000)

	s.Update(0.5, false)
	if s.Angle != 0 {
		t.Errorf("Idle failed: expected 0, got %v", s.Angle)
	}

	s.Update(0.5, true)
	s.Update(0.25, true)
	if math.Abs(s.Angle-750) > 1e-9 {
		t.Errorf("Held failed: expected 750, got %v", s.Angle)
	}

	s.Update(1, false)
	if math.Abs(s.Angle-750) > 1e-9 {
		t.Errorf("Release failed: expected angle kept at 750, got %v", s.Angle)
	}
}
