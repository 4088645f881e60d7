package interaction

import "github.com/philipparndt/goview/pkg/geometry"

// Selection is the single model-selected flag
type Selection struct {
	selected bool
}

// Selected reports whether the model is currently selected
func (s *Selection) Selected() bool {
	return s.selected
}

// Click applies one press edge: a hit toggles, a miss clears
func (s *Selection) Click(hit bool) {
	if hit {
		s.selected = !s.selected
		return
	}
	s.selected = false
}

// Pick casts ray against box and applies the result as a click.
// It returns the hit so callers can log where the model was picked.
func (s *Selection) Pick(ray geometry.Ray, box geometry.BoundingBox) (geometry.RayHit, bool) {
	hit, ok := ray.IntersectBox(box)
	s.Click(ok)
	return hit, ok
}
