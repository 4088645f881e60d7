package geometry

import "math"

// Ray is a half-line starting at Origin
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// RayHit describes where a ray first enters a box
type RayHit struct {
	Point    Vector3
	Normal   Vector3
	Distance float64
}

// IntersectBox runs the slab test of r against b. A ray starting inside the
// box hits at its exit point. Boxes entirely behind the origin do not count.
func (r Ray) IntersectBox(b BoundingBox) (RayHit, bool) {
	if b.IsEmpty() {
		return RayHit{}, false
	}
	dir := r.Direction.Normalize()
	if dir == Zero {
		return RayHit{}, false
	}

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return RayHit{}, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / d[i]
		t2 := (hi[i] - origin[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return RayHit{}, false
		}
	}
	if tmax < 0 {
		return RayHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	point := r.Origin.Add(dir.Mul(t))
	return RayHit{Point: point, Normal: b.faceNormal(point), Distance: t}, true
}

func (b BoundingBox) faceNormal(p Vector3) Vector3 {
	const eps = 1e-6
	switch {
	case math.Abs(p.X-b.Min.X) < eps:
		return Vector3{X: -1}
	case math.Abs(p.X-b.Max.X) < eps:
		return Vector3{X: 1}
	case math.Abs(p.Y-b.Min.Y) < eps:
		return Vector3{Y: -1}
	case math.Abs(p.Y-b.Max.Y) < eps:
		return Vector3{Y: 1}
	case math.Abs(p.Z-b.Min.Z) < eps:
		return Vector3{Z: -1}
	default:
		return Vector3{Z: 1}
	}
}
