package camera

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goview/pkg/geometry"
)

// Clip planes match raylib's rlgl defaults so picking agrees with rendering
const (
	NearPlane = 0.01
	FarPlane  = 1000.0
)

// Projection selects perspective or orthographic rendering
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// ParseProjection accepts "perspective" and "orthographic"
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(s) {
	case "perspective", "":
		return Perspective, nil
	case "orthographic", "ortho":
		return Orthographic, nil
	default:
		return Perspective, fmt.Errorf("unknown projection %q", s)
	}
}

// Pose is a read-only camera snapshot
type Pose struct {
	Position   geometry.Vector3
	Target     geometry.Vector3
	Up         geometry.Vector3
	Fovy       float64
	Projection Projection
}

func (p Pose) forward() geometry.Vector3 {
	return p.Target.Sub(p.Position).Normalize()
}

func (p Pose) matrices(aspect float64) (view, proj mgl64.Mat4) {
	view = mgl64.LookAtV(p.Position.Vec3(), p.Target.Vec3(), p.Up.Vec3())
	if p.Projection == Orthographic {
		top := p.Fovy / 2
		right := top * aspect
		proj = mgl64.Ortho(-right, right, -top, top, NearPlane, FarPlane)
	} else {
		proj = mgl64.Perspective(mgl64.DegToRad(p.Fovy), aspect, NearPlane, FarPlane)
	}
	return view, proj
}

// ScreenRay casts a ray through the pixel (x, y) of a width×height viewport,
// with y growing downwards. Perspective rays start at the camera position,
// orthographic rays on the near plane.
func (p Pose) ScreenRay(x, y, width, height float64) geometry.Ray {
	fallback := geometry.Ray{Origin: p.Position, Direction: p.forward()}
	if width <= 0 || height <= 0 {
		return fallback
	}

	view, proj := p.matrices(width / height)
	w, h := int(width), int(height)
	winY := height - y

	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, view, proj, 0, 0, w, h)
	if err != nil {
		return fallback
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, view, proj, 0, 0, w, h)
	if err != nil {
		return fallback
	}

	dir := geometry.NewVector3(far[0]-near[0], far[1]-near[1], far[2]-near[2]).Normalize()
	if p.Projection == Orthographic {
		return geometry.Ray{Origin: geometry.NewVector3(near[0], near[1], near[2]), Direction: dir}
	}
	return geometry.Ray{Origin: p.Position, Direction: dir}
}
