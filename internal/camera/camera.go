package camera

import (
	"math"

	"github.com/philipparndt/goview/pkg/geometry"
)

// maxUpDot keeps forward at least ~0.5° away from the up axis so that the
// cross product used for strafing never degenerates.
var maxUpDot = math.Cos(0.5 * math.Pi / 180)

// Settings are the per-second rates used by Update
type Settings struct {
	MoveSpeed     float64 // units/s along forward and right
	VerticalSpeed float64 // units/s along world up, not scaled by MoveSpeed
	LookSpeed     float64 // radians per pixel of mouse delta per second
}

// DefaultSettings mirror the config defaults
func DefaultSettings() Settings {
	return Settings{MoveSpeed: 10, VerticalSpeed: 1, LookSpeed: 0.1}
}

// Input is the per-frame control state
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Reset   bool // edge-triggered

	MouseDX float64
	MouseDY float64
}

// Controller is a free-flying first-person camera
type Controller struct {
	Position   geometry.Vector3
	Forward    geometry.Vector3
	Up         geometry.Vector3
	Target     geometry.Vector3
	Fovy       float64
	Projection Projection
	Settings   Settings

	right geometry.Vector3
}

// IsVertical reports whether v is zero or within ~0.5° of world up or down,
// which leaves no usable strafe axis.
func IsVertical(v geometry.Vector3) bool {
	v = v.Normalize()
	return v == geometry.Zero || math.Abs(v.Dot(geometry.WorldUp)) > maxUpDot
}

// New creates a controller at position looking along forward with world up.
// A vertical forward (see IsVertical) is replaced by +Z.
func New(position, forward geometry.Vector3, settings Settings) *Controller {
	forward = forward.Normalize()
	if IsVertical(forward) {
		forward = geometry.UnitZ
	}
	c := &Controller{
		Position:   position,
		Forward:    forward,
		Up:         geometry.WorldUp,
		Fovy:       45,
		Projection: Perspective,
		Settings:   settings,
	}
	c.right = c.Forward.Cross(c.Up).Normalize()
	c.syncTarget()
	return c
}

// Right is the strafe axis computed at the start of the last update
func (c *Controller) Right() geometry.Vector3 {
	return c.right
}

func (c *Controller) syncTarget() {
	c.Target = c.Position.Add(c.Forward)
}

// Update advances the camera by dt seconds.
//
// Order per frame: recompute right, reset, translate, then pitch about right,
// yaw about world up, and pitch about the same right vector a second time.
func (c *Controller) Update(dt float64, in Input) {
	c.right = c.Forward.Cross(c.Up).Normalize()

	if in.Reset {
		c.Position = geometry.Zero
	}

	step := c.Settings.MoveSpeed * dt
	if in.Forward {
		c.Position = c.Position.Add(c.Forward.Mul(step))
	}
	if in.Back {
		c.Position = c.Position.Add(c.Forward.Mul(-step))
	}
	if in.Left {
		c.Position = c.Position.Add(c.right.Mul(-step))
	}
	if in.Right {
		c.Position = c.Position.Add(c.right.Mul(step))
	}

	lift := c.Settings.VerticalSpeed * dt
	if in.Up {
		c.Position.Y += lift
	}
	if in.Down {
		c.Position.Y -= lift
	}

	pitch := -in.MouseDY * c.Settings.LookSpeed * dt
	yaw := -in.MouseDX * c.Settings.LookSpeed * dt

	c.pitch(pitch)
	c.syncTarget()
	c.rotate(c.Up, yaw)
	c.syncTarget()
	c.pitch(pitch)
	c.syncTarget()
}

// pitch skips a pass that would enter the cone around up or carry forward
// over the pole.
func (c *Controller) pitch(angle float64) {
	if angle == 0 {
		return
	}
	next := c.Forward.RotateAxisAngle(c.right, angle).Normalize()
	if math.Abs(next.Dot(c.Up)) > maxUpDot {
		return
	}
	if c.horizontal(next).Dot(c.horizontal(c.Forward)) <= 0 {
		return
	}
	c.Forward = next
}

func (c *Controller) horizontal(v geometry.Vector3) geometry.Vector3 {
	return v.Sub(c.Up.Mul(v.Dot(c.Up)))
}

func (c *Controller) rotate(axis geometry.Vector3, angle float64) {
	if angle == 0 {
		return
	}
	c.Forward = c.Forward.RotateAxisAngle(axis, angle).Normalize()
}

// Frame moves the camera back along its current view direction until box fits
// the vertical field of view. Orientation is kept. Empty boxes are ignored.
func (c *Controller) Frame(box geometry.BoundingBox) {
	if box.IsEmpty() {
		return
	}
	radius := box.Diagonal() / 2
	if radius == 0 {
		radius = 1
	}

	var distance float64
	if c.Projection == Orthographic {
		distance = radius * 2
	} else {
		half := c.Fovy * math.Pi / 360
		distance = radius / math.Sin(half)
	}

	c.Position = box.Center().Sub(c.Forward.Mul(distance))
	c.syncTarget()
}

// Pose snapshots the camera for rendering and picking
func (c *Controller) Pose() Pose {
	return Pose{
		Position:   c.Position,
		Target:     c.Target,
		Up:         c.Up,
		Fovy:       c.Fovy,
		Projection: c.Projection,
	}
}
