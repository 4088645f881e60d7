package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goview/pkg/geometry"
)

const (
	gridSlices  = 20
	gridSpacing = 10.0
	axesLength  = 5.0
)

var axisColors = [3]rl.Color{
	rl.NewColor(255, 0, 0, 255),
	rl.NewColor(0, 255, 0, 255),
	rl.NewColor(0, 0, 255, 255),
}

func (v *Viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	rl.BeginMode3D(camera3D(v.camera.Pose()))

	rl.PushMatrix()
	rl.Rotatef(float32(v.spin.Angle), 0, 1, 0)
	if m, ok := v.assets.Model().(*model); ok {
		m.draw(rl.White)
	}
	rl.PopMatrix()

	rl.DrawGrid(gridSlices, gridSpacing)
	drawAxes(axesLength)

	if v.selection.Selected() {
		rl.DrawBoundingBox(boundsToRL(v.assets.Bounds()), rl.Green)
	}

	rl.EndMode3D()

	v.drawHUD()

	rl.EndDrawing()
}

func drawAxes(length float64) {
	for i, arrow := range geometry.AxisArrows(length) {
		for _, s := range arrow {
			rl.DrawLine3D(toRL(s.A), toRL(s.B), axisColors[i])
		}
	}
}
