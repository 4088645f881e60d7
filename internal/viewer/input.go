package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goview/internal/camera"
)

// frameInput is everything the update step reads from raylib in one frame
type frameInput struct {
	camera  camera.Input
	spin    bool
	frame   bool
	click   bool
	mouse   rl.Vector2
	dropped []string
}

func pollInput() frameInput {
	delta := rl.GetMouseDelta()

	in := frameInput{
		camera: camera.Input{
			Forward: rl.IsKeyDown(rl.KeyW),
			Back:    rl.IsKeyDown(rl.KeyS),
			Left:    rl.IsKeyDown(rl.KeyA),
			Right:   rl.IsKeyDown(rl.KeyD),
			Up:      rl.IsKeyDown(rl.KeyQ),
			Down:    rl.IsKeyDown(rl.KeyE),
			Reset:   rl.IsKeyPressed(rl.KeyR),
			MouseDX: float64(delta.X),
			MouseDY: float64(delta.Y),
		},
		spin:  rl.IsKeyDown(rl.KeyP),
		frame: rl.IsKeyPressed(rl.KeyF),
		click: rl.IsMouseButtonPressed(rl.MouseLeftButton),
		mouse: rl.GetMousePosition(),
	}

	if rl.IsFileDropped() {
		files := rl.LoadDroppedFiles()
		defer rl.UnloadDroppedFiles()
		in.dropped = append([]string(nil), files...)
	}

	return in
}
