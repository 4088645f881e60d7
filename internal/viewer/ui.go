package viewer

import (
	"fmt"
	"path/filepath"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize     = 10
	statusBarHeight = 20
)

func (v *Viewer) drawHUD() {
	width := int32(rl.GetScreenWidth())
	height := int32(rl.GetScreenHeight())

	rl.DrawText("Drag & drop model to load mesh/texture.", 10, height-20, hudFontSize, rl.DarkGray)
	if v.selection.Selected() {
		rl.DrawText("MODEL SELECTED", width-110, 10, hudFontSize, rl.Green)
	}
	rl.DrawText("(c) Castle 3D model by Alberto Cano", width-200, height-20, hudFontSize, rl.Gray)

	bar := rl.Rectangle{
		X:      0,
		Y:      float32(height - 30 - statusBarHeight),
		Width:  float32(width),
		Height: statusBarHeight,
	}
	gui.StatusBar(bar, v.statusText())

	rl.DrawFPS(10, 10)
}

func (v *Viewer) statusText() string {
	texture := "no texture"
	if p := v.assets.TexturePath(); p != "" {
		texture = filepath.Base(p)
	}
	text := fmt.Sprintf("%s | %s", filepath.Base(v.assets.ModelPath()), texture)
	if v.status != "" {
		text += " | " + v.status
	}
	return text
}
