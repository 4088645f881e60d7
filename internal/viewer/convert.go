package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goview/internal/camera"
	"github.com/philipparndt/goview/pkg/geometry"
)

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func fromRL(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

func boundsToRL(b geometry.BoundingBox) rl.BoundingBox {
	return rl.BoundingBox{Min: toRL(b.Min), Max: toRL(b.Max)}
}

func boundsFromRL(b rl.BoundingBox) geometry.BoundingBox {
	return geometry.BoundingBox{Min: fromRL(b.Min), Max: fromRL(b.Max)}
}

func camera3D(p camera.Pose) rl.Camera3D {
	projection := rl.CameraPerspective
	if p.Projection == camera.Orthographic {
		projection = rl.CameraOrthographic
	}
	return rl.Camera3D{
		Position:   toRL(p.Position),
		Target:     toRL(p.Target),
		Up:         toRL(p.Up),
		Fovy:       float32(p.Fovy),
		Projection: projection,
	}
}
