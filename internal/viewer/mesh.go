package viewer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goview/pkg/geometry"
	"github.com/philipparndt/goview/pkg/stl"
)

var lightDir = geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

// stlMesh uploads an STL model as a flat-shaded mesh. Lighting is baked into
// vertex colors since the default material has no lights.
func stlMesh(model *stl.Model) rl.Mesh {
	buf := model.Buffers()
	vertexCount := buf.VertexCount()

	colors := make([]uint8, 0, vertexCount*4)
	for i := 0; i < len(buf.Normals); i += 3 {
		n := geometry.NewVector3(float64(buf.Normals[i]), float64(buf.Normals[i+1]), float64(buf.Normals[i+2]))
		shade := math.Max(0.3, -n.Dot(lightDir)) * 200
		colors = append(colors, uint8(shade*0.8), uint8(shade*0.8), uint8(shade*0.85), 255)
	}

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(model.TriangleCount()),
	}
	if vertexCount > 0 {
		mesh.Vertices = &buf.Positions[0]
		mesh.Normals = &buf.Normals[0]
		mesh.Texcoords = &buf.Texcoords[0]
		mesh.Colors = &colors[0]
	}

	rl.UploadMesh(&mesh, false)
	return mesh
}
