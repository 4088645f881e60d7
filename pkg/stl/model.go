package stl

import "github.com/philipparndt/goview/pkg/geometry"

// Model is the triangle soup read from an STL file. Bounds are tracked while
// triangles are appended.
type Model struct {
	Name      string
	Triangles []geometry.Triangle

	bounds geometry.BoundingBox
}

func newModel(name string) *Model {
	return &Model{Name: name, bounds: geometry.NewBoundingBox()}
}

func (m *Model) add(t geometry.Triangle) {
	m.Triangles = append(m.Triangles, t)
	m.bounds.Extend(t.V1)
	m.bounds.Extend(t.V2)
	m.bounds.Extend(t.V3)
}

func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox covers every vertex; empty for a model without triangles
func (m *Model) BoundingBox() geometry.BoundingBox {
	return m.bounds
}

// Buffers holds unindexed per-vertex arrays, three floats per vertex for
// positions and normals and two for texcoords.
type Buffers struct {
	Positions []float32
	Normals   []float32
	Texcoords []float32
}

// VertexCount is the number of vertices in b
func (b Buffers) VertexCount() int {
	return len(b.Positions) / 3
}

// triangleUV spreads the texture over each facet
var triangleUV = [3][2]float32{{0, 0}, {1, 0}, {0, 1}}

// Buffers expands the model for upload. Normals are recomputed from the vertex
// winding since exporters often leave the stored facet normal at zero.
func (m *Model) Buffers() Buffers {
	n := len(m.Triangles) * 3
	b := Buffers{
		Positions: make([]float32, 0, n*3),
		Normals:   make([]float32, 0, n*3),
		Texcoords: make([]float32, 0, n*2),
	}
	for _, tri := range m.Triangles {
		normal := tri.CalculateNormal()
		for i, v := range [3]geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			b.Positions = append(b.Positions, float32(v.X), float32(v.Y), float32(v.Z))
			b.Normals = append(b.Normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
			b.Texcoords = append(b.Texcoords, triangleUV[i][0], triangleUV[i][1])
		}
	}
	return b
}
