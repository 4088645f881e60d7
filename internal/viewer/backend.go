package viewer

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goview/internal/assets"
	"github.com/philipparndt/goview/pkg/geometry"
	"github.com/philipparndt/goview/pkg/modelinfo"
	"github.com/philipparndt/goview/pkg/stl"
)

// model is either a raylib-loaded model or an STL mesh uploaded from Go memory.
// Go-owned meshes are drawn with DrawMesh and freed with UnloadMesh only.
type model struct {
	model rl.Model

	mesh     *rl.Mesh
	material rl.Material

	bounds geometry.BoundingBox
	meshes int
}

func (m *model) Bounds() geometry.BoundingBox { return m.bounds }
func (m *model) MeshCount() int               { return m.meshes }

func (m *model) draw(tint rl.Color) {
	if m.mesh != nil {
		m.material.Maps.Color = tint
		rl.DrawMesh(*m.mesh, m.material, rl.MatrixIdentity())
		return
	}
	rl.DrawModel(m.model, rl.Vector3{}, 1.0, tint)
}

func (m *model) setDiffuse(t rl.Texture2D) {
	if m.mesh != nil {
		m.material.Maps.Texture = t
		return
	}
	if m.model.Materials != nil && m.model.Materials.Maps != nil {
		m.model.Materials.Maps.Texture = t
	}
}

// defaultTexture is rlgl's 1x1 white texture. Materials holding it never
// unload it.
func defaultTexture() rl.Texture2D {
	return rl.Texture2D{
		ID:      rl.GetTextureIdDefault(),
		Width:   1,
		Height:  1,
		Mipmaps: 1,
		Format:  rl.UncompressedR8g8b8a8,
	}
}

type texture struct {
	texture rl.Texture2D
}

func (t *texture) Size() (int, int) {
	return int(t.texture.Width), int(t.texture.Height)
}

// raylibBackend implements assets.Backend on the open window's GL context
type raylibBackend struct{}

var _ assets.Backend = raylibBackend{}

func (raylibBackend) LoadModel(path string) (assets.Model, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	if format, _ := modelinfo.Detect(path); format == modelinfo.FormatSTL {
		return loadSTL(path)
	}

	m := rl.LoadModel(path)
	if m.MeshCount == 0 || m.Meshes == nil {
		rl.UnloadModel(m)
		return nil, errors.New("no meshes")
	}
	return &model{
		model:  m,
		bounds: boundsFromRL(rl.GetMeshBoundingBox(*m.Meshes)),
		meshes: int(m.MeshCount),
	}, nil
}

func loadSTL(path string) (assets.Model, error) {
	parsed, err := stl.Parse(path)
	if err != nil {
		return nil, err
	}
	mesh := stlMesh(parsed)
	return &model{
		mesh:     &mesh,
		material: rl.LoadMaterialDefault(),
		bounds:   parsed.BoundingBox(),
		meshes:   1,
	}, nil
}

func (raylibBackend) UnloadModel(a assets.Model) {
	m := a.(*model)
	if m.mesh != nil {
		// the diffuse texture belongs to the library, not to this material
		m.material.Maps.Texture = defaultTexture()
		rl.UnloadMaterial(m.material)
		rl.UnloadMesh(m.mesh)
		return
	}
	rl.UnloadModel(m.model)
}

func (raylibBackend) LoadTexture(path string) (assets.Texture, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	t := rl.LoadTexture(path)
	if t.ID == 0 {
		return nil, fmt.Errorf("failed to decode image %s", path)
	}
	return &texture{texture: t}, nil
}

func (raylibBackend) UnloadTexture(a assets.Texture) {
	rl.UnloadTexture(a.(*texture).texture)
}

func (raylibBackend) SetDiffuse(m assets.Model, t assets.Texture) {
	m.(*model).setDiffuse(t.(*texture).texture)
}

func (raylibBackend) ClearDiffuse(m assets.Model) {
	m.(*model).setDiffuse(defaultTexture())
}

func (raylibBackend) Placeholder() assets.Model {
	m := rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	return &model{
		model:  m,
		bounds: boundsFromRL(rl.GetMeshBoundingBox(*m.Meshes)),
		meshes: 1,
	}
}
