package assets

import "github.com/philipparndt/goview/pkg/geometry"

// Model is a loaded, renderable model owned by a Backend
type Model interface {
	// Bounds is the axis-aligned box of the first mesh
	Bounds() geometry.BoundingBox
	MeshCount() int
}

// Texture is a loaded GPU image owned by a Backend
type Texture interface {
	Size() (width, height int)
}

// Backend performs the actual decoding and GPU upload. Every value returned by
// LoadModel, LoadTexture or Placeholder is passed to the matching Unload
// exactly once by Library.
type Backend interface {
	LoadModel(path string) (Model, error)
	UnloadModel(m Model)
	LoadTexture(path string) (Texture, error)
	UnloadTexture(t Texture)
	// SetDiffuse attaches t to the diffuse slot of the primary material
	SetDiffuse(m Model, t Texture)
	// ClearDiffuse resets the diffuse slot to the backend's default texture
	ClearDiffuse(m Model)
	// Placeholder returns a unit cube used when a model cannot be loaded
	Placeholder() Model
}
