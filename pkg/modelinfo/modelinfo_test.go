package modelinfo

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/philipparndt/goview/pkg/geometry"
)

const triangleGLTF = `{
  "asset": {"version": "2.0", "generator": "goview-test"},
  "scenes": [{"name": "Scene", "nodes": [0]}],
  "nodes": [{"mesh": 0}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{
    "componentType": 5126,
    "count": 3,
    "type": "VEC3",
    "min": [-1, 0, -2],
    "max": [1, 3, 2]
  }]
}`

const squareOBJ = `# square
o Square
v 0 0 0
v 2 0 0
v 2 1 0
v 0 1 0
f 1 2 3 4
`

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		kind   Kind
		ok     bool
	}{
		{"thing.glb", FormatGLB, KindModel, true},
		{"THING.GLTF", FormatGLTF, KindModel, true},
		{"dir.v2/castle.obj", FormatOBJ, KindModel, true},
		{"part.stl", FormatSTL, KindModel, true},
		{"voxels.vox", FormatVOX, KindModel, true},
		{"anim.iqm", FormatIQM, KindModel, true},
		{"scene.m3d", FormatM3D, KindModel, true},
		{"skin.png", FormatPNG, KindTexture, true},
		{"notes.xyz", "", KindUnknown, false},
		{"noext", "", KindUnknown, false},
	}

	for _, tt := range tests {
		format, ok := Detect(tt.path)
		if ok != tt.ok || format != tt.format {
			t.Errorf("Detect(%q): expected (%q, %v), got (%q, %v)", tt.path, tt.format, tt.ok, format, ok)
		}
		if kind := format.Kind(); kind != tt.kind {
			t.Errorf("Detect(%q).Kind(): expected %v, got %v", tt.path, tt.kind, kind)
		}
	}
}

func TestExtensions(t *testing.T) {
	models := Extensions(KindModel)
	expected := []string{".glb", ".gltf", ".iqm", ".m3d", ".obj", ".stl", ".vox"}
	if !reflect.DeepEqual(models, expected) {
		t.Errorf("Model extensions: expected %v, got %v", expected, models)
	}

	if textures := Extensions(KindTexture); !reflect.DeepEqual(textures, []string{".png"}) {
		t.Errorf("Texture extensions: expected [.png], got %v", textures)
	}
}

func TestInspectGLTF(t *testing.T) {
	path := writeTemp(t, "triangle.gltf", []byte(triangleGLTF))

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Format != FormatGLTF {
		t.Errorf("Format: expected glTF, got %v", info.Format)
	}
	if info.Generator != "goview-test" {
		t.Errorf("Generator: expected goview-test, got %q", info.Generator)
	}
	if info.Meshes != 1 || info.Primitives != 1 || info.Vertices != 3 {
		t.Errorf("Counts: got meshes=%d primitives=%d vertices=%d", info.Meshes, info.Primitives, info.Vertices)
	}
	if info.Triangles != 1 {
		t.Errorf("Triangles: expected 1, got %d", info.Triangles)
	}
	if info.Bounds.Min != geometry.NewVector3(-1, 0, -2) || info.Bounds.Max != geometry.NewVector3(1, 3, 2) {
		t.Errorf("Bounds: got %v", info.Bounds)
	}
}

func TestInspectGLTFMalformed(t *testing.T) {
	path := writeTemp(t, "broken.gltf", []byte(`{"asset": {"version": `))
	if _, err := Inspect(path); err == nil {
		t.Error("Expected an error for malformed glTF")
	}
}

func TestInspectOBJ(t *testing.T) {
	path := writeTemp(t, "square.obj", []byte(squareOBJ))

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Name != "Square" {
		t.Errorf("Name: expected Square, got %q", info.Name)
	}
	if info.Vertices != 4 || info.Triangles != 2 || info.Meshes != 1 {
		t.Errorf("Counts: got vertices=%d triangles=%d meshes=%d", info.Vertices, info.Triangles, info.Meshes)
	}
	if !info.HasBounds() || info.Bounds.Max != geometry.NewVector3(2, 1, 0) {
		t.Errorf("Bounds: got %v", info.Bounds)
	}
}

func TestInspectOBJWithoutVertices(t *testing.T) {
	path := writeTemp(t, "empty.obj", []byte("# nothing here\n"))
	if _, err := Inspect(path); err == nil {
		t.Error("Expected an error for an OBJ without vertices")
	}
}

func TestInspectSTL(t *testing.T) {
	data := strings.Join([]string{
		"solid wedge",
		"facet normal 0 0 1",
		"outer loop",
		"vertex 0 0 0",
		"vertex 4 0 0",
		"vertex 0 5 0",
		"endloop",
		"endfacet",
		"endsolid wedge",
	}, "\n")
	path := writeTemp(t, "wedge.stl", []byte(data))

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Triangles != 1 || info.Name != "wedge" {
		t.Errorf("Expected 1 triangle named wedge, got %d named %q", info.Triangles, info.Name)
	}
	if info.Bounds.Max != geometry.NewVector3(4, 5, 0) {
		t.Errorf("Bounds: got %v", info.Bounds)
	}
}

func TestInspectPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skin.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.Width != 8 || info.Height != 4 {
		t.Errorf("Size: expected 8x4, got %dx%d", info.Width, info.Height)
	}
	if info.HasBounds() {
		t.Error("Textures should not report bounds")
	}
}

func TestInspectMagic(t *testing.T) {
	good := writeTemp(t, "model.vox", []byte("VOX \x96\x00\x00\x00MAIN"))
	if _, err := Inspect(good); err != nil {
		t.Errorf("Expected valid VOX, got %v", err)
	}

	bad := writeTemp(t, "model.iqm", []byte("not an iqm file"))
	if _, err := Inspect(bad); err == nil {
		t.Error("Expected an error for an IQM file without signature")
	}
}

func TestInspectRejects(t *testing.T) {
	if _, err := Inspect("thing.xyz"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}
	if _, err := Inspect(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("Expected an error for a missing file")
	}
	if _, err := Inspect(writeTemp(t, "empty.glb", nil)); err == nil {
		t.Error("Expected an error for an empty file")
	}
}
