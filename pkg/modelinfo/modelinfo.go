// Package modelinfo detects model and texture formats by extension and
// inspects files without touching the GPU.
package modelinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/philipparndt/goview/pkg/geometry"
)

// Format names a file format the viewer understands
type Format string

const (
	FormatGLTF Format = "glTF"
	FormatGLB  Format = "GLB"
	FormatOBJ  Format = "OBJ"
	FormatSTL  Format = "STL"
	FormatVOX  Format = "VOX"
	FormatIQM  Format = "IQM"
	FormatM3D  Format = "M3D"
	FormatPNG  Format = "PNG"
)

// Kind separates model formats from texture formats
type Kind int

const (
	KindUnknown Kind = iota
	KindModel
	KindTexture
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindTexture:
		return "texture"
	default:
		return "unknown"
	}
}

var formatByExt = map[string]Format{
	".gltf": FormatGLTF,
	".glb":  FormatGLB,
	".obj":  FormatOBJ,
	".stl":  FormatSTL,
	".vox":  FormatVOX,
	".iqm":  FormatIQM,
	".m3d":  FormatM3D,
	".png":  FormatPNG,
}

// ErrUnsupported is returned for paths whose extension is not recognised
var ErrUnsupported = errors.New("unsupported file type")

// Detect maps a path's extension (case-insensitive) to a Format
func Detect(path string) (Format, bool) {
	f, ok := formatByExt[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Kind reports whether the format is a model or a texture
func (f Format) Kind() Kind {
	switch f {
	case FormatPNG:
		return KindTexture
	case "":
		return KindUnknown
	default:
		return KindModel
	}
}

// Extensions lists the recognised extensions of one kind, sorted
func Extensions(kind Kind) []string {
	var exts []string
	for ext, f := range formatByExt {
		if f.Kind() == kind {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}

// Info summarises a model or texture file
type Info struct {
	Path       string
	Format     Format
	Size       int64
	Name       string
	Generator  string
	Meshes     int
	Primitives int
	Vertices   int
	Triangles  int
	Bounds     geometry.BoundingBox
	Width      int
	Height     int
}

// HasBounds reports whether the inspector could determine geometry extents
func (i *Info) HasBounds() bool {
	return !i.Bounds.IsEmpty()
}

// Inspect reads enough of path to describe it. It fails for missing,
// empty, unsupported or malformed files.
func Inspect(path string) (*Info, error) {
	format, ok := Detect(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", filepath.Ext(path), ErrUnsupported)
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}
	if st.Size() == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}

	info := &Info{
		Path:   path,
		Format: format,
		Size:   st.Size(),
		Bounds: geometry.NewBoundingBox(),
	}

	switch format {
	case FormatGLTF, FormatGLB:
		err = inspectGLTF(path, info)
	case FormatSTL:
		err = inspectSTL(path, info)
	case FormatOBJ:
		err = inspectOBJ(path, info)
	case FormatPNG:
		err = inspectPNG(path, info)
	default:
		err = checkMagic(path, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s: %w", path, err)
	}
	return info, nil
}
