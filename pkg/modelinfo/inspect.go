package modelinfo

import (
	"bufio"
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goview/pkg/geometry"
	"github.com/philipparndt/goview/pkg/stl"
	"github.com/qmuntal/gltf"
)

func inspectGLTF(path string, info *Info) error {
	doc, err := gltf.Open(path)
	if err != nil {
		return err
	}
	if doc.Asset.Generator != "" {
		info.Generator = doc.Asset.Generator
	}
	if len(doc.Scenes) > 0 && doc.Scenes[0].Name != "" {
		info.Name = doc.Scenes[0].Name
	}

	info.Meshes = len(doc.Meshes)
	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			info.Primitives++

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok || int(posIdx) >= len(doc.Accessors) {
				continue
			}
			pos := doc.Accessors[posIdx]
			info.Vertices += int(pos.Count)
			if len(pos.Min) == 3 && len(pos.Max) == 3 {
				info.Bounds.Extend(geometry.NewVector3(float64(pos.Min[0]), float64(pos.Min[1]), float64(pos.Min[2])))
				info.Bounds.Extend(geometry.NewVector3(float64(pos.Max[0]), float64(pos.Max[1]), float64(pos.Max[2])))
			}

			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			if prim.Indices != nil && int(*prim.Indices) < len(doc.Accessors) {
				info.Triangles += int(doc.Accessors[*prim.Indices].Count) / 3
			} else {
				info.Triangles += int(pos.Count) / 3
			}
		}
	}
	if info.Meshes == 0 {
		return fmt.Errorf("document has no meshes")
	}
	return nil
}

func inspectSTL(path string, info *Info) error {
	model, err := stl.Parse(path)
	if err != nil {
		return err
	}
	info.Name = model.Name
	info.Meshes = 1
	info.Primitives = 1
	info.Triangles = model.TriangleCount()
	info.Vertices = model.TriangleCount() * 3
	info.Bounds = model.BoundingBox()
	return nil
}

func inspectOBJ(path string, info *Info) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return scanOBJ(f, info)
}

// scanOBJ counts vertices, faces and objects. Faces are fan-triangulated.
func scanOBJ(r io.Reader, info *Info) error {
	scanner := bufio.NewScanner(r)
	objects := 0
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var c [3]float64
			for i := range c {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				c[i] = v
			}
			info.Vertices++
			info.Bounds.Extend(geometry.NewVector3(c[0], c[1], c[2]))
		case "f":
			if len(fields) < 4 {
				return fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			info.Triangles += len(fields) - 3
		case "o":
			objects++
			if info.Name == "" && len(fields) > 1 {
				info.Name = strings.Join(fields[1:], " ")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if info.Vertices == 0 {
		return fmt.Errorf("no vertices")
	}
	info.Meshes = max(objects, 1)
	info.Primitives = info.Meshes
	return nil
}

func inspectPNG(path string, info *Info) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return err
	}
	info.Width = cfg.Width
	info.Height = cfg.Height
	return nil
}

var magicByFormat = map[Format][][]byte{
	FormatVOX: {[]byte("VOX ")},
	FormatIQM: {[]byte("INTERQUAKEMODEL\x00")},
	FormatM3D: {[]byte("3DMO"), []byte("3dmodel")},
}

func checkMagic(path string, format Format) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 16)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	head = head[:n]
	for _, magic := range magicByFormat[format] {
		if bytes.HasPrefix(head, magic) {
			return nil
		}
	}
	return fmt.Errorf("missing %s signature", format)
}
