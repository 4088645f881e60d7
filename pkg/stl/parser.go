package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goview/pkg/geometry"
)

const (
	binaryHeaderSize   = 80
	binaryTriangleSize = 50
)

// ErrEmpty is returned for a file that holds no facets at all
var ErrEmpty = errors.New("stl: no triangles")

// Parse reads an STL file and returns a Model.
// ASCII and binary encodings are detected automatically.
func Parse(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Decode(data)
}

// Decode parses STL data that is already in memory
func Decode(data []byte) (*Model, error) {
	var (
		model *Model
		err   error
	)
	if isASCII(data) {
		model, err = parseASCII(bytes.NewReader(data))
	} else {
		model, err = parseBinary(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	if model.TriangleCount() == 0 {
		return nil, ErrEmpty
	}
	return model, nil
}

// isASCII checks for the "solid" keyword. Some exporters write "solid" into the
// binary header too, so a body whose size matches the binary triangle count is
// treated as binary regardless.
func isASCII(data []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return false
	}
	if len(data) >= binaryHeaderSize+4 {
		count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
		if int64(len(data)) == binaryHeaderSize+4+int64(count)*binaryTriangleSize {
			return false
		}
	}
	return true
}

func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := newModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				v, err := parseVector(fields[2:5])
				if err != nil {
					return nil, fmt.Errorf("line %d: bad normal: %w", lineNo, err)
				}
				currentNormal = v
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad vertex: %w", lineNo, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				model.add(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// facet mirrors the 50-byte binary record
type facet struct {
	Normal    [3]float32
	V1        [3]float32
	V2        [3]float32
	V3        [3]float32
	Attribute uint16
}

func parseBinary(reader io.Reader) (*Model, error) {
	header := make([]byte, binaryHeaderSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model := newModel(string(bytes.TrimRight(header, "\x00 ")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var f facet
		if err := binary.Read(reader, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.add(geometry.NewTriangle(vec(f.Normal), vec(f.V1), vec(f.V2), vec(f.V3)))
	}

	return model, nil
}

func vec(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
