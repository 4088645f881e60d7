package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goview/pkg/geometry"
)

// MeshStats summarizes the triangles of a mesh
type MeshStats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeTriangles computes bounds, area and edge statistics. Shared edges are
// counted once per triangle.
func AnalyzeTriangles(triangles []geometry.Triangle) *MeshStats {
	stats := &MeshStats{
		BoundingBox:   geometry.NewBoundingBox(),
		TriangleCount: len(triangles),
	}
	if len(triangles) == 0 {
		return stats
	}

	minLength := math.MaxFloat64
	total := 0.0

	for _, tri := range triangles {
		stats.SurfaceArea += tri.Area()

		corners := [3]geometry.Vector3{tri.V1, tri.V2, tri.V3}
		for i, c := range corners {
			stats.BoundingBox.Extend(c)

			length := c.Distance(corners[(i+1)%3])
			total += length
			minLength = math.Min(minLength, length)
			stats.MaxEdgeLength = math.Max(stats.MaxEdgeLength, length)
		}
	}

	stats.EdgeCount = len(triangles) * 3
	stats.MinEdgeLength = minLength
	stats.AvgEdgeLength = total / float64(stats.EdgeCount)
	stats.Dimensions = stats.BoundingBox.Size()
	return stats
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
