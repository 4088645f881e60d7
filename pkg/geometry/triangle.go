package geometry

// Triangle is a single facet: a stored normal plus three vertices in winding order
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// CalculateNormal computes the face normal from the winding order
func (t Triangle) CalculateNormal() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2.0
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}
