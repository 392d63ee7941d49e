// Package terrain turns heightfields into GPU-ready triangle-strip meshes.
package terrain

import "github.com/Faultbox/fractal-terrain/pkg/math"

const (
	// FloatsPerVertex is the interleaved layout: position xyz, normal xyz.
	FloatsPerVertex = 6

	// VertexStride is the byte stride of one interleaved vertex.
	VertexStride = FloatsPerVertex * 4

	// NormalOffset is the byte offset of the normal within a vertex.
	NormalOffset = 3 * 4

	// IndexSize is the byte size of one index (uint32).
	IndexSize = 4

	DefaultHorizontalScale = 0.5
	DefaultHeightScale     = 0.5
)

// Mesh holds terrain geometry ready for GPU upload: one triangle strip per
// pair of adjacent heightfield rows.
type Mesh struct {
	Vertices []float32 // interleaved, FloatsPerVertex per vertex
	Indices  []uint32

	VertexCount      int
	StripsCount      int
	VerticesPerStrip int

	Bounds Bounds
}

// Bounds is the axis-aligned bounding box of the mesh positions.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// IsEmpty reports whether the mesh has no strips to draw.
func (m *Mesh) IsEmpty() bool {
	return m.StripsCount == 0
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) math.Vec3 {
	v := m.Vertices[i*FloatsPerVertex:]
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math.Vec3 {
	v := m.Vertices[i*FloatsPerVertex+3:]
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// Strip returns the indices of strip i.
func (m *Mesh) Strip(i int) []uint32 {
	start := i * m.VerticesPerStrip
	return m.Indices[start : start+m.VerticesPerStrip]
}

// StripByteOffset returns the offset of strip i in the index buffer, as
// passed to glDrawElements.
func (m *Mesh) StripByteOffset(i int) int {
	return i * m.VerticesPerStrip * IndexSize
}

// Triangles expands the strips into a plain triangle list, flipping every
// other triangle so all of them keep the strip's winding.
func (m *Mesh) Triangles() []uint32 {
	if m.IsEmpty() {
		return nil
	}

	out := make([]uint32, 0, m.StripsCount*(m.VerticesPerStrip-2)*3)
	for s := 0; s < m.StripsCount; s++ {
		strip := m.Strip(s)
		for k := 2; k < len(strip); k++ {
			a, b, c := strip[k-2], strip[k-1], strip[k]
			if k%2 == 1 {
				a, b = b, a
			}
			out = append(out, a, b, c)
		}
	}
	return out
}
