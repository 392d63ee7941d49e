// Package primitive builds simple indexed meshes used by the scene.
package primitive

import (
	stdmath "math"
)

// Sphere is a unit UV sphere with interleaved position and normal. For a
// unit sphere centred at the origin the normal equals the position.
type Sphere struct {
	Vertices []float32
	Indices  []uint32
	Rings    int
	Segments int
}

// NewSphere tessellates a unit sphere into rings × segments quads, two
// triangles each. Rings and segments below 3 are raised to 3.
func NewSphere(rings, segments int) *Sphere {
	rings = max(rings, 3)
	segments = max(segments, 3)

	s := &Sphere{
		Vertices: make([]float32, 0, (rings+1)*(segments+1)*6),
		Indices:  make([]uint32, 0, rings*segments*6),
		Rings:    rings,
		Segments: segments,
	}

	for r := 0; r <= rings; r++ {
		phi := stdmath.Pi * float64(r) / float64(rings)
		y := float32(stdmath.Cos(phi))
		ringRadius := stdmath.Sin(phi)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * stdmath.Pi * float64(seg) / float64(segments)
			x := float32(ringRadius * stdmath.Cos(theta))
			z := float32(ringRadius * stdmath.Sin(theta))
			s.Vertices = append(s.Vertices, x, y, z, x, y, z)
		}
	}

	stride := uint32(segments + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for seg := uint32(0); seg < uint32(segments); seg++ {
			a := r*stride + seg
			b := a + stride
			s.Indices = append(s.Indices, a, b, a+1, a+1, b, b+1)
		}
	}

	return s
}

// VertexCount returns the number of vertices.
func (s *Sphere) VertexCount() int {
	return len(s.Vertices) / 6
}
