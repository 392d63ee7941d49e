package terrain

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fractal-terrain/internal/heightfield"
	"github.com/Faultbox/fractal-terrain/internal/logger"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// BuildMesh converts a heightfield into interleaved vertices with normals and
// an index buffer laid out as width-1 triangle strips of 2*width indices.
// Vertex (x, z) sits at (x*horizontalScale, height*heightScale, z*horizontalScale).
// A nil heightfield or one narrower than 2 yields an empty mesh.
func BuildMesh(hf *heightfield.HeightField, horizontalScale, heightScale float32) *Mesh {
	width := hf.Width()
	if width < 2 {
		return &Mesh{}
	}

	start := time.Now()
	count := width * width
	mesh := &Mesh{
		Vertices:         make([]float32, 0, count*FloatsPerVertex),
		VertexCount:      count,
		StripsCount:      width - 1,
		VerticesPerStrip: 2 * width,
		Bounds: Bounds{
			Min: math.Vec3{X: 1e30, Y: 1e30, Z: 1e30},
			Max: math.Vec3{X: -1e30, Y: -1e30, Z: -1e30},
		},
	}

	for z := 0; z < width; z++ {
		for x := 0; x < width; x++ {
			pos := math.Vec3{
				X: float32(x) * horizontalScale,
				Y: hf.At(x, z) * heightScale,
				Z: float32(z) * horizontalScale,
			}
			n := vertexNormal(hf, x, z, horizontalScale, heightScale)
			mesh.Vertices = append(mesh.Vertices, pos.X, pos.Y, pos.Z, n.X, n.Y, n.Z)
			updateBounds(&mesh.Bounds, pos)
		}
	}

	mesh.Indices = stripIndices(width)

	logger.Named("terrain").Debug("mesh built",
		zap.Int("width", width),
		zap.Int("vertices", mesh.VertexCount),
		zap.Int("indices", len(mesh.Indices)),
		zap.Int("strips", mesh.StripsCount),
		zap.Duration("took", time.Since(start)),
	)
	return mesh
}

// vertexNormal uses central differences. A missing neighbour at the border
// is replaced by the cell's own height, making border normals one-sided.
func vertexNormal(hf *heightfield.HeightField, x, z int, horizontalScale, heightScale float32) math.Vec3 {
	width := hf.Width()
	h := hf.At(x, z)

	left, right, down, up := h, h, h, h
	if x > 0 {
		left = hf.At(x-1, z)
	}
	if x < width-1 {
		right = hf.At(x+1, z)
	}
	if z > 0 {
		down = hf.At(x, z-1)
	}
	if z < width-1 {
		up = hf.At(x, z+1)
	}

	span := 2 * horizontalScale
	dx := math.Vec3{X: span, Y: heightScale * (right - left)}
	dz := math.Vec3{Y: heightScale * (up - down), Z: span}

	// cross(dz, dx) points up for a flat grid; the reverse order would light
	// the underside.
	return dz.Cross(dx).Normalize()
}

// stripIndices emits, for each row pair (i, i+1), the columns ascending with
// row i on even positions and row i+1 on odd positions.
func stripIndices(width int) []uint32 {
	indices := make([]uint32, 0, 2*width*(width-1))
	for i := 0; i < width-1; i++ {
		for j := 0; j < width; j++ {
			indices = append(indices,
				uint32(j+width*i),
				uint32(j+width*(i+1)),
			)
		}
	}
	return indices
}

func updateBounds(b *Bounds, p math.Vec3) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Min.Z = min(b.Min.Z, p.Z)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	b.Max.Z = max(b.Max.Z, p.Z)
}
