package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/fractal-terrain/internal/terrain"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// TerrainRenderer owns the GPU buffers of one terrain mesh and draws it
// strip by strip.
type TerrainRenderer struct {
	vao uint32
	vbo uint32
	ebo uint32

	stripOffsets     []uintptr
	verticesPerStrip int32
	model            math.Mat4

	Color math.Vec3
}

// NewTerrainRenderer creates an empty terrain renderer.
func NewTerrainRenderer() *TerrainRenderer {
	return &TerrainRenderer{
		model: math.Identity(),
		Color: math.Vec3{X: 0.45, Y: 0.55, Z: 0.3},
	}
}

// Upload replaces the GPU copy of the mesh. horizontalScale is needed to
// centre the terrain on the origin.
func (tr *TerrainRenderer) Upload(mesh *terrain.Mesh, horizontalScale float32) {
	tr.release()
	if mesh.IsEmpty() {
		return
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*terrain.IndexSize, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, terrain.VertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, terrain.VertexStride, terrain.NormalOffset)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	tr.stripOffsets = make([]uintptr, mesh.StripsCount)
	for i := range tr.stripOffsets {
		tr.stripOffsets[i] = uintptr(mesh.StripByteOffset(i))
	}
	tr.verticesPerStrip = int32(mesh.VerticesPerStrip)
	tr.model = TerrainModel(mesh, horizontalScale)
}

// TerrainModel translates the mesh so its centre sits on the origin.
func TerrainModel(mesh *terrain.Mesh, horizontalScale float32) math.Mat4 {
	offset := -horizontalScale * float32(mesh.StripsCount+1) / 2
	return math.Translate(math.Vec3{X: offset, Z: offset})
}

// Model returns the current model matrix.
func (tr *TerrainRenderer) Model() math.Mat4 {
	return tr.model
}

// Render issues one TRIANGLE_STRIP draw per strip. The lit program must
// already be bound with view, projection and light set.
func (tr *TerrainRenderer) Render(s *Scene) {
	if tr.vao == 0 {
		return
	}
	p := s.litProgram
	p.SetMat4("uModel", tr.model)
	p.SetVec3("uColor", tr.Color)
	p.SetFloat("uShininess", 8)
	p.SetFloat("uAlpha", 1)

	gl.BindVertexArray(tr.vao)
	for _, offset := range tr.stripOffsets {
		gl.DrawElementsWithOffset(gl.TRIANGLE_STRIP, tr.verticesPerStrip, gl.UNSIGNED_INT, offset)
	}
	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) release() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		gl.DeleteBuffers(1, &tr.vbo)
		gl.DeleteBuffers(1, &tr.ebo)
		tr.vao, tr.vbo, tr.ebo = 0, 0, 0
	}
	tr.stripOffsets = nil
}

// Destroy releases GPU resources.
func (tr *TerrainRenderer) Destroy() {
	tr.release()
}
