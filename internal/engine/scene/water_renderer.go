package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/fractal-terrain/internal/engine/water"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// SeaRenderer draws the translucent sea plane at the tide level.
type SeaRenderer struct {
	vao uint32
	vbo uint32

	Color math.Vec3
	Alpha float32
}

// NewSeaRenderer uploads plane once.
func NewSeaRenderer(plane *water.Plane) *SeaRenderer {
	sr := &SeaRenderer{
		Color: math.Vec3{X: 0.1, Y: 0.3, Z: 0.6},
		Alpha: 0.7,
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(plane.Vertices)*4, unsafe.Pointer(&plane.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return sr
}

// Render draws the sea with tide's model matrix using the lit program.
func (sr *SeaRenderer) Render(s *Scene, tide *water.Tide) {
	p := s.litProgram
	p.SetMat4("uModel", tide.Model())
	p.SetVec3("uColor", sr.Color)
	p.SetFloat("uShininess", 64)
	p.SetFloat("uAlpha", sr.Alpha)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// Destroy releases GPU resources.
func (sr *SeaRenderer) Destroy() {
	gl.DeleteVertexArrays(1, &sr.vao)
	gl.DeleteBuffers(1, &sr.vbo)
}
