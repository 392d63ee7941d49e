package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/fractal-terrain/internal/engine/primitive"
	"github.com/Faultbox/fractal-terrain/internal/engine/scene/shaders"
	"github.com/Faultbox/fractal-terrain/internal/engine/shader"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// SunScale is the rendered sun radius in world units.
const SunScale = 100

// SunRenderer draws the sun as an unlit sphere.
type SunRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
	Color      math.Vec3
}

// NewSunRenderer compiles the sun program and uploads a sphere.
func NewSunRenderer() (*SunRenderer, error) {
	program, err := shader.NewProgram("sun", shaders.SunVertexShader, shaders.SunFragmentShader)
	if err != nil {
		return nil, err
	}

	sphere := primitive.NewSphere(16, 32)
	sr := &SunRenderer{
		program:    program,
		indexCount: int32(len(sphere.Indices)),
		Color:      math.Vec3{X: 1, Y: 0.9, Z: 0.6},
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(sphere.Vertices)*4, unsafe.Pointer(&sphere.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &sr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, sr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(sphere.Indices)*4, unsafe.Pointer(&sphere.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return sr, nil
}

// Render draws the sun at position.
func (sr *SunRenderer) Render(viewProj math.Mat4, position math.Vec3) {
	model := math.Translate(position).Mul(math.Scale(math.Vec3{X: SunScale, Y: SunScale, Z: SunScale}))

	sr.program.Use()
	sr.program.SetMat4("uMVP", viewProj.Mul(model))
	sr.program.SetVec3("uColor", sr.Color)

	gl.BindVertexArray(sr.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, sr.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (sr *SunRenderer) Destroy() {
	gl.DeleteVertexArrays(1, &sr.vao)
	gl.DeleteBuffers(1, &sr.vbo)
	gl.DeleteBuffers(1, &sr.ebo)
	sr.program.Delete()
}
