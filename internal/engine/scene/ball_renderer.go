package scene

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/fractal-terrain/internal/engine/scene/shaders"
	"github.com/Faultbox/fractal-terrain/internal/engine/shader"
	"github.com/Faultbox/fractal-terrain/internal/physics"
	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// ballFloats is the per-ball layout: x, y, radius, r, g, b.
const ballFloats = 6

// BallRenderer draws physics snapshots as round point sprites.
type BallRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32

	capacity int
	scratch  []float32
}

// NewBallRenderer allocates a streaming buffer for up to capacity balls.
func NewBallRenderer(capacity int) (*BallRenderer, error) {
	program, err := shader.NewProgram("balls", shaders.BallsVertexShader, shaders.BallsFragmentShader)
	if err != nil {
		return nil, err
	}

	br := &BallRenderer{
		program:  program,
		capacity: max(capacity, 1),
	}
	br.scratch = make([]float32, 0, br.capacity*ballFloats)

	gl.GenVertexArrays(1, &br.vao)
	gl.BindVertexArray(br.vao)

	gl.GenBuffers(1, &br.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, br.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, br.capacity*ballFloats*4, nil, gl.STREAM_DRAW)

	stride := int32(ballFloats * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return br, nil
}

// Render uploads and draws snap in a box of the given size.
func (br *BallRenderer) Render(snap *physics.Snapshot, width, height float32) {
	if snap == nil || len(snap.Balls) == 0 {
		return
	}
	br.scratch = packBalls(br.scratch[:0], snap.Balls, br.capacity)
	count := int32(len(br.scratch) / ballFloats)

	br.program.Use()
	br.program.SetMat4("uProjection", math.Ortho(0, width, 0, height, -1, 1))

	gl.BindVertexArray(br.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, br.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(br.scratch)*4, unsafe.Pointer(&br.scratch[0]))
	gl.DrawArrays(gl.POINTS, 0, count)
	gl.BindVertexArray(0)
}

// packBalls appends at most limit balls to dst in the vertex layout.
func packBalls(dst []float32, balls []physics.Ball, limit int) []float32 {
	for i := range balls {
		if i >= limit {
			break
		}
		b := &balls[i]
		dst = append(dst, b.Position.X, b.Position.Y, b.Radius, b.Color[0], b.Color[1], b.Color[2])
	}
	return dst
}

// Destroy releases GPU resources.
func (br *BallRenderer) Destroy() {
	gl.DeleteVertexArrays(1, &br.vao)
	gl.DeleteBuffers(1, &br.vbo)
	br.program.Delete()
}
