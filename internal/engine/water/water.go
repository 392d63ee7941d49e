// Package water provides the animated sea plane.
package water

import (
	stdmath "math"

	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// DefaultHalfExtent covers the default terrain with room to spare.
const DefaultHalfExtent = 2000.0

// Plane holds sea geometry ready for GPU upload: a quad at y=0 with
// interleaved position and normal, drawn as a TRIANGLE_FAN. The current
// level is applied through the model matrix.
type Plane struct {
	Vertices   []float32
	HalfExtent float32
}

// BuildPlane creates a square sea quad of the given half extent.
func BuildPlane(halfExtent float32) *Plane {
	e := halfExtent
	return &Plane{
		Vertices: []float32{
			-e, 0, -e, 0, 1, 0,
			e, 0, -e, 0, 1, 0,
			e, 0, e, 0, 1, 0,
			-e, 0, e, 0, 1, 0,
		},
		HalfExtent: halfExtent,
	}
}

// Tide moves the sea level as amplitude*sin(wt) + offset.
type Tide struct {
	Amplitude    float32
	Offset       float32
	AngularSpeed float32

	elapsed float32
}

// Update advances the tide by dt seconds.
func (t *Tide) Update(dt float32) {
	t.elapsed += dt
}

// Level returns the current sea height.
func (t *Tide) Level() float32 {
	return t.Amplitude*float32(stdmath.Sin(float64(t.AngularSpeed*t.elapsed))) + t.Offset
}

// Model returns the sea's model matrix at the current level.
func (t *Tide) Model() math.Mat4 {
	return math.Translate(math.Vec3{Y: t.Level()})
}
