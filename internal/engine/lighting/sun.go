// Package lighting animates the sun and derives the point-light terms the
// terrain shader consumes.
package lighting

import (
	stdmath "math"

	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Attenuation terms of the sun's point light. The tiny linear and quadratic
// factors keep the terrain lit across the whole 1024-unit orbit.
const (
	AttenuationConstant  = 0.8
	AttenuationLinear    = 0.0000014
	AttenuationQuadratic = 0.000001

	// strengthDivisor maps sun height to light strength.
	strengthDivisor = 500
)

// PointLight holds the uniform values for one point light.
type PointLight struct {
	Position  math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Sun orbits in the XY plane: x = R cos(wt), y = H sin(wt).
type Sun struct {
	OrbitRadius  float32
	OrbitHeight  float32
	AngularSpeed float32

	elapsed  float32
	position math.Vec3
}

// NewSun returns a sun at the start of its orbit.
func NewSun(radius, height, angularSpeed float32) *Sun {
	s := &Sun{OrbitRadius: radius, OrbitHeight: height, AngularSpeed: angularSpeed}
	s.Update(0)
	return s
}

// Update advances the orbit by dt seconds.
func (s *Sun) Update(dt float32) {
	s.elapsed += dt
	angle := float64(s.AngularSpeed * s.elapsed)
	s.position = math.Vec3{
		X: s.OrbitRadius * float32(stdmath.Cos(angle)),
		Y: s.OrbitHeight * float32(stdmath.Sin(angle)),
	}
}

// Position returns the current sun position.
func (s *Sun) Position() math.Vec3 {
	return s.position
}

// Strength is height/500, zero once the sun is below the horizon.
func (s *Sun) Strength() float32 {
	return max(s.position.Y/strengthDivisor, 0)
}

// Light returns the point light for the current position. Ambient never
// drops below 0.3 so night-time terrain stays visible.
func (s *Sun) Light() PointLight {
	k := s.Strength()
	return PointLight{
		Position:  s.position,
		Ambient:   splat(0.9*k + 0.3),
		Diffuse:   splat(0.9 * k),
		Specular:  splat(0.5 * k),
		Constant:  AttenuationConstant,
		Linear:    AttenuationLinear,
		Quadratic: AttenuationQuadratic,
	}
}

func splat(v float32) math.Vec3 {
	return math.Vec3{X: v, Y: v, Z: v}
}
