// Package physics implements the verlet ball simulation behind the 2D demo.
package physics

import "github.com/Faultbox/fractal-terrain/pkg/math"

// Ball is a circle integrated with position verlet: velocity is implied by
// Position - Previous.
type Ball struct {
	Position     math.Vec2
	Previous     math.Vec2
	Acceleration math.Vec2
	Radius       float32
	Color        [3]float32
}

// NewBall places a ball at rest, or moving by velocity*dt per step if
// velocity is non-zero.
func NewBall(pos, velocity math.Vec2, radius float32, dt float32) Ball {
	return Ball{
		Position: pos,
		Previous: pos.Sub(velocity.Scale(dt)),
		Radius:   radius,
		Color:    [3]float32{1, 1, 1},
	}
}

// Velocity returns the implied per-second velocity for a step of dt.
func (b *Ball) Velocity(dt float32) math.Vec2 {
	if dt == 0 {
		return math.Vec2{}
	}
	return b.Position.Sub(b.Previous).Scale(1 / dt)
}

// World is the authoritative simulation state. It is not safe for
// concurrent use; Simulator owns one on its goroutine.
type World struct {
	Balls []Ball

	// Min and Max bound the box the balls live in.
	Min, Max math.Vec2

	Gravity  math.Vec2
	SubSteps int
}

// NewWorld returns an empty world spanning [0,width] x [0,height] with
// gravity pulling toward -Y.
func NewWorld(width, height, gravity float32, subSteps int) *World {
	if subSteps < 1 {
		subSteps = 1
	}
	return &World{
		Max:      math.Vec2{X: width, Y: height},
		Gravity:  math.Vec2{Y: -gravity},
		SubSteps: subSteps,
	}
}

// Add appends a ball.
func (w *World) Add(b Ball) {
	w.Balls = append(w.Balls, b)
}

// Step advances the world by dt split across SubSteps passes of
// accelerate, integrate, collide and clamp.
func (w *World) Step(dt float32) {
	sub := dt / float32(w.SubSteps)
	for i := 0; i < w.SubSteps; i++ {
		w.accelerate()
		w.integrate(sub)
		w.collide()
		w.clamp()
	}
}

func (w *World) accelerate() {
	for i := range w.Balls {
		w.Balls[i].Acceleration = w.Balls[i].Acceleration.Add(w.Gravity)
	}
}

// integrate: x' = 2x - x_prev + a*dt².
func (w *World) integrate(dt float32) {
	for i := range w.Balls {
		b := &w.Balls[i]
		displacement := b.Position.Sub(b.Previous)
		b.Previous = b.Position
		b.Position = b.Position.Add(displacement).Add(b.Acceleration.Scale(dt * dt))
		b.Acceleration = math.Vec2{}
	}
}

// collide separates every overlapping pair along the centre line, each ball
// taking half of the overlap.
func (w *World) collide() {
	for i := range w.Balls {
		a := &w.Balls[i]
		for j := i + 1; j < len(w.Balls); j++ {
			b := &w.Balls[j]

			axis := a.Position.Sub(b.Position)
			minDist := a.Radius + b.Radius
			distSq := axis.LengthSquared()
			if distSq >= minDist*minDist {
				continue
			}

			dist := axis.Length()
			normal := math.Vec2{X: 1}
			if dist > 0 {
				normal = axis.Scale(1 / dist)
			}
			push := normal.Scale((minDist - dist) / 2)
			a.Position = a.Position.Add(push)
			b.Position = b.Position.Sub(push)
		}
	}
}

// clamp keeps every ball fully inside the box.
func (w *World) clamp() {
	for i := range w.Balls {
		b := &w.Balls[i]
		b.Position.X = math.Clamp(b.Position.X, w.Min.X+b.Radius, w.Max.X-b.Radius)
		b.Position.Y = math.Clamp(b.Position.Y, w.Min.Y+b.Radius, w.Max.Y-b.Radius)
	}
}
