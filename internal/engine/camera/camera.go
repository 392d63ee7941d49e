// Package camera provides a free-flying perspective camera.
package camera

import (
	stdmath "math"

	"github.com/Faultbox/fractal-terrain/pkg/math"
)

// Limits for look and zoom.
const (
	MaxPitch = 89.0
	MinFOV   = 1.0
	MaxFOV   = 45.0
)

// FlyCamera moves freely in world space. Yaw and pitch are in degrees;
// yaw -90 looks down -Z.
type FlyCamera struct {
	Position    math.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	Speed       float32
	Sensitivity float32
	Near        float32
	Far         float32

	front math.Vec3
	right math.Vec3
	up    math.Vec3
}

// NewFlyCamera creates a camera at position looking along yaw/pitch.
func NewFlyCamera(position math.Vec3, yaw, pitch float32) *FlyCamera {
	c := &FlyCamera{
		Position:    position,
		Yaw:         yaw,
		Pitch:       math.Clamp(pitch, -MaxPitch, MaxPitch),
		FOV:         MaxFOV,
		Speed:       100,
		Sensitivity: 0.1,
		Near:        0.1,
		Far:         10000,
	}
	c.updateVectors()
	return c
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() math.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *FlyCamera) Right() math.Vec3 { return c.right }

// Up returns the unit camera-up vector.
func (c *FlyCamera) Up() math.Vec3 { return c.up }

// Move translates the camera in camera space: dir.X along right, dir.Y
// along world up and dir.Z along front. speedScale multiplies Speed.
func (c *FlyCamera) Move(dir math.Vec3, speedScale, dt float32) {
	step := c.Speed * speedScale * dt
	delta := c.right.Scale(dir.X).
		Add(math.Up.Scale(dir.Y)).
		Add(c.front.Scale(dir.Z))
	c.Position = c.Position.Add(delta.Scale(step))
}

// Look applies a mouse delta in pixels. Positive dy looks down.
func (c *FlyCamera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = math.Clamp(c.Pitch-dy*c.Sensitivity, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// Zoom narrows the field of view for positive scroll.
func (c *FlyCamera) Zoom(scroll float32) {
	c.FOV = math.Clamp(c.FOV-scroll, MinFOV, MaxFOV)
}

// ViewMatrix returns the world-to-camera transform.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.front), c.up)
}

// ProjectionMatrix returns the perspective projection for aspect.
func (c *FlyCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

func (c *FlyCamera) updateVectors() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))
	c.front = math.Vec3{
		X: float32(stdmath.Cos(yaw) * stdmath.Cos(pitch)),
		Y: float32(stdmath.Sin(pitch)),
		Z: float32(stdmath.Sin(yaw) * stdmath.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(math.Up).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
