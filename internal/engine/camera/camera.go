// Package camera provides the free-flying yaw/pitch camera used to inspect
// the planet.
package camera

import (
	gomath "math"

	"github.com/Faultbox/planet-atmosphere/pkg/math"
)

// Pitch limits in degrees. Keeping pitch short of ±90 avoids the forward
// vector becoming parallel to the world up axis.
const (
	MinPitch float32 = -89.0
	MaxPitch float32 = 89.0
)

// Direction is a movement request for Move.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera is a first-person camera. Yaw and Pitch (degrees) are the only
// authoritative orientation state; Forward, Right, Up and Target are always
// recomputed from them.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3 // Position + Forward, kept for introspection only
	Up       math.Vec3
	WorldUp  math.Vec3
	Forward  math.Vec3
	Right    math.Vec3

	Pitch float32 // Degrees, clamped to [MinPitch, MaxPitch]
	Yaw   float32 // Degrees, unrestricted

	Sensitivity float32 // Degrees per pixel of mouse movement
	Speed       float32 // World units per Move call
}

// New creates a camera at position with the given orientation and derives
// its basis vectors.
func New(position math.Vec3, yaw, pitch, sensitivity, speed float32) *Camera {
	c := &Camera{
		Position:    position,
		WorldUp:     math.Vec3{X: 0, Y: 1, Z: 0},
		Up:          math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:         yaw,
		Pitch:       clampPitch(pitch),
		Sensitivity: sensitivity,
		Speed:       speed,
	}
	c.UpdateVectors()
	return c
}

// Rotate applies a mouse delta in pixels. dy is expected in "up is
// positive" convention (see MouseTracker).
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch = clampPitch(c.Pitch + dy*c.Sensitivity)
	c.UpdateVectors()
}

// UpdateVectors recomputes Forward, Right, Up and Target from Yaw and Pitch.
func (c *Camera) UpdateVectors() {
	pitch := float64(math.Radians(c.Pitch))
	yaw := float64(math.Radians(c.Yaw))

	front := math.Vec3{
		X: float32(gomath.Cos(pitch) * gomath.Cos(yaw)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Cos(pitch) * gomath.Sin(yaw)),
	}
	c.Forward = front.Normalize()
	c.Right = c.Forward.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
	c.Target = c.Position.Add(c.Forward)
}

// Move translates the camera by Speed along the current Forward (or the
// strafe axis derived from it). Orientation must already be up to date for
// this tick; Move never recomputes it.
func (c *Camera) Move(dir Direction) {
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Forward.Scale(c.Speed))
	case Backward:
		c.Position = c.Position.Sub(c.Forward.Scale(c.Speed))
	case Right:
		c.Position = c.Position.Sub(c.strafeAxis().Scale(c.Speed))
	case Left:
		c.Position = c.Position.Add(c.strafeAxis().Scale(c.Speed))
	}
	c.Target = c.Position.Add(c.Forward)
}

// ViewMatrix builds the view matrix from the current position and basis.
// The basis is re-orthogonalized as a side effect (Right and Up are
// replaced by the vectors the matrix was built from).
func (c *Camera) ViewMatrix() math.Mat4 {
	view, right, up := math.ViewFromBasis(c.Position, c.Forward, c.Up)
	c.Forward = c.Forward.Normalize()
	c.Right = right
	c.Up = up
	return view
}

func (c *Camera) strafeAxis() math.Vec3 {
	return c.Forward.Cross(c.Up).Normalize()
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < MinPitch {
		return MinPitch
	}
	return p
}
