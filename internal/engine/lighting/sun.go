// Package lighting derives the per-frame light and atmosphere parameters fed
// to the planet and atmosphere shaders.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/planet-atmosphere/pkg/math"
)

// Sun is the light state for one frame.
type Sun struct {
	Position  math.Vec3 // World-space light position
	Direction math.Vec3 // Unit vector from the planet center towards the light
}

// InitialSun returns the light state before the first frame: the light sits
// high above the planet and shines down and to the side.
func InitialSun(planetRadius float32) Sun {
	return Sun{
		Position:  math.Vec3{X: 0, Y: planetRadius * 4, Z: 0},
		Direction: math.Vec3{X: 0.5, Y: -1, Z: 0}.Normalize(),
	}
}

// SunOrbit places the light on a horizontal circle of the given radius
// around the planet center. elapsed is wall-clock seconds, angularSpeed is
// in radians per second.
func SunOrbit(elapsed float64, radius, angularSpeed float32) Sun {
	angle := elapsed * float64(angularSpeed)
	pos := math.Vec3{
		X: float32(gomath.Sin(angle)) * radius,
		Y: 0,
		Z: float32(gomath.Cos(angle)) * radius,
	}
	return Sun{
		Position:  pos,
		Direction: pos.Normalize(),
	}
}
