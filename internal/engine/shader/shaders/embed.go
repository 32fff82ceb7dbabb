// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PlanetVertexShader transforms the planet sphere and passes world-space
// position and normal to the fragment stage.
//
//go:embed planet.vert
var PlanetVertexShader string

// PlanetFragmentShader shades the planet surface with Phong lighting.
//
//go:embed planet.frag
var PlanetFragmentShader string

// AtmosphereVertexShader transforms the atmosphere shell.
//
//go:embed atmosphere.vert
var AtmosphereVertexShader string

// AtmosphereFragmentShader integrates Rayleigh and Mie in-scattering along
// the view ray through the shell.
//
//go:embed atmosphere.frag
var AtmosphereFragmentShader string

// File names used when sources are loaded from a directory instead.
const (
	PlanetVertexFile       = "planet.vert"
	PlanetFragmentFile     = "planet.frag"
	AtmosphereVertexFile   = "atmosphere.vert"
	AtmosphereFragmentFile = "atmosphere.frag"
)
