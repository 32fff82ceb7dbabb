// Package frame runs the per-frame render choreography: matrices, lighting,
// an opaque planet pass and a blended atmosphere pass.
//
// It talks to the GPU only through Device, Program and Mesh so the ordering
// of state changes and uniform uploads can be checked without a context.
package frame

import (
	"github.com/Faultbox/planet-atmosphere/internal/engine/camera"
	"github.com/Faultbox/planet-atmosphere/internal/engine/lighting"
	"github.com/Faultbox/planet-atmosphere/pkg/math"
)

// Projection parameters.
const (
	FieldOfView float32 = 45.0 // degrees
	NearPlane   float32 = 0.1
	FarPlane    float32 = 300.0
)

// SunAngularSpeed is the light's orbital speed in radians per second.
const SunAngularSpeed float32 = 0.2

// Device is the pipeline state the frame toggles between passes.
type Device interface {
	Clear()
	SetWireframe(enabled bool)
	// BeginOpaque: depth write on, depth func LESS, blending off.
	BeginOpaque()
	// BeginTransparent: depth write off, depth func LEQUAL, alpha blending on.
	BeginTransparent()
	// RestoreState undoes BeginTransparent.
	RestoreState()
}

// Program is a bound shader program accepting uniforms by name.
type Program interface {
	Use()
	SetMat4(name string, m math.Mat4)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v math.Vec3)
}

// Mesh is an uploaded indexed triangle mesh.
type Mesh interface {
	Draw()
}

// Texture is a GPU texture that can be bound to a sampler unit.
type Texture interface {
	Bind(unit uint32)
}

// SurfaceTextureUnit is the sampler unit the planet surface texture uses.
const SurfaceTextureUnit = 0

// Scene holds the long-lived GPU objects and tuning for both passes.
type Scene struct {
	PlanetProgram     Program
	AtmosphereProgram Program
	PlanetMesh        Mesh
	AtmosphereMesh    Mesh

	Atmosphere   lighting.Atmosphere
	SurfaceColor math.Vec3

	// SurfaceTexture, when set, modulates SurfaceColor on the planet.
	SurfaceTexture Texture

	// DrawAtmosphere gates the shell draw call; uniforms are still pushed.
	DrawAtmosphere bool
}

// Viewport is the current framebuffer size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Aspect returns width/height, or 1 for a collapsed viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// State is what a frame derived, returned for callers that want to inspect it.
type State struct {
	Projection math.Mat4
	View       math.Mat4
	Model      math.Mat4
	Sun        lighting.Sun
}

// Render draws one frame. elapsed is wall-clock seconds since start. The
// camera is re-orthogonalized as a side effect of building the view matrix.
func Render(dev Device, scene *Scene, cam *camera.Camera, vp Viewport, elapsed float64, wireframe bool) State {
	dev.SetWireframe(wireframe)
	dev.Clear()

	st := State{
		Projection: math.Perspective(math.Radians(FieldOfView), vp.Aspect(), NearPlane, FarPlane),
		View:       cam.ViewMatrix(),
		Model:      math.Identity(),
		Sun:        lighting.SunOrbit(elapsed, scene.Atmosphere.AtmosphereRadius, SunAngularSpeed),
	}

	dev.BeginOpaque()
	drawPlanet(scene, cam, &st)

	dev.BeginTransparent()
	drawAtmosphere(scene, cam, &st)

	dev.RestoreState()
	return st
}

func setTransforms(p Program, st *State) {
	p.SetMat4("model", st.Model)
	p.SetMat4("view", st.View)
	p.SetMat4("projection", st.Projection)
}

func drawPlanet(scene *Scene, cam *camera.Camera, st *State) {
	p := scene.PlanetProgram
	p.Use()
	setTransforms(p, st)
	p.SetVec3("lightPos", st.Sun.Position)
	p.SetVec3("viewPos", cam.Position)
	p.SetVec3("surfaceColor", scene.SurfaceColor)
	if scene.SurfaceTexture != nil {
		scene.SurfaceTexture.Bind(SurfaceTextureUnit)
		p.SetInt("surfaceTexture", SurfaceTextureUnit)
		p.SetInt("useSurfaceTexture", 1)
	} else {
		p.SetInt("useSurfaceTexture", 0)
	}
	scene.PlanetMesh.Draw()
}

func drawAtmosphere(scene *Scene, cam *camera.Camera, st *State) {
	p := scene.AtmosphereProgram
	atm := scene.Atmosphere
	p.Use()
	setTransforms(p, st)

	p.SetVec3("viewPos", cam.Position)
	p.SetVec3("sunPos", st.Sun.Direction)
	p.SetInt("viewSamples", atm.ViewSamples)
	p.SetInt("lightSamples", atm.LightSamples)
	p.SetFloat("sunIntensity", atm.SunIntensity)
	p.SetFloat("planetRadius", atm.PlanetRadius)
	p.SetFloat("atmosphereRadius", atm.AtmosphereRadius)
	p.SetVec3("rCoeff", atm.RayleighScattering)
	p.SetFloat("mCoeff", atm.MieScattering)
	p.SetFloat("rHeight", atm.RayleighHeight)
	p.SetFloat("mHeight", atm.MieHeight)
	p.SetFloat("g", atm.MieAnisotropy)
	p.SetFloat("toneMappingFactor", atm.ToneMapping)
	p.SetVec3("rayleighCoefficient", atm.RayleighCoefficient)

	if scene.DrawAtmosphere {
		scene.AtmosphereMesh.Draw()
	}
}
