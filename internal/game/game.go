// Package game owns the application state and the outer frame loop.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/planet-atmosphere/internal/config"
	"github.com/Faultbox/planet-atmosphere/internal/engine/camera"
	"github.com/Faultbox/planet-atmosphere/internal/engine/debug"
	"github.com/Faultbox/planet-atmosphere/internal/engine/input"
	"github.com/Faultbox/planet-atmosphere/internal/engine/lighting"
	"github.com/Faultbox/planet-atmosphere/internal/engine/renderer"
	"github.com/Faultbox/planet-atmosphere/internal/engine/shader"
	"github.com/Faultbox/planet-atmosphere/internal/engine/shader/shaders"
	"github.com/Faultbox/planet-atmosphere/internal/engine/sphere"
	"github.com/Faultbox/planet-atmosphere/internal/engine/window"
	"github.com/Faultbox/planet-atmosphere/internal/game/frame"
	"github.com/Faultbox/planet-atmosphere/internal/logger"
	"github.com/Faultbox/planet-atmosphere/pkg/math"
)

// Fixed tuning.
const (
	Title            = "Planet Atmosphere"
	WindowWidth      = 1200
	WindowHeight     = 1000
	MouseSensitivity = 0.1
	CameraSpeed      = 0.05
	PlanetScale      = 16.0
	MeshStacks       = 45
	MeshSlices       = 45
)

// Startup failures with dedicated exit codes.
var (
	ErrWindow = errors.New("window creation failed")
	ErrLoader = errors.New("graphics loader init failed")
)

var (
	clearColor   = math.Vec4{0, 1, 0, 1}
	surfaceColor = math.Vec3{X: 0.1, Y: 0.3, Z: 0.4}
)

var moveKeys = []struct {
	key sdl.Scancode
	dir camera.Direction
}{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.Left},
	{sdl.SCANCODE_D, camera.Right},
}

// App is the application state threaded through input handling and rendering.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera *camera.Camera
	mouse  *camera.MouseTracker

	planetProgram     *shader.Program
	atmosphereProgram *shader.Program
	planetMesh        *renderer.Mesh
	atmosphereMesh    *renderer.Mesh
	surfaceTexture    *renderer.Texture
	skybox            *renderer.Texture

	scene       *frame.Scene
	sun         lighting.Sun
	viewport    frame.Viewport
	wireframe   bool
	screenshots *debug.ScreenshotCapture

	running bool
	start   time.Time
}

// New creates the window, GL context and every GPU resource. On failure
// anything already created is released.
func New(cfg *config.Config) (app *App, err error) {
	a := &App{
		cfg:         cfg,
		log:         logger.Named("game"),
		input:       input.New(),
		camera:      camera.New(math.Vec3{X: 0, Y: 0, Z: PlanetScale * 1.2}, -90, 0, MouseSensitivity, CameraSpeed),
		mouse:       camera.NewMouseTracker(),
		wireframe:   cfg.Graphics.Wireframe,
		screenshots: debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, "planet"),
	}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.window, err = window.New(window.Config{
		Title:        Title,
		Width:        WindowWidth,
		Height:       WindowHeight,
		VSync:        cfg.Graphics.VSync,
		Samples:      cfg.Graphics.Multisample,
		CaptureMouse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindow, err)
	}

	w, h := a.window.DrawableSize()
	a.viewport = frame.Viewport{Width: w, Height: h}

	a.renderer, err = renderer.New(renderer.Config{
		Width:       w,
		Height:      h,
		ClearColor:  clearColor,
		Multisample: cfg.Graphics.Multisample > 0,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoader, err)
	}

	if err := a.loadPrograms(); err != nil {
		return nil, err
	}
	if err := a.loadMeshes(); err != nil {
		return nil, err
	}
	a.loadSurfaceTexture()
	a.loadSkybox()

	a.sun = lighting.InitialSun(PlanetScale)
	a.scene = &frame.Scene{
		PlanetProgram:     a.planetProgram,
		AtmosphereProgram: a.atmosphereProgram,
		PlanetMesh:        a.planetMesh,
		AtmosphereMesh:    a.atmosphereMesh,
		Atmosphere:        lighting.DefaultAtmosphere(PlanetScale),
		SurfaceColor:      surfaceColor,
		DrawAtmosphere:    cfg.Graphics.Atmosphere,
	}
	if a.surfaceTexture != nil {
		a.scene.SurfaceTexture = a.surfaceTexture
	}

	a.log.Info("scene ready",
		zap.Float32("planet_radius", a.scene.Atmosphere.PlanetRadius),
		zap.Float32("atmosphere_radius", a.scene.Atmosphere.AtmosphereRadius),
		zap.Any("light_pos", a.sun.Position),
		zap.Bool("atmosphere", a.scene.DrawAtmosphere),
	)
	return a, nil
}

func (a *App) loadPrograms() error {
	planetVS, planetFS := shaders.PlanetVertexShader, shaders.PlanetFragmentShader
	atmVS, atmFS := shaders.AtmosphereVertexShader, shaders.AtmosphereFragmentShader

	if dir := a.cfg.Assets.ShaderDir; dir != "" {
		var err error
		if planetVS, planetFS, err = shader.ReadSources(dir, shaders.PlanetVertexFile, shaders.PlanetFragmentFile); err != nil {
			return fmt.Errorf("planet shader: %w", err)
		}
		if atmVS, atmFS, err = shader.ReadSources(dir, shaders.AtmosphereVertexFile, shaders.AtmosphereFragmentFile); err != nil {
			return fmt.Errorf("atmosphere shader: %w", err)
		}
		a.log.Info("loading shaders from directory", zap.String("dir", dir))
	}

	var err error
	if a.planetProgram, err = shader.NewProgram("planet", planetVS, planetFS, logger.Named("shader")); err != nil {
		return fmt.Errorf("planet shader: %w", err)
	}
	if a.atmosphereProgram, err = shader.NewProgram("atmosphere", atmVS, atmFS, logger.Named("shader")); err != nil {
		return fmt.Errorf("atmosphere shader: %w", err)
	}
	return nil
}

func (a *App) loadMeshes() error {
	atmosphereRadius := float32(PlanetScale) * lighting.AtmosphereScale

	planet, err := sphere.Generate(PlanetScale, MeshStacks, MeshSlices)
	if err != nil {
		return fmt.Errorf("planet mesh: %w", err)
	}
	shell, err := sphere.Generate(atmosphereRadius, MeshStacks, MeshSlices)
	if err != nil {
		return fmt.Errorf("atmosphere mesh: %w", err)
	}

	if a.planetMesh, err = renderer.UploadMesh(planet); err != nil {
		return fmt.Errorf("planet mesh: %w", err)
	}
	if a.atmosphereMesh, err = renderer.UploadMesh(shell); err != nil {
		return fmt.Errorf("atmosphere mesh: %w", err)
	}
	return nil
}

// loadSurfaceTexture uploads the optional planet texture. Without it the
// planet is shaded with the flat surface color.
func (a *App) loadSurfaceTexture() {
	path := a.cfg.Assets.SurfaceTexture
	if path == "" {
		return
	}
	tex, err := renderer.LoadTexture2D(path)
	if err != nil {
		a.log.Warn("surface texture not loaded", zap.String("path", path), zap.Error(err))
		return
	}
	a.surfaceTexture = tex
	a.log.Info("surface texture loaded", zap.String("path", path), zap.Uint32("texture", tex.ID))
}

// loadSkybox uploads the optional cubemap. It is not drawn, and a failure
// only costs the skybox.
func (a *App) loadSkybox() {
	paths, ok := a.cfg.SkyboxPaths()
	if !ok {
		return
	}
	tex, err := renderer.LoadCubemap(paths)
	if err != nil {
		a.log.Warn("skybox not loaded", zap.Error(err))
		return
	}
	a.skybox = tex
	a.log.Info("skybox loaded", zap.Uint32("texture", tex.ID))
}

// Run drives frames until the window is asked to close.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()

	lastTime := a.start
	frameCount := 0
	fpsTimer := a.start

	a.log.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Input; orientation is applied before movement.
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		a.updateCamera()

		// 2-7. Matrices, lighting and both passes.
		st := frame.Render(a.renderer, a.scene, a.camera, a.viewport, now.Sub(a.start).Seconds(), a.wireframe)
		a.sun = st.Sun

		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.captureScreenshot()
		}

		// 8. Present.
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := frame.Stats{
				FPS:       frameCount,
				FrameTime: time.Duration(dt * float64(time.Second)),
				Triangles: a.triangleCount(),
			}
			a.window.SetTitle(stats.Title(Title))
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Int("triangles", stats.Triangles),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// triangleCount returns the triangles submitted per frame.
func (a *App) triangleCount() int {
	n := int(a.planetMesh.IndexCount())
	if a.scene.DrawAtmosphere {
		n += int(a.atmosphereMesh.IndexCount())
	}
	return n / 3
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := a.window.DrawableSize()
			a.viewport = frame.Viewport{Width: w, Height: h}
			a.renderer.Resize(w, h)
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_TAB:
				a.wireframe = !a.wireframe
			}
		}
	}
}

func (a *App) updateCamera() {
	if x, y, moved := a.input.MousePosition(); moved {
		dx, dy := a.mouse.Sample(x, y)
		a.camera.Rotate(dx, dy)
	}
	for _, mk := range moveKeys {
		if a.input.IsKeyHeld(mk.key) {
			a.camera.Move(mk.dir)
		}
	}
}

func (a *App) captureScreenshot() {
	path, err := a.screenshots.CaptureFromImage(a.renderer.ReadPixels())
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources, then the window.
func (a *App) Close() {
	a.log.Info("closing")

	if a.skybox != nil {
		a.skybox.Delete()
	}
	if a.surfaceTexture != nil {
		a.surfaceTexture.Delete()
	}
	if a.planetMesh != nil {
		a.planetMesh.Delete()
	}
	if a.atmosphereMesh != nil {
		a.atmosphereMesh.Delete()
	}
	if a.planetProgram != nil {
		a.planetProgram.Delete()
	}
	if a.atmosphereProgram != nil {
		a.atmosphereProgram.Delete()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
