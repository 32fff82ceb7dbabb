// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/planet-atmosphere/internal/logger"
	"github.com/Faultbox/planet-atmosphere/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	ClearColor  math.Vec4
	Multisample bool
}

// Renderer owns global GL pipeline state.
type Renderer struct {
	config    Config
	wireframe bool
}

// New loads GL function pointers and sets the default pipeline state.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Multisample {
		gl.Enable(gl.MULTISAMPLE)
	}
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close releases renderer-owned state.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Clear clears color and depth.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetWireframe switches between line and fill polygon modes.
func (r *Renderer) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	if enabled != r.wireframe {
		logger.Debug("polygon mode changed", zap.Bool("wireframe", enabled))
		r.wireframe = enabled
	}
}

// BeginOpaque sets state for depth-writing geometry.
func (r *Renderer) BeginOpaque() {
	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.BLEND)
}

// BeginTransparent sets state for blended geometry drawn over opaque
// geometry: depth is tested but not written.
func (r *Renderer) BeginTransparent() {
	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// RestoreState returns to the default opaque state.
func (r *Renderer) RestoreState() {
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.DepthFunc(gl.LESS)
}

// ReadPixels reads the default framebuffer into a bottom-up RGBA buffer.
func (r *Renderer) ReadPixels() *image.RGBA {
	w, h := r.config.Width, r.config.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	return img
}
