package frame

import (
	"fmt"
	gomath "math"
	"regexp"
	"strings"
	"testing"

	"github.com/Faultbox/planet-atmosphere/internal/engine/camera"
	"github.com/Faultbox/planet-atmosphere/internal/engine/lighting"
	"github.com/Faultbox/planet-atmosphere/internal/engine/shader/shaders"
	"github.com/Faultbox/planet-atmosphere/pkg/math"
)

// recorder collects GPU calls from every fake in call order.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

type fakeDevice struct{ rec *recorder }

func (d fakeDevice) Clear()                    { d.rec.add("clear") }
func (d fakeDevice) SetWireframe(enabled bool) { d.rec.add("wireframe %v", enabled) }
func (d fakeDevice) BeginOpaque()              { d.rec.add("opaque") }
func (d fakeDevice) BeginTransparent()         { d.rec.add("transparent") }
func (d fakeDevice) RestoreState()             { d.rec.add("restore") }

type fakeProgram struct {
	name   string
	rec    *recorder
	mats   map[string]math.Mat4
	ints   map[string]int32
	floats map[string]float32
	vecs   map[string]math.Vec3
}

func newFakeProgram(name string, rec *recorder) *fakeProgram {
	return &fakeProgram{
		name:   name,
		rec:    rec,
		mats:   map[string]math.Mat4{},
		ints:   map[string]int32{},
		floats: map[string]float32{},
		vecs:   map[string]math.Vec3{},
	}
}

func (p *fakeProgram) Use() { p.rec.add("use %s", p.name) }

func (p *fakeProgram) SetMat4(name string, m math.Mat4) {
	p.rec.add("%s.%s", p.name, name)
	p.mats[name] = m
}

func (p *fakeProgram) SetInt(name string, v int32) {
	p.rec.add("%s.%s", p.name, name)
	p.ints[name] = v
}

func (p *fakeProgram) SetFloat(name string, v float32) {
	p.rec.add("%s.%s", p.name, name)
	p.floats[name] = v
}

func (p *fakeProgram) SetVec3(name string, v math.Vec3) {
	p.rec.add("%s.%s", p.name, name)
	p.vecs[name] = v
}

func (p *fakeProgram) names() []string {
	var out []string
	for n := range p.mats {
		out = append(out, n)
	}
	for n := range p.ints {
		out = append(out, n)
	}
	for n := range p.floats {
		out = append(out, n)
	}
	for n := range p.vecs {
		out = append(out, n)
	}
	return out
}

type fakeMesh struct {
	name string
	rec  *recorder
}

func (m fakeMesh) Draw() { m.rec.add("draw %s", m.name) }

type fixture struct {
	rec        *recorder
	dev        fakeDevice
	planet     *fakeProgram
	atmosphere *fakeProgram
	scene      *Scene
	cam        *camera.Camera
}

func newFixture() *fixture {
	rec := &recorder{}
	f := &fixture{
		rec:        rec,
		dev:        fakeDevice{rec: rec},
		planet:     newFakeProgram("planet", rec),
		atmosphere: newFakeProgram("atmosphere", rec),
		cam:        camera.New(math.Vec3{Z: 19.2}, -90, 0, 0.1, 0.05),
	}
	f.scene = &Scene{
		PlanetProgram:     f.planet,
		AtmosphereProgram: f.atmosphere,
		PlanetMesh:        fakeMesh{name: "planet", rec: rec},
		AtmosphereMesh:    fakeMesh{name: "atmosphere", rec: rec},
		Atmosphere:        lighting.DefaultAtmosphere(16),
		SurfaceColor:      math.Vec3{X: 0.1, Y: 0.3, Z: 0.4},
		DrawAtmosphere:    true,
	}
	return f
}

func TestRenderPassOrder(t *testing.T) {
	f := newFixture()
	Render(f.dev, f.scene, f.cam, Viewport{Width: 1200, Height: 1000}, 0, false)

	// Each step must happen strictly after the previous one.
	order := []string{
		"wireframe false",
		"clear",
		"opaque",
		"use planet",
		"planet.model",
		"draw planet",
		"transparent",
		"use atmosphere",
		"atmosphere.model",
		"atmosphere.toneMappingFactor",
		"draw atmosphere",
		"restore",
	}
	last := -1
	for _, call := range order {
		i := f.rec.index(call)
		if i < 0 {
			t.Fatalf("missing call %q in %v", call, f.rec.calls)
		}
		if i <= last {
			t.Fatalf("call %q at %d, expected after %q", call, i, order[indexOf(order, call)-1])
		}
		last = i
	}
	if got := f.rec.calls[len(f.rec.calls)-1]; got != "restore" {
		t.Errorf("last call = %q, want restore", got)
	}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestRenderUniformsPushedBeforeDraw(t *testing.T) {
	f := newFixture()
	Render(f.dev, f.scene, f.cam, Viewport{Width: 800, Height: 600}, 1.5, false)

	drawPlanet := f.rec.index("draw planet")
	drawAtm := f.rec.index("draw atmosphere")
	for i, c := range f.rec.calls {
		switch {
		case strings.HasPrefix(c, "planet.") && i > drawPlanet:
			t.Errorf("%s set after planet draw", c)
		case strings.HasPrefix(c, "atmosphere.") && (i < drawPlanet || i > drawAtm):
			t.Errorf("%s set outside the atmosphere pass", c)
		}
	}
}

func TestRenderPlanetUniforms(t *testing.T) {
	f := newFixture()
	st := Render(f.dev, f.scene, f.cam, Viewport{Width: 1200, Height: 1000}, 0, false)

	if f.planet.mats["model"] != math.Identity() {
		t.Error("planet model matrix should be identity")
	}
	if f.planet.mats["view"] != st.View {
		t.Error("planet view matrix differs from frame state")
	}
	if f.planet.mats["projection"] != st.Projection {
		t.Error("planet projection differs from frame state")
	}
	if f.planet.vecs["viewPos"] != f.cam.Position {
		t.Errorf("viewPos = %v, want camera position %v", f.planet.vecs["viewPos"], f.cam.Position)
	}
	if f.planet.vecs["lightPos"] != st.Sun.Position {
		t.Errorf("lightPos = %v, want %v", f.planet.vecs["lightPos"], st.Sun.Position)
	}
	if f.planet.vecs["surfaceColor"] != (math.Vec3{X: 0.1, Y: 0.3, Z: 0.4}) {
		t.Errorf("surfaceColor = %v", f.planet.vecs["surfaceColor"])
	}
}

func TestRenderAtmosphereUniforms(t *testing.T) {
	f := newFixture()
	st := Render(f.dev, f.scene, f.cam, Viewport{Width: 1200, Height: 1000}, 2, false)
	atm := f.scene.Atmosphere

	if f.atmosphere.ints["viewSamples"] != 16 || f.atmosphere.ints["lightSamples"] != 8 {
		t.Errorf("samples = %d/%d, want 16/8", f.atmosphere.ints["viewSamples"], f.atmosphere.ints["lightSamples"])
	}
	floats := map[string]float32{
		"sunIntensity":      20,
		"planetRadius":      16,
		"atmosphereRadius":  atm.AtmosphereRadius,
		"mCoeff":            21e-3,
		"rHeight":           7.994,
		"mHeight":           1.2,
		"g":                 0.888,
		"toneMappingFactor": 0,
	}
	for name, want := range floats {
		if got, ok := f.atmosphere.floats[name]; !ok || got != want {
			t.Errorf("%s = %v (set %v), want %v", name, got, ok, want)
		}
	}
	if f.atmosphere.vecs["rCoeff"] != (math.Vec3{X: 5.8e-3, Y: 13.5e-3, Z: 33.1e-3}) {
		t.Errorf("rCoeff = %v", f.atmosphere.vecs["rCoeff"])
	}
	if f.atmosphere.vecs["rayleighCoefficient"] != lighting.ScaledRayleigh(16) {
		t.Errorf("rayleighCoefficient = %v", f.atmosphere.vecs["rayleighCoefficient"])
	}
	if f.atmosphere.vecs["sunPos"] != st.Sun.Direction {
		t.Errorf("sunPos = %v, want sun direction %v", f.atmosphere.vecs["sunPos"], st.Sun.Direction)
	}
	if f.atmosphere.mats["view"] != st.View {
		t.Error("atmosphere view matrix differs from frame state")
	}
}

func TestRenderSkipsAtmosphereDrawWhenDisabled(t *testing.T) {
	f := newFixture()
	f.scene.DrawAtmosphere = false
	Render(f.dev, f.scene, f.cam, Viewport{Width: 1200, Height: 1000}, 0, true)

	if f.rec.index("draw atmosphere") >= 0 {
		t.Error("atmosphere drawn while disabled")
	}
	if f.rec.index("atmosphere.sunPos") < 0 {
		t.Error("atmosphere uniforms should still be pushed")
	}
	if f.rec.index("restore") < 0 {
		t.Error("state not restored")
	}
	if f.rec.index("wireframe true") != 0 {
		t.Errorf("wireframe not applied first: %v", f.rec.calls)
	}
}

func TestRenderProjectionFollowsViewport(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
	}{
		{"initial", Viewport{Width: 1200, Height: 1000}},
		{"resized wide", Viewport{Width: 1920, Height: 1080}},
		{"resized tall", Viewport{Width: 600, Height: 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			st := Render(f.dev, f.scene, f.cam, tt.vp, 0, false)
			want := math.Perspective(math.Radians(45), float32(tt.vp.Width)/float32(tt.vp.Height), 0.1, 300)
			if st.Projection != want {
				t.Errorf("projection does not match viewport %dx%d", tt.vp.Width, tt.vp.Height)
			}
		})
	}
}

func TestViewportAspectCollapsed(t *testing.T) {
	for _, vp := range []Viewport{{0, 0}, {100, 0}, {0, 100}} {
		if got := vp.Aspect(); got != 1 {
			t.Errorf("Aspect(%v) = %v, want 1", vp, got)
		}
	}
}

func TestRenderSunOrbitsOverTime(t *testing.T) {
	f := newFixture()
	radius := f.scene.Atmosphere.AtmosphereRadius

	at0 := Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, 0, false).Sun
	if gomath.Abs(float64(at0.Position.Z-radius)) > 1e-5 || at0.Position.X != 0 {
		t.Errorf("sun at t=0 = %v, want (0, 0, %v)", at0.Position, radius)
	}

	quarter := gomath.Pi / 2 / float64(SunAngularSpeed)
	at1 := Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, quarter, false).Sun
	if gomath.Abs(float64(at1.Position.X-radius)) > 1e-4 {
		t.Errorf("sun after quarter orbit = %v, want x=%v", at1.Position, radius)
	}
}

func TestRenderViewReflectsCameraOrientation(t *testing.T) {
	f := newFixture()
	before := Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, 0, false).View

	f.cam.Rotate(100, 0)
	after := Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, 0, false).View
	if before == after {
		t.Error("view matrix did not change after camera rotation")
	}
}

var uniformDecl = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)

func declared(src string) map[string]bool {
	out := map[string]bool{}
	for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
		out[m[1]] = true
	}
	return out
}

// Every uniform the frame pushes must exist in the embedded GLSL, otherwise
// the upload is silently skipped at runtime.
func TestUniformsDeclaredInEmbeddedShaders(t *testing.T) {
	f := newFixture()
	Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, 0, false)

	tests := []struct {
		name    string
		program *fakeProgram
		sources []string
	}{
		{"planet", f.planet, []string{shaders.PlanetVertexShader, shaders.PlanetFragmentShader}},
		{"atmosphere", f.atmosphere, []string{shaders.AtmosphereVertexShader, shaders.AtmosphereFragmentShader}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := declared(strings.Join(tt.sources, "\n"))
			for _, name := range tt.program.names() {
				if !decl[name] {
					t.Errorf("uniform %q pushed but not declared", name)
				}
			}
		})
	}
}

// The atmosphere shader has no optional inputs: every uniform it declares
// gets a value each frame.
func TestAtmosphereUniformsAllPushed(t *testing.T) {
	f := newFixture()
	Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, 0, false)

	pushed := map[string]bool{}
	for _, name := range f.atmosphere.names() {
		pushed[name] = true
	}
	decl := declared(shaders.AtmosphereVertexShader + "\n" + shaders.AtmosphereFragmentShader)
	for name := range decl {
		if !pushed[name] {
			t.Errorf("uniform %q declared but never pushed", name)
		}
	}
	if len(pushed) != len(decl) {
		t.Errorf("pushed %d uniforms, shader declares %d", len(pushed), len(decl))
	}
}

type fakeTexture struct{ rec *recorder }

func (tx fakeTexture) Bind(unit uint32) { tx.rec.add("bind texture %d", unit) }

func TestRenderSurfaceTexture(t *testing.T) {
	t.Run("without texture", func(t *testing.T) {
		f := newFixture()
		Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, 0, false)
		if got := f.planet.ints["useSurfaceTexture"]; got != 0 {
			t.Errorf("useSurfaceTexture = %d, want 0", got)
		}
		if _, ok := f.planet.ints["surfaceTexture"]; ok {
			t.Error("sampler set without a texture")
		}
	})

	t.Run("with texture", func(t *testing.T) {
		f := newFixture()
		f.scene.SurfaceTexture = fakeTexture{rec: f.rec}
		Render(f.dev, f.scene, f.cam, Viewport{Width: 1, Height: 1}, 0, false)

		bind := f.rec.index("bind texture 0")
		if bind < 0 || bind > f.rec.index("draw planet") {
			t.Errorf("texture not bound before planet draw: %v", f.rec.calls)
		}
		if f.planet.ints["useSurfaceTexture"] != 1 || f.planet.ints["surfaceTexture"] != SurfaceTextureUnit {
			t.Errorf("sampler uniforms = %v", f.planet.ints)
		}
	})
}
