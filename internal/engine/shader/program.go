package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/planet-atmosphere/internal/engine/uniform"
	"github.com/Faultbox/planet-atmosphere/pkg/math"
)

// Program is a linked shader program with cached uniform locations.
// Setters for names the program does not expose are skipped.
type Program struct {
	name     string
	id       uint32
	uniforms *uniform.Cache
}

// NewProgram compiles and links a program. name only labels log output.
func NewProgram(name, vertexSrc, fragmentSrc string, log *zap.Logger) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log = log.With(zap.String("program", name))
	}
	return &Program{
		name:     name,
		id:       id,
		uniforms: uniform.NewCache(id, uniform.LocatorFunc(UniformLocation), log),
	}, nil
}

// ID returns the GL program handle.
func (p *Program) ID() uint32 {
	return p.id
}

// Name returns the label given at construction.
func (p *Program) Name() string {
	return p.name
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc, ok := p.uniforms.Location(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	}
}

// SetInt uploads an int (also used for sampler units).
func (p *Program) SetInt(name string, v int32) {
	if loc, ok := p.uniforms.Location(name); ok {
		gl.Uniform1i(loc, v)
	}
}

// SetFloat uploads a float.
func (p *Program) SetFloat(name string, v float32) {
	if loc, ok := p.uniforms.Location(name); ok {
		gl.Uniform1f(loc, v)
	}
}

// SetVec3 uploads a vec3.
func (p *Program) SetVec3(name string, v math.Vec3) {
	if loc, ok := p.uniforms.Location(name); ok {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
