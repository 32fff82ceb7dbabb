// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Failures are reported as *CompileError tagged with the failing stage.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, StageVertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, StageFragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, &CompileError{Stage: StageLink, Log: log}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage Stage) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return shader, nil
}

// infoLog reads a driver log of logLen bytes; some drivers report 0.
func infoLog(logLen int32, read func(*uint8)) string {
	if logLen <= 0 {
		return "(no log)"
	}
	buf := make([]uint8, logLen)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n ")
}

// ReadSources reads a vertex and fragment source pair from dir.
func ReadSources(dir, vertexFile, fragmentFile string) (vertexSrc, fragmentSrc string, err error) {
	vs, err := os.ReadFile(filepath.Join(dir, vertexFile))
	if err != nil {
		return "", "", fmt.Errorf("read vertex shader: %w", err)
	}
	fs, err := os.ReadFile(filepath.Join(dir, fragmentFile))
	if err != nil {
		return "", "", fmt.Errorf("read fragment shader: %w", err)
	}
	return string(vs), string(fs), nil
}

// UniformLocation returns the uniform location for the given name, or -1
// if the uniform is not found or inactive.
func UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
