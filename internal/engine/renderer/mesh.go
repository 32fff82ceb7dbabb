package renderer

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/planet-atmosphere/internal/engine/sphere"
	"github.com/Faultbox/planet-atmosphere/internal/logger"
)

// Mesh is an indexed triangle mesh resident on the GPU.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// UploadMesh copies vertices and indices into a new VAO. The CPU arrays
// are not retained.
func UploadMesh(m *sphere.Mesh) (*Mesh, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return nil, errors.New("upload mesh: empty vertex or index data")
	}

	gm := &Mesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	// VBO
	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	vertexSize := int(unsafe.Sizeof(sphere.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*vertexSize, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	// EBO
	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.Uint32("vao", gm.vao),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int32("indices", gm.indexCount),
	)
	return gm, nil
}

// Draw issues an indexed triangle draw.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// IndexCount returns the number of indices drawn per call.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// Delete releases GPU buffers.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
