// Package sphere builds UV-sphere meshes independent of any rendering backend.
package sphere

// Vertex represents a sphere mesh vertex with position, normal, and texture coordinates.
// The layout matches the attribute locations used by the renderer (0, 1, 2).
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete sphere mesh data ready for GPU upload.
// It is transient: once uploaded, the CPU copy can be dropped.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32

	Radius float32
	Stacks int
	Slices int
}

// VertexCount returns the number of vertices Generate produces.
func VertexCount(stacks, slices int) int {
	return (stacks + 1) * (slices + 1)
}

// IndexCount returns the number of indices Generate produces.
func IndexCount(stacks, slices int) int {
	return stacks * slices * 6
}
