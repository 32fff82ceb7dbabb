package sphere

import (
	"fmt"
	"math"
)

// Generate tessellates a sphere of the given radius centered at the origin.
//
// Stacks sweep from the +Z pole (π/2) down to the −Z pole (−π/2); slices
// sweep 0..2π. Both ends are inclusive, so the seam column is duplicated and
// texture coordinates run 0..1 without wrapping. Every stack×slice cell
// emits the two counter-clockwise triangles (first, second, first+1) and
// (second, second+1, first+1) with second = first + slices + 1. Cells
// touching a pole produce degenerate triangles; they are kept as is.
func Generate(radius float32, stacks, slices int) (*Mesh, error) {
	if stacks < 1 || slices < 1 {
		return nil, fmt.Errorf("sphere needs at least one stack and slice, got %d×%d", stacks, slices)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be positive, got %v", radius)
	}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, VertexCount(stacks, slices)),
		Indices:  make([]uint32, 0, IndexCount(stacks, slices)),
		Radius:   radius,
		Stacks:   stacks,
		Slices:   slices,
	}

	for i := 0; i <= stacks; i++ {
		stackAngle := math.Pi/2 - float64(i)*math.Pi/float64(stacks)
		ringRadius := float64(radius) * math.Cos(stackAngle)
		z := float64(radius) * math.Sin(stackAngle)

		for j := 0; j <= slices; j++ {
			sliceAngle := float64(j) * 2 * math.Pi / float64(slices)
			x := ringRadius * math.Cos(sliceAngle)
			y := ringRadius * math.Sin(sliceAngle)

			// Normal is the normalized position; only valid because the
			// sphere is centered at the origin.
			length := math.Sqrt(x*x + y*y + z*z)

			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position: [3]float32{float32(x), float32(y), float32(z)},
				Normal:   [3]float32{float32(x / length), float32(y / length), float32(z / length)},
				TexCoord: [2]float32{float32(j) / float32(slices), float32(i) / float32(stacks)},
			})
		}
	}

	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			first := uint32(i*(slices+1) + j)
			second := first + uint32(slices) + 1

			mesh.Indices = append(mesh.Indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return mesh, nil
}
