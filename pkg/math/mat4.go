package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a right-handed perspective projection matrix mapping
// view space to clip space. fovY is in radians, aspect is width/height.
//
// Inputs are not validated: fovY outside (0, π), near <= 0 or far <= near
// produce a numerically meaningless matrix rather than an error.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)/2.0))
	nf := 1.0 / (near - far)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

// ViewFromBasis builds a view matrix for an eye at position looking along
// forward. The basis is re-derived on every call so that accumulated drift
// in the caller's vectors never reaches the matrix:
//
//	forward is normalized and kept fixed,
//	right = normalize(up × forward),
//	up    = forward × right.
//
// The re-derived right and up are returned so the caller can store them.
func ViewFromBasis(position, forward, up Vec3) (view Mat4, right, newUp Vec3) {
	f := forward.Normalize()
	right = up.Cross(f).Normalize()
	newUp = f.Cross(right)

	view = Mat4{
		right.X, newUp.X, -f.X, 0,
		right.Y, newUp.Y, -f.Y, 0,
		right.Z, newUp.Z, -f.Z, 0,
		-right.Dot(position), -newUp.Dot(position), f.Dot(position), 1,
	}
	return view, right, newUp
}

// Translate adds (x, y, z) into the translation column of m.
// It does not reset the rest of the matrix; start from Identity for a plain
// translation.
func (m *Mat4) Translate(x, y, z float32) {
	m[12] += x
	m[13] += y
	m[14] += z
}

// ScaleDiagonal overwrites the diagonal of m with (x, y, z, 1).
// Off-diagonal elements are left untouched, so m should be an identity (or
// pure translation) matrix for the result to be a scale.
func (m *Mat4) ScaleDiagonal(x, y, z float32) {
	m[0] = x
	m[5] = y
	m[10] = z
	m[15] = 1
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1) and
// applies the perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	if v[3] != 0 && v[3] != 1 {
		return Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return Vec3{v[0], v[1], v[2]}
}

// Row returns the first three elements of row i of the upper-left 3x3 block.
func (m Mat4) Row(i int) Vec3 {
	return Vec3{m[i], m[4+i], m[8+i]}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Vec4 is a 4-component vector.
type Vec4 [4]float32

// MulVec4 multiplies the matrix by a Vec4.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}
