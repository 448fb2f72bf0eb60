package math3d

import "math"

// Mat4 is a 4x4 matrix stored in row-major order, used for the affine node
// transforms encountered while loading a hierarchical model (GLTF node
// trees). M[row][col].
type Mat4 struct {
	M [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := range 4 {
		m.M[i][i] = 1
	}
	return m
}

// Mat4FromSlice builds a Mat4 from 16 column-major values, matching GLTF's
// node.Matrix layout.
func Mat4FromSlice(s []float64) Mat4 {
	var m Mat4
	for col := range 4 {
		for row := range 4 {
			m.M[row][col] = s[col*4+row]
		}
	}
	return m
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	m := Identity()
	m.M[0][3] = v.X
	m.M[1][3] = v.Y
	m.M[2][3] = v.Z
	return m
}

// Scale returns a non-uniform scale matrix.
func Scale(v Vec3) Mat4 {
	m := Identity()
	m.M[0][0] = v.X
	m.M[1][1] = v.Y
	m.M[2][2] = v.Z
	return m
}

// RotateX returns a rotation matrix around the X axis, angle in radians.
func RotateX(angle float64) Mat4 {
	m := Identity()
	s, c := math.Sin(angle), math.Cos(angle)
	m.M[1][1], m.M[1][2] = c, -s
	m.M[2][1], m.M[2][2] = s, c
	return m
}

// RotateY returns a rotation matrix around the Y axis, angle in radians.
func RotateY(angle float64) Mat4 {
	m := Identity()
	s, c := math.Sin(angle), math.Cos(angle)
	m.M[0][0], m.M[0][2] = c, s
	m.M[2][0], m.M[2][2] = -s, c
	return m
}

// RotateZ returns a rotation matrix around the Z axis, angle in radians.
func RotateZ(angle float64) Mat4 {
	m := Identity()
	s, c := math.Sin(angle), math.Cos(angle)
	m.M[0][0], m.M[0][1] = c, -s
	m.M[1][0], m.M[1][1] = s, c
	return m
}

// QuatToMat4 converts a quaternion (x, y, z, w) to a rotation matrix,
// matching GLTF's node.Rotation convention.
func QuatToMat4(x, y, z, w float64) Mat4 {
	m := Identity()
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	m.M[0][0] = 1 - 2*(yy+zz)
	m.M[0][1] = 2 * (xy - wz)
	m.M[0][2] = 2 * (xz + wy)

	m.M[1][0] = 2 * (xy + wz)
	m.M[1][1] = 1 - 2*(xx+zz)
	m.M[1][2] = 2 * (yz - wx)

	m.M[2][0] = 2 * (xz - wy)
	m.M[2][1] = 2 * (yz + wx)
	m.M[2][2] = 1 - 2*(xx+yy)

	return m
}

// Mul returns the matrix product a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// MulVec4 transforms a homogeneous Vec4 by the matrix.
func (a Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z + a.M[0][3]*v.W,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z + a.M[1][3]*v.W,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z + a.M[2][3]*v.W,
		W: a.M[3][0]*v.X + a.M[3][1]*v.Y + a.M[3][2]*v.Z + a.M[3][3]*v.W,
	}
}

// MulVec3 transforms a point (W=1) by the matrix, applying translation.
func (a Mat4) MulVec3(v Vec3) Vec3 {
	return a.MulVec4(V4FromV3(v, 1)).Vec3()
}

// MulVec3Dir transforms a direction (W=0) by the matrix, ignoring translation.
func (a Mat4) MulVec3Dir(v Vec3) Vec3 {
	return a.MulVec4(V4FromV3(v, 0)).Vec3()
}

// Inverse returns the inverse of the matrix via cofactor expansion.
// Returns the identity matrix if a is singular.
func (a Mat4) Inverse() Mat4 {
	m := a.M
	var inv [4][4]float64

	inv[0][0] = m[1][1]*m[2][2]*m[3][3] - m[1][1]*m[2][3]*m[3][2] - m[2][1]*m[1][2]*m[3][3] + m[2][1]*m[1][3]*m[3][2] + m[3][1]*m[1][2]*m[2][3] - m[3][1]*m[1][3]*m[2][2]
	inv[1][0] = -m[1][0]*m[2][2]*m[3][3] + m[1][0]*m[2][3]*m[3][2] + m[2][0]*m[1][2]*m[3][3] - m[2][0]*m[1][3]*m[3][2] - m[3][0]*m[1][2]*m[2][3] + m[3][0]*m[1][3]*m[2][2]
	inv[2][0] = m[1][0]*m[2][1]*m[3][3] - m[1][0]*m[2][3]*m[3][1] - m[2][0]*m[1][1]*m[3][3] + m[2][0]*m[1][3]*m[3][1] + m[3][0]*m[1][1]*m[2][3] - m[3][0]*m[1][3]*m[2][1]
	inv[3][0] = -m[1][0]*m[2][1]*m[3][2] + m[1][0]*m[2][2]*m[3][1] + m[2][0]*m[1][1]*m[3][2] - m[2][0]*m[1][2]*m[3][1] - m[3][0]*m[1][1]*m[2][2] + m[3][0]*m[1][2]*m[2][1]

	det := m[0][0]*inv[0][0] + m[0][1]*inv[1][0] + m[0][2]*inv[2][0] + m[0][3]*inv[3][0]
	if det == 0 {
		return Identity()
	}

	inv[0][1] = -m[0][1]*m[2][2]*m[3][3] + m[0][1]*m[2][3]*m[3][2] + m[2][1]*m[0][2]*m[3][3] - m[2][1]*m[0][3]*m[3][2] - m[3][1]*m[0][2]*m[2][3] + m[3][1]*m[0][3]*m[2][2]
	inv[1][1] = m[0][0]*m[2][2]*m[3][3] - m[0][0]*m[2][3]*m[3][2] - m[2][0]*m[0][2]*m[3][3] + m[2][0]*m[0][3]*m[3][2] + m[3][0]*m[0][2]*m[2][3] - m[3][0]*m[0][3]*m[2][2]
	inv[2][1] = -m[0][0]*m[2][1]*m[3][3] + m[0][0]*m[2][3]*m[3][1] + m[2][0]*m[0][1]*m[3][3] - m[2][0]*m[0][3]*m[3][1] - m[3][0]*m[0][1]*m[2][3] + m[3][0]*m[0][3]*m[2][1]
	inv[3][1] = m[0][0]*m[2][1]*m[3][2] - m[0][0]*m[2][2]*m[3][1] - m[2][0]*m[0][1]*m[3][2] + m[2][0]*m[0][2]*m[3][1] + m[3][0]*m[0][1]*m[2][2] - m[3][0]*m[0][2]*m[2][1]

	inv[0][2] = m[0][1]*m[1][2]*m[3][3] - m[0][1]*m[1][3]*m[3][2] - m[1][1]*m[0][2]*m[3][3] + m[1][1]*m[0][3]*m[3][2] + m[3][1]*m[0][2]*m[1][3] - m[3][1]*m[0][3]*m[1][2]
	inv[1][2] = -m[0][0]*m[1][2]*m[3][3] + m[0][0]*m[1][3]*m[3][2] + m[1][0]*m[0][2]*m[3][3] - m[1][0]*m[0][3]*m[3][2] - m[3][0]*m[0][2]*m[1][3] + m[3][0]*m[0][3]*m[1][2]
	inv[2][2] = m[0][0]*m[1][1]*m[3][3] - m[0][0]*m[1][3]*m[3][1] - m[1][0]*m[0][1]*m[3][3] + m[1][0]*m[0][3]*m[3][1] + m[3][0]*m[0][1]*m[1][3] - m[3][0]*m[0][3]*m[1][1]
	inv[3][2] = -m[0][0]*m[1][1]*m[3][2] + m[0][0]*m[1][2]*m[3][1] + m[1][0]*m[0][1]*m[3][2] - m[1][0]*m[0][2]*m[3][1] - m[3][0]*m[0][1]*m[1][2] + m[3][0]*m[0][2]*m[1][1]

	inv[0][3] = -m[0][1]*m[1][2]*m[2][3] + m[0][1]*m[1][3]*m[2][2] + m[1][1]*m[0][2]*m[2][3] - m[1][1]*m[0][3]*m[2][2] - m[2][1]*m[0][2]*m[1][3] + m[2][1]*m[0][3]*m[1][2]
	inv[1][3] = m[0][0]*m[1][2]*m[2][3] - m[0][0]*m[1][3]*m[2][2] - m[1][0]*m[0][2]*m[2][3] + m[1][0]*m[0][3]*m[2][2] + m[2][0]*m[0][2]*m[1][3] - m[2][0]*m[0][3]*m[1][2]
	inv[2][3] = -m[0][0]*m[1][1]*m[2][3] + m[0][0]*m[1][3]*m[2][1] + m[1][0]*m[0][1]*m[2][3] - m[1][0]*m[0][3]*m[2][1] - m[2][0]*m[0][1]*m[1][3] + m[2][0]*m[0][3]*m[1][1]
	inv[3][3] = m[0][0]*m[1][1]*m[2][2] - m[0][0]*m[1][2]*m[2][1] - m[1][0]*m[0][1]*m[2][2] + m[1][0]*m[0][2]*m[2][1] + m[2][0]*m[0][1]*m[1][2] - m[2][0]*m[0][2]*m[1][1]

	invDet := 1 / det
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			r.M[i][j] = inv[i][j] * invDet
		}
	}
	return r
}

// LookAt builds a right-handed view matrix.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	m := Identity()
	m.M[0][0], m.M[0][1], m.M[0][2] = s.X, s.Y, s.Z
	m.M[1][0], m.M[1][1], m.M[1][2] = u.X, u.Y, u.Z
	m.M[2][0], m.M[2][1], m.M[2][2] = -f.X, -f.Y, -f.Z
	m.M[0][3] = -s.Dot(eye)
	m.M[1][3] = -u.Dot(eye)
	m.M[2][3] = f.Dot(eye)
	return m
}

// Perspective builds a perspective projection matrix.
// fovYDegrees is the vertical field of view in degrees.
func Perspective(fovYDegrees, aspect, near, far float64) Mat4 {
	fovY := fovYDegrees * math.Pi / 180
	f := 1 / math.Tan(fovY/2)

	var m Mat4
	m.M[0][0] = f / aspect
	m.M[1][1] = f
	m.M[2][2] = (far + near) / (near - far)
	m.M[2][3] = (2 * far * near) / (near - far)
	m.M[3][2] = -1
	return m
}
