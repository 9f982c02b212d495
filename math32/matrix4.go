// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "cogentcore.org/scenegraph/base/errors"

// ErrSingular is returned when inverting a matrix whose determinant is zero.
var ErrSingular = errors.New("math32: matrix is singular (determinant is zero)")

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Matrix4FromTransform returns a new matrix composed from the given
// position, rotation and scale.
func Matrix4FromTransform(pos Vector3, quat Quat, scale Vector3) *Matrix4 {
	m := &Matrix4{}
	m.SetTransform(pos, quat, scale)
	return m
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0] = n11
	m[4] = n12
	m[8] = n13
	m[12] = n14
	m[1] = n21
	m[5] = n22
	m[9] = n23
	m[13] = n24
	m[2] = n31
	m[6] = n32
	m[10] = n33
	m[14] = n34
	m[3] = n41
	m[7] = n42
	m[11] = n43
	m[15] = n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// SetZero sets this matrix as the zero matrix.
func (m *Matrix4) SetZero() {
	*m = Matrix4{}
}

// IsIdentity returns true if this matrix is the identity matrix.
func (m *Matrix4) IsIdentity() bool {
	return *m == *Identity4()
}

// IsEqualTol returns true if all elements are within tol of the other matrix.
func (m *Matrix4) IsEqualTol(other *Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

// SetFromMatrix3 sets the upper-left 3x3 of this matrix from the given
// 3x3 matrix, with the remaining elements set to identity.
func (m *Matrix4) SetFromMatrix3(src *Matrix3) {
	m.Set(
		src[0], src[3], src[6], 0,
		src[1], src[4], src[7], 0,
		src[2], src[5], src[8], 0,
		0, 0, 0, 1,
	)
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// SetScale sets this matrix to a scale transformation matrix using the specified x, y and z values.
func (m *Matrix4) SetScale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// SetPos sets this matrix persiste position elements from the specified vector.
func (m *Matrix4) SetPos(v Vector3) {
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

// Pos returns the position component of the matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// SetRotationAxis sets this matrix to a rotation matrix of the specified
// angle (radians) around the specified axis, which must be normalized.
func (m *Matrix4) SetRotationAxis(axis Vector3, angle float32) {
	c := Cos(angle)
	s := Sin(angle)
	t := 1 - c
	x := axis.X
	y := axis.Y
	z := axis.Z
	tx := t * x
	ty := t * y
	m.Set(
		tx*x+c, tx*y-s*z, tx*z+s*y, 0,
		tx*y+s*z, ty*y+c, ty*z-s*x, 0,
		tx*z-s*y, ty*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// SetRotationFromQuat sets this matrix to a pure rotation matrix
// from the given quaternion.
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	m.SetTransform(Vector3{}, q, Vec3(1, 1, 1))
}

// SetRotationFromEuler sets this matrix to a pure rotation matrix
// from the given Euler angles, applied in the Euler order.
func (m *Matrix4) SetRotationFromEuler(e Euler) {
	a := Cos(e.X)
	b := Sin(e.X)
	c := Cos(e.Y)
	d := Sin(e.Y)
	ec := Cos(e.Z)
	f := Sin(e.Z)

	switch e.Order {
	case XYZ:
		ae := a * ec
		af := a * f
		be := b * ec
		bf := b * f
		m[0] = c * ec
		m[4] = -c * f
		m[8] = d
		m[1] = af + be*d
		m[5] = ae - bf*d
		m[9] = -b * c
		m[2] = bf - ae*d
		m[6] = be + af*d
		m[10] = a * c
	case YXZ:
		ce := c * ec
		cf := c * f
		de := d * ec
		df := d * f
		m[0] = ce + df*b
		m[4] = de*b - cf
		m[8] = a * d
		m[1] = a * f
		m[5] = a * ec
		m[9] = -b
		m[2] = cf*b - de
		m[6] = df + ce*b
		m[10] = a * c
	case ZXY:
		ce := c * ec
		cf := c * f
		de := d * ec
		df := d * f
		m[0] = ce - df*b
		m[4] = -a * f
		m[8] = de + cf*b
		m[1] = cf + de*b
		m[5] = a * ec
		m[9] = df - ce*b
		m[2] = -a * d
		m[6] = b
		m[10] = a * c
	case ZYX:
		ae := a * ec
		af := a * f
		be := b * ec
		bf := b * f
		m[0] = c * ec
		m[4] = be*d - af
		m[8] = ae*d + bf
		m[1] = c * f
		m[5] = bf*d + ae
		m[9] = af*d - be
		m[2] = -d
		m[6] = b * c
		m[10] = a * c
	case YZX:
		ac := a * c
		ad := a * d
		bc := b * c
		bd := b * d
		m[0] = c * ec
		m[4] = bd - ac*f
		m[8] = bc*f + ad
		m[1] = f
		m[5] = a * ec
		m[9] = -b * ec
		m[2] = -d * ec
		m[6] = ad*f + bc
		m[10] = ac - bd*f
	case XZY:
		ac := a * c
		ad := a * d
		bc := b * c
		bd := b * d
		m[0] = c * ec
		m[4] = -f
		m[8] = d * ec
		m[1] = ac*f + bd
		m[5] = a * ec
		m[9] = ad*f - bc
		m[2] = bc*f - ad
		m[6] = b * ec
		m[10] = bd*f + ac
	}

	// bottom row
	m[3] = 0
	m[7] = 0
	m[11] = 0

	// last column
	m[12] = 0
	m[13] = 0
	m[14] = 0
	m[15] = 1
}

// ExtractRotation sets this matrix as rotation matrix from the src transformation matrix,
// removing any scale and translation.
func (m *Matrix4) ExtractRotation(src *Matrix4) {
	var v Vector3
	v.SetFromMatrixCol(src, 0)
	scaleX := 1 / v.Length()
	v.SetFromMatrixCol(src, 1)
	scaleY := 1 / v.Length()
	v.SetFromMatrixCol(src, 2)
	scaleZ := 1 / v.Length()

	m[0] = src[0] * scaleX
	m[1] = src[1] * scaleX
	m[2] = src[2] * scaleX
	m[3] = 0

	m[4] = src[4] * scaleY
	m[5] = src[5] * scaleY
	m[6] = src[6] * scaleY
	m[7] = 0

	m[8] = src[8] * scaleZ
	m[9] = src[9] * scaleZ
	m[10] = src[10] * scaleZ
	m[11] = 0

	m[12] = 0
	m[13] = 0
	m[14] = 0
	m[15] = 1
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	x := quat.X
	y := quat.Y
	z := quat.Z
	w := quat.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2
	sx := scale.X
	sy := scale.Y
	sz := scale.Z

	m[0] = (1 - (yy + zz)) * sx
	m[1] = (xy + wz) * sx
	m[2] = (xz - wy) * sx
	m[3] = 0

	m[4] = (xy - wz) * sy
	m[5] = (1 - (xx + zz)) * sy
	m[6] = (yz + wx) * sy
	m[7] = 0

	m[8] = (xz + wy) * sz
	m[9] = (yz - wx) * sz
	m[10] = (1 - (xx + yy)) * sz
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}

// Decompose updates the position vector, quaternion and scale from this transformation matrix.
// A negative determinant (mirroring) is carried by negating the X scale.
func (m *Matrix4) Decompose() (pos Vector3, quat Quat, scale Vector3) {
	sx := Vec3(m[0], m[1], m[2]).Length()
	sy := Vec3(m[4], m[5], m[6]).Length()
	sz := Vec3(m[8], m[9], m[10]).Length()

	if m.Determinant() < 0 {
		sx = -sx
	}

	pos = Vec3(m[12], m[13], m[14])

	// scale the rotation part
	matrix := *m
	invSX := 1 / sx
	invSY := 1 / sy
	invSZ := 1 / sz

	matrix[0] *= invSX
	matrix[1] *= invSX
	matrix[2] *= invSX

	matrix[4] *= invSY
	matrix[5] *= invSY
	matrix[6] *= invSY

	matrix[8] *= invSZ
	matrix[9] *= invSZ
	matrix[10] *= invSZ

	quat.SetFromRotationMatrix(&matrix)
	scale = Vec3(sx, sy, sz)
	return
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix4) SetMul(other *Matrix4) {
	m.MulMatrices(m, other)
}

// SetPremul sets this matrix to other matrix times this.
func (m *Matrix4) SetPremul(other *Matrix4) {
	m.MulMatrices(other, m)
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a*b).
// It is safe for this matrix to be a or b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	a11 := a[0]
	a12 := a[4]
	a13 := a[8]
	a14 := a[12]
	a21 := a[1]
	a22 := a[5]
	a23 := a[9]
	a24 := a[13]
	a31 := a[2]
	a32 := a[6]
	a33 := a[10]
	a34 := a[14]
	a41 := a[3]
	a42 := a[7]
	a43 := a[11]
	a44 := a[15]

	b11 := b[0]
	b12 := b[4]
	b13 := b[8]
	b14 := b[12]
	b21 := b[1]
	b22 := b[5]
	b23 := b[9]
	b24 := b[13]
	b31 := b[2]
	b32 := b[6]
	b33 := b[10]
	b34 := b[14]
	b41 := b[3]
	b42 := b[7]
	b43 := b[11]
	b44 := b[15]

	m[0] = a11*b11 + a12*b21 + a13*b31 + a14*b41
	m[4] = a11*b12 + a12*b22 + a13*b32 + a14*b42
	m[8] = a11*b13 + a12*b23 + a13*b33 + a14*b43
	m[12] = a11*b14 + a12*b24 + a13*b34 + a14*b44

	m[1] = a21*b11 + a22*b21 + a23*b31 + a24*b41
	m[5] = a21*b12 + a22*b22 + a23*b32 + a24*b42
	m[9] = a21*b13 + a22*b23 + a23*b33 + a24*b43
	m[13] = a21*b14 + a22*b24 + a23*b34 + a24*b44

	m[2] = a31*b11 + a32*b21 + a33*b31 + a34*b41
	m[6] = a31*b12 + a32*b22 + a33*b32 + a34*b42
	m[10] = a31*b13 + a32*b23 + a33*b33 + a34*b43
	m[14] = a31*b14 + a32*b24 + a33*b34 + a34*b44

	m[3] = a41*b11 + a42*b21 + a43*b31 + a44*b41
	m[7] = a41*b12 + a42*b22 + a43*b32 + a44*b42
	m[11] = a41*b13 + a42*b23 + a43*b33 + a44*b43
	m[15] = a41*b14 + a42*b24 + a43*b34 + a44*b44
}

// MulScalar returns this matrix with each element multiplied by s.
func (m *Matrix4) MulScalar(s float32) *Matrix4 {
	nm := *m
	for i := range nm {
		nm[i] *= s
	}
	return &nm
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	n11 := m[0]
	n21 := m[1]
	n31 := m[2]
	n41 := m[3]
	n12 := m[4]
	n22 := m[5]
	n32 := m[6]
	n42 := m[7]
	n13 := m[8]
	n23 := m[9]
	n33 := m[10]
	n43 := m[11]
	n14 := m[12]
	n24 := m[13]
	n34 := m[14]
	n44 := m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	return n11*t11 + n21*t12 + n31*t13 + n41*t14
}

// SetInverse sets this matrix to the inverse of the src matrix.
// If the src matrix cannot be inverted, this matrix is set to zero
// and [ErrSingular] is returned.
func (m *Matrix4) SetInverse(src *Matrix4) error {
	n11 := src[0]
	n21 := src[1]
	n31 := src[2]
	n41 := src[3]
	n12 := src[4]
	n22 := src[5]
	n32 := src[6]
	n42 := src[7]
	n13 := src[8]
	n23 := src[9]
	n33 := src[10]
	n43 := src[11]
	n14 := src[12]
	n24 := src[13]
	n34 := src[14]
	n44 := src[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14

	if det == 0 {
		m.SetZero()
		return ErrSingular
	}

	detInv := 1 / det

	m[0] = t11 * detInv
	m[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * detInv
	m[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * detInv
	m[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * detInv

	m[4] = t12 * detInv
	m[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * detInv
	m[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * detInv
	m[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * detInv

	m[8] = t13 * detInv
	m[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * detInv
	m[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * detInv
	m[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * detInv

	m[12] = t14 * detInv
	m[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * detInv
	m[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * detInv
	m[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * detInv

	return nil
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted it returns the zero matrix and [ErrSingular].
func (m *Matrix4) Inverse() (*Matrix4, error) {
	nm := &Matrix4{}
	err := nm.SetInverse(m)
	return nm, err
}

// SetTranspose transposes this matrix.
func (m *Matrix4) SetTranspose() {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[6], m[9] = m[9], m[6]
	m[3], m[12] = m[12], m[3]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() *Matrix4 {
	nm := *m
	nm.SetTranspose()
	return &nm
}

// ScaleCols returns matrix with first column of this matrix multiplied by the vector X component,
// the second column by the vector Y component and the third column by
// the vector Z component. The matrix fourth column is unchanged.
func (m *Matrix4) ScaleCols(v Vector3) *Matrix4 {
	nm := *m
	nm[0] *= v.X
	nm[4] *= v.Y
	nm[8] *= v.Z
	nm[1] *= v.X
	nm[5] *= v.Y
	nm[9] *= v.Z
	nm[2] *= v.X
	nm[6] *= v.Y
	nm[10] *= v.Z
	nm[3] *= v.X
	nm[7] *= v.Y
	nm[11] *= v.Z
	return &nm
}

// MaxScaleOnAxis returns the largest scale factor among the three axes.
func (m *Matrix4) MaxScaleOnAxis() float32 {
	scaleXSq := m[0]*m[0] + m[1]*m[1] + m[2]*m[2]
	scaleYSq := m[4]*m[4] + m[5]*m[5] + m[6]*m[6]
	scaleZSq := m[8]*m[8] + m[9]*m[9] + m[10]*m[10]
	return Sqrt(Max(scaleXSq, Max(scaleYSq, scaleZSq)))
}

// SetLookAt sets this matrix to the rotation that orients the -Z axis
// from eye toward target, with up used as the roll reference.
// Translation is left at zero. Degenerate inputs (eye == target, or up
// parallel to the view direction) are nudged to a valid orientation.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		// eye and target are in the same position
		z.Z = 1
	}
	z.SetNormal()
	x := up.Cross(z)

	if x.LengthSquared() == 0 {
		// up and z are parallel
		if Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z.SetNormal()
		x = up.Cross(z)
	}

	x.SetNormal()
	y := z.Cross(x)

	m.Set(
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		0, 0, 0, 1,
	)
}

// SetFrustum sets this matrix to a perspective projection matrix
// for the frustum with the given near-plane edges.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)

	m.Set(
		x, 0, a, 0,
		0, y, b, 0,
		0, 0, c, d,
		0, 0, -1, 0,
	)
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	ymin := -ymax
	xmin := ymin * aspect
	xmax := ymax * aspect
	m.SetFrustum(xmin, xmax, ymin, ymax, near, far)
}

// SetOrthographic sets this matrix to an orthographic projection matrix.
func (m *Matrix4) SetOrthographic(left, right, top, bottom, near, far float32) {
	w := 1 / (right - left)
	h := 1 / (top - bottom)
	p := 1 / (far - near)

	x := (right + left) * w
	y := (top + bottom) * h
	z := (far + near) * p

	m.Set(
		2*w, 0, 0, -x,
		0, 2*h, 0, -y,
		0, 0, -2*p, -z,
		0, 0, 0, 1,
	)
}
