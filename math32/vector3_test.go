// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/scenegraph/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	v := Vec3(3, 0, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(25), v.LengthSquared())
	TolAssertEqualVector3(t, StandardTol, Vec3(0.6, 0, 0.8), v.Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	tolassert.EqualTol(t, Pi/2, Vec3(1, 0, 0).AngleTo(Vec3(0, 0, 1)), StandardTol)

	TolAssertEqualVector3(t, StandardTol, Vec3(0.6, 0, 0.8).MulScalar(2), v.ClampLength(1, 2))
	TolAssertEqualVector3(t, StandardTol, v, v.ClampLength(1, 10))

	w := v
	w.SetAddScaled(Vec3(1, 1, 1), 2)
	assert.Equal(t, Vec3(5, 2, 6), w)
	w.SetDim(Y, 7)
	assert.Equal(t, float32(7), w.Dim(Y))
	assert.Equal(t, Vec3(3, 0, 4), v)
}

func TestVector3Directions(t *testing.T) {
	m := Matrix4FromTransform(Vec3(10, 10, 10), NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90)), Vec3(2, 2, 2))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, 0), Vec3(1, 0, 0).MulDirMatrix4(m))
	TolAssertEqualVector3(t, StandardTol, Vec3(10, 12, 10), Vec3(1, 0, 0).MulMatrix4(m))
}

func TestSpherical(t *testing.T) {
	s := Spherical{}
	s.SetFromVector3(Vec3(0, 0, 5))
	tolassert.EqualTol(t, 5, s.Radius, StandardTol)
	tolassert.EqualTol(t, Pi/2, s.Phi, StandardTol)
	tolassert.EqualTol(t, 0, s.Theta, StandardTol)
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 5), s.Vector3())

	s.SetFromVector3(Vec3(1, 0, 0))
	tolassert.EqualTol(t, Pi/2, s.Theta, StandardTol)

	s.SetFromVector3(Vector3{})
	assert.Equal(t, Spherical{}, s)

	s = NewSpherical(1, 0, 0)
	s.MakeSafe()
	assert.Greater(t, s.Phi, float32(0))
	s.Phi = Pi
	s.MakeSafe()
	assert.Less(t, s.Phi, float32(Pi))
}

func TestWrapAngle(t *testing.T) {
	tolassert.EqualTol(t, 0, WrapAngle(0), StandardTol)
	tolassert.EqualTol(t, Pi, WrapAngle(Pi), StandardTol)
	tolassert.EqualTol(t, Pi, WrapAngle(-Pi), StandardTol)
	tolassert.EqualTol(t, 4-TwoPi, WrapAngle(4), StandardTol)
	tolassert.EqualTol(t, TwoPi-4, WrapAngle(-4), StandardTol)
	tolassert.EqualTol(t, 1, WrapAngle(1+3*TwoPi), 1.0e-4)
}

func TestEulerOrdersText(t *testing.T) {
	b, err := ZYX.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "ZYX", string(b))

	var o EulerOrders
	assert.NoError(t, o.UnmarshalText([]byte("YZX")))
	assert.Equal(t, YZX, o)
	assert.Error(t, o.UnmarshalText([]byte("ABC")))

	e := NewEuler(0.1, 0.2, 0.3, XZY)
	r := e.Reorder(XYZ)
	assert.Equal(t, XYZ, r.Order)
	me := &Matrix4{}
	me.SetRotationFromEuler(e)
	mr := &Matrix4{}
	mr.SetRotationFromEuler(r)
	TolAssertEqualMatrix4(t, 1.0e-4, me, mr)
}
