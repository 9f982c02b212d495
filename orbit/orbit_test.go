// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"testing"
	"time"

	"cogentcore.org/scenegraph/base/tolassert"
	"cogentcore.org/scenegraph/events"
	"cogentcore.org/scenegraph/events/key"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
	"cogentcore.org/scenegraph/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTol = 1e-4

// half height of the view at distance 5 for the default 50 degree fov
var testHalfHeight = 5 * math32.Tan(25*math32.DegToRadFactor)

func assertVector3(t *testing.T, want, got math32.Vector3, tol float32) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, tol)
	tolassert.EqualTol(t, want.Y, got.Y, tol)
	tolassert.EqualTol(t, want.Z, got.Z, tol)
}

func newTestController() (*Controller, *xyz.PerspectiveCamera, *events.Element) {
	cam := xyz.NewPerspectiveCamera()
	cam.SetPos(0, 0, 5)
	el := events.NewElement(800, 600)
	return New(cam, el), cam, el
}

func modifiers(mods ...key.Modifiers) key.Modifiers {
	var m key.Modifiers
	for _, md := range mods {
		m.SetFlag(true, md)
	}
	return m
}

func TestIdleNoDrift(t *testing.T) {
	c, cam, _ := newTestController()
	for i := 0; i < 100; i++ {
		assert.False(t, c.Update())
	}
	assertVector3(t, math32.Vec3(0, 0, 5), cam.Pose.Pos, 1e-5)
	assertVector3(t, math32.Vec3(0, 0, -1), cam.WorldDirection(), 1e-5)
	tolassert.EqualTol(t, math32.Pi/2, c.PolarAngle(), testTol)
	tolassert.EqualTol(t, 0, c.AzimuthalAngle(), testTol)
	tolassert.EqualTol(t, 5, c.Distance(), testTol)
	assert.Equal(t, StateNone, c.State())
}

func TestRotateDrag(t *testing.T) {
	c, cam, el := newTestController()
	starts, ends, changes := 0, 0, 0
	c.OnStart = func() { starts++ }
	c.OnEnd = func() { ends++ }
	c.OnChange = func() { changes++ }

	el.MouseDown(events.Left, 400, 300, 0)
	el.ProcessEvents()
	assert.Equal(t, StateRotate, c.State())
	assert.True(t, el.HasPointerCapture(events.MousePointerID))

	// a quarter of the surface height is a quarter turn
	for i := 1; i <= 3; i++ {
		el.MouseMove(400+float32(i)*50, 300, 0)
	}
	el.MouseUp(events.Left, 550, 300, 0)
	el.ProcessEvents()

	assert.Equal(t, StateNone, c.State())
	assert.False(t, el.HasPointerCapture(events.MousePointerID))
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)
	assert.Equal(t, 3, changes)
	assertVector3(t, math32.Vec3(-5, 0, 0), cam.Pose.Pos, testTol)
	assertVector3(t, math32.Vec3(1, 0, 0), cam.WorldDirection(), testTol)
	tolassert.EqualTol(t, -math32.Pi/2, c.AzimuthalAngle(), testTol)

	// camera up is kept: no roll
	var up math32.Vector3
	up.SetFromMatrixCol(&cam.Pose.WorldMatrix, 1)
	assertVector3(t, math32.Vec3(0, 1, 0), up, testTol)
}

func TestPolarClamp(t *testing.T) {
	c, cam, _ := newTestController()
	c.MinPolarAngle = 0.5
	c.MaxPolarAngle = 2
	for _, d := range []float32{1.3, -2.9, 0.2, 4, -0.7, -10, 10, 0.05} {
		c.rotateUp(d)
		c.Update()
		assert.GreaterOrEqual(t, c.PolarAngle(), float32(0.5))
		assert.LessOrEqual(t, c.PolarAngle(), float32(2))
		assert.False(t, cam.Pose.Pos.IsNaN())
	}

	// the default range stops short of the poles
	c.ApplySettings(NewSettings())
	c.rotateUp(10)
	c.Update()
	assert.Greater(t, c.PolarAngle(), float32(0))
	tolassert.EqualTol(t, 0, c.PolarAngle(), testTol)
	assert.False(t, cam.Pose.Pos.IsNaN())
	assert.False(t, cam.Pose.Quat.IsNil())
	tolassert.EqualTol(t, 5, c.Distance(), testTol)

	c.rotateUp(-10)
	c.Update()
	assert.Less(t, c.PolarAngle(), float32(math32.Pi))
	tolassert.EqualTol(t, math32.Pi, c.PolarAngle(), testTol)
	assert.False(t, cam.Pose.Pos.IsNaN())
}

func TestDampingConvergence(t *testing.T) {
	c, cam, _ := newTestController()
	c.EnableDamping = true
	c.rotateLeft(1)

	c.Update()
	tolassert.EqualTol(t, -0.05, c.AzimuthalAngle(), testTol)

	positions := []math32.Vector3{cam.Pose.Pos}
	for i := 0; i < 400; i++ {
		c.Update()
		positions = append(positions, cam.Pose.Pos)
	}
	settled := positions[len(positions)-1]
	prev := positions[0].DistanceTo(settled)
	assert.Greater(t, prev, float32(0.5))
	for _, p := range positions[1:] {
		d := p.DistanceTo(settled)
		assert.LessOrEqual(t, d, prev+1e-5)
		prev = d
	}
	tolassert.EqualTol(t, -1, c.AzimuthalAngle(), 1e-3)
	assert.False(t, c.Update())

	// stop discards the remaining motion
	c.rotateLeft(1)
	c.Update()
	c.Stop()
	before := cam.Pose.Pos
	c.Update()
	assertVector3(t, before, cam.Pose.Pos, 1e-5)
}

func TestAzimuthWrap(t *testing.T) {
	cam := xyz.NewPerspectiveCamera()
	cam.SetPos(0, 0, -5)
	c := New(cam, events.NewElement(800, 600))
	tolassert.EqualTol(t, math32.Pi, math32.Abs(c.AzimuthalAngle()), testTol)

	// a range through the back of the target, across the Pi seam
	c.MinAzimuthAngle = 3 * math32.Pi / 4
	c.MaxAzimuthAngle = -3 * math32.Pi / 4

	c.rotateLeft(-0.5)
	c.Update()
	tolassert.EqualTol(t, -math32.Pi+0.5, c.AzimuthalAngle(), testTol)

	c.rotateLeft(-1)
	c.Update()
	tolassert.EqualTol(t, -3*math32.Pi/4, c.AzimuthalAngle(), testTol)

	c.rotateLeft(2)
	c.Update()
	tolassert.EqualTol(t, 3*math32.Pi/4, c.AzimuthalAngle(), testTol)

	// limits given outside of (-Pi, Pi] are normalized
	c.MinAzimuthAngle = -math32.Pi / 4
	c.MaxAzimuthAngle = math32.Pi/4 + 2*math32.Pi
	c.Update()
	tolassert.EqualTol(t, math32.Pi/4, c.AzimuthalAngle(), testTol)

	// infinite limits are unclamped
	c.ApplySettings(NewSettings())
	c.rotateLeft(-2)
	c.Update()
	tolassert.EqualTol(t, math32.Pi/4+2, c.AzimuthalAngle(), testTol)
}

func TestAzimuthFullCircle(t *testing.T) {
	cam := xyz.NewPerspectiveCamera()
	cam.SetPos(5, 0, 0)
	c := New(cam, events.NewElement(800, 600))
	tolassert.EqualTol(t, math32.Pi/2, c.AzimuthalAngle(), testTol)

	// limits on the seam span the whole circle
	c.MinAzimuthAngle = -math32.Pi
	c.MaxAzimuthAngle = math32.Pi
	c.Update()
	tolassert.EqualTol(t, math32.Pi/2, c.AzimuthalAngle(), testTol)
	assertVector3(t, math32.Vec3(5, 0, 0), cam.Pose.Pos, testTol)

	c.rotateLeft(0.3)
	c.Update()
	var theta float32 = math32.Pi/2 - 0.3
	tolassert.EqualTol(t, theta, c.AzimuthalAngle(), testTol)
	assertVector3(t, math32.Vec3(5*math32.Sin(theta), 0, 5*math32.Cos(theta)), cam.Pose.Pos, testTol)

	c.rotateLeft(3)
	c.Update()
	tolassert.EqualTol(t, theta-3, c.AzimuthalAngle(), testTol)

	// and on across the seam
	c.rotateLeft(2)
	c.Update()
	tolassert.EqualTol(t, theta-5+math32.TwoPi, c.AzimuthalAngle(), testTol)
}

func TestWheelDolly(t *testing.T) {
	c, _, el := newTestController()
	el.Wheel(400, 300, -100, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 4.75, c.Distance(), testTol)

	el.Wheel(400, 300, 100, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 5, c.Distance(), testTol)

	c.MaxDistance = 5.5
	el.Wheel(400, 300, 1000, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 5.5, c.Distance(), testTol)

	// line mode scrolls are scaled to pixels
	c.MaxDistance = math32.Infinity
	ws := events.NewScroll(math32.Vec2(400, 300), math32.Vec2(0, -100.0/16), 0)
	ws.DeltaMode = events.DeltaLine
	el.Send(ws)
	el.ProcessEvents()
	assert.True(t, ws.IsDefaultPrevented())
	tolassert.EqualTol(t, 5.5*0.95, c.Distance(), testTol)

	// no scroll zoom during a gesture
	el.MouseDown(events.Left, 400, 300, 0)
	el.Wheel(400, 300, -100, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 5.5*0.95, c.Distance(), testTol)

	c.EnableZoom = false
	el.MouseUp(events.Left, 400, 300, 0)
	el.Wheel(400, 300, -100, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 5.5*0.95, c.Distance(), testTol)
}

func TestMouseDolly(t *testing.T) {
	c, _, el := newTestController()
	el.MouseDrag(events.Middle, math32.Vec2(400, 300), math32.Vec2(400, 200), 1, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 4.75, c.Distance(), testTol)
}

func TestOrthographicZoom(t *testing.T) {
	oc := xyz.NewOrthographicCamera()
	oc.SetPos(0, 0, 5)
	el := events.NewElement(800, 600)
	c := New(oc, el)

	el.Wheel(400, 300, -100, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 1/0.95, oc.Zoom, testTol)
	tolassert.EqualTol(t, 5, c.Distance(), testTol)

	c.MaxZoom = 1.2
	el.Wheel(400, 300, -1000, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, 1.2, oc.Zoom, testTol)

	// panning moves by the view size over the surface size
	el.MouseDrag(events.Right, math32.Vec2(400, 300), math32.Vec2(480, 300), 2, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, -80*2/1.2/800, c.Target.X, testTol)

	c.Reset()
	tolassert.EqualTol(t, 1, oc.Zoom, testTol)
	assertVector3(t, math32.Vector3{}, c.Target, testTol)
}

func TestPanDrag(t *testing.T) {
	c, cam, el := newTestController()
	el.MouseDrag(events.Right, math32.Vec2(400, 300), math32.Vec2(460, 300), 2, 0)
	el.ProcessEvents()

	want := -2 * 60 * testHalfHeight / 600
	tolassert.EqualTol(t, want, c.Target.X, testTol)
	assertVector3(t, math32.Vec3(want, 0, 5), cam.Pose.Pos, testTol)
	assertVector3(t, math32.Vec3(0, 0, -1), cam.WorldDirection(), testTol)

	// with shift the left button pans and the right button rotates
	el.MouseDrag(events.Left, math32.Vec2(400, 300), math32.Vec2(400, 360), 2, modifiers(key.Shift))
	el.ProcessEvents()
	tolassert.EqualTol(t, 2*60*testHalfHeight/600, c.Target.Y, testTol)

	el.MouseDown(events.Right, 400, 300, modifiers(key.Control))
	el.ProcessEvents()
	assert.Equal(t, StateRotate, c.State())
	el.MouseUp(events.Right, 400, 300, 0)
	el.ProcessEvents()

	// panning in the plane orthogonal to up moves along the ground
	c.ScreenSpacePanning = false
	y := c.Target.Y
	el.MouseDrag(events.Right, math32.Vec2(400, 300), math32.Vec2(400, 360), 2, 0)
	el.ProcessEvents()
	tolassert.EqualTol(t, y, c.Target.Y, testTol)
	assert.Less(t, c.Target.Z, float32(0))
}

func TestTouchTransitions(t *testing.T) {
	c, _, el := newTestController()
	ends := 0
	c.OnEnd = func() { ends++ }

	el.TouchStart(1, 100, 100)
	el.ProcessEvents()
	assert.Equal(t, StateTouchRotate, c.State())

	// a second touch goes straight to the two finger gesture
	el.TouchStart(2, 200, 100)
	el.ProcessEvents()
	assert.Equal(t, StateTouchDollyPan, c.State())

	// spreading the fingers to twice the distance halves the distance
	el.TouchMove(2, 300, 100)
	el.ProcessEvents()
	tolassert.EqualTol(t, 2.5, c.Distance(), 1e-3)
	assert.NotEqual(t, float32(0), c.Target.X)

	el.TouchEnd(2, 300, 100)
	el.ProcessEvents()
	assert.Equal(t, StateTouchRotate, c.State())
	assert.Equal(t, 0, ends)

	el.TouchEnd(1, 100, 100)
	el.ProcessEvents()
	assert.Equal(t, StateNone, c.State())
	assert.Equal(t, 1, ends)

	c.Touches.One = Pan
	c.Touches.Two = DollyRotate
	el.TouchStart(3, 100, 100)
	el.ProcessEvents()
	assert.Equal(t, StateTouchPan, c.State())
	el.TouchStart(4, 100, 200)
	el.ProcessEvents()
	assert.Equal(t, StateTouchDollyRotate, c.State())

	// a third touch is not a gesture
	el.TouchStart(5, 300, 300)
	el.ProcessEvents()
	assert.Equal(t, StateNone, c.State())
}

func TestPointerCancel(t *testing.T) {
	c, _, el := newTestController()
	el.MouseDown(events.Left, 400, 300, 0)
	el.ProcessEvents()
	assert.Equal(t, StateRotate, c.State())

	el.Send(events.NewPointer(events.PointerCancel, events.Mouse, events.MousePointerID, events.NoButton, math32.Vec2(0, 0), 0))
	el.ProcessEvents()
	assert.Equal(t, StateNone, c.State())
	assert.False(t, el.HasPointerCapture(events.MousePointerID))

	// a gesture ends even when the controller is disabled during it
	el.TouchStart(1, 10, 10)
	el.ProcessEvents()
	assert.Equal(t, StateTouchRotate, c.State())
	c.Enabled = false
	el.TouchMove(1, 50, 10)
	el.TouchEnd(1, 50, 10)
	el.ProcessEvents()
	assert.Equal(t, StateNone, c.State())
	tolassert.EqualTol(t, 0, c.AzimuthalAngle(), testTol)

	el.MouseDown(events.Left, 400, 300, 0)
	el.ProcessEvents()
	assert.Equal(t, StateNone, c.State())
}

func TestKeys(t *testing.T) {
	c, cam, _ := newTestController()
	win := events.NewElement(1024, 768)
	c.ListenToKeyEvents(win)

	win.KeyPress(key.CodeUpArrow, 0)
	win.ProcessEvents()
	want := 2 * 7 * testHalfHeight / 600
	tolassert.EqualTol(t, want, c.Target.Y, testTol)
	tolassert.EqualTol(t, want, cam.Pose.Pos.Y, testTol)

	win.KeyPress(key.CodeLeftArrow, modifiers(key.Shift))
	win.ProcessEvents()
	tolassert.EqualTol(t, -math32.TwoPi/600, c.AzimuthalAngle(), testTol)
	tolassert.EqualTol(t, want, c.Target.Y, testTol)

	// saved views
	win.KeyPress(key.Code1, modifiers(key.Control))
	win.ProcessEvents()
	assert.Equal(t, []string{"1"}, c.Views())
	saved := cam.Pose.Pos

	win.KeyPress(key.CodeRightArrow, 0)
	win.ProcessEvents()
	assert.NotEqual(t, float32(0), c.Target.X)

	win.KeyPress(key.Code1, 0)
	win.ProcessEvents()
	assertVector3(t, saved, cam.Pose.Pos, testTol)
	tolassert.EqualTol(t, 0, c.Target.X, testTol)

	assert.ErrorIs(t, c.RestoreView("9"), ErrNoSavedState)
	c.DeleteView("1")
	assert.Empty(t, c.Views())

	// space resets to the initial view
	win.KeyPress(key.CodeSpacebar, 0)
	win.ProcessEvents()
	assertVector3(t, math32.Vec3(0, 0, 5), cam.Pose.Pos, testTol)
	assertVector3(t, math32.Vector3{}, c.Target, testTol)

	c.StopListenToKeyEvents()
	win.KeyPress(key.CodeUpArrow, 0)
	win.ProcessEvents()
	assertVector3(t, math32.Vector3{}, c.Target, testTol)
}

func TestZoomToCursor(t *testing.T) {
	c, cam, el := newTestController()
	c.ZoomToCursor = true
	el.Wheel(400, 300, -100, 0)
	el.ProcessEvents()
	assertVector3(t, math32.Vec3(0, 0, 4.75), cam.Pose.Pos, 1e-3)
	assertVector3(t, math32.Vector3{}, c.Target, 1e-3)

	// zooming toward a point off center moves the camera toward it
	el.Wheel(700, 300, -100, 0)
	el.ProcessEvents()
	assert.Greater(t, cam.Pose.Pos.X, float32(0))
	assert.Greater(t, c.Target.X, float32(0))
	tolassert.EqualTol(t, 4.75*0.95, c.Distance(), 1e-3)
}

func TestAutoRotate(t *testing.T) {
	c, _, _ := newTestController()
	c.AutoRotate = true
	assert.True(t, c.Update())
	tolassert.EqualTol(t, -math32.TwoPi/3600*2, c.AzimuthalAngle(), testTol)

	c.ApplySettings(NewSettings())
	before := c.AzimuthalAngle()
	c.AutoRotate = true
	c.UpdateDelta(time.Second / 10)
	tolassert.EqualTol(t, before-math32.TwoPi/60*2/10, c.AzimuthalAngle(), testTol)
}

func TestResetSaveState(t *testing.T) {
	c, cam, _ := newTestController()
	changes := 0
	c.OnChange = func() { changes++ }

	c.Target.Set(1, 0, 0)
	cam.SetPos(1, 2, 3)
	c.SaveState()
	c.Target.Set(0, 0, 0)
	cam.SetPos(4, 4, 4)
	c.Update()

	c.Reset()
	assertVector3(t, math32.Vec3(1, 0, 0), c.Target, testTol)
	assertVector3(t, math32.Vec3(1, 2, 3), cam.Pose.Pos, testTol)
	assert.Equal(t, StateNone, c.State())
	assert.GreaterOrEqual(t, changes, 2)
}

func TestDispose(t *testing.T) {
	c, cam, el := newTestController()
	win := events.NewElement(800, 600)
	c.ListenToKeyEvents(win)
	c.Dispose()
	assert.Equal(t, 0, el.Listeners.Len(events.PointerDown))
	assert.Equal(t, 0, el.Listeners.Len(events.Scroll))
	assert.Equal(t, 0, win.Listeners.Len(events.KeyDown))

	el.MouseDrag(events.Left, math32.Vec2(400, 300), math32.Vec2(550, 300), 3, 0)
	el.ProcessEvents()
	assertVector3(t, math32.Vec3(0, 0, 5), cam.Pose.Pos, 1e-5)
}

func TestContextMenu(t *testing.T) {
	_, _, el := newTestController()
	ev := events.NewEvent(events.ContextMenu, 0)
	el.Dispatch(ev)
	assert.True(t, ev.IsDefaultPrevented())
}

type testCamera struct {
	xyz.CameraBase
}

func (tc *testCamera) UpdateProjectionMatrix() {}

func TestUnsupportedCamera(t *testing.T) {
	cam := tree.Init(&testCamera{})
	cam.SetPos(0, 0, 5)
	el := events.NewElement(800, 600)
	c := New(cam, el)
	require.True(t, c.EnablePan)

	el.MouseDrag(events.Right, math32.Vec2(400, 300), math32.Vec2(460, 300), 2, 0)
	el.ProcessEvents()
	assert.False(t, c.EnablePan)
	assertVector3(t, math32.Vector3{}, c.Target, testTol)

	el.Wheel(400, 300, -100, 0)
	el.ProcessEvents()
	assert.False(t, c.EnableZoom)
	tolassert.EqualTol(t, 5, c.Distance(), testTol)

	// rotation still works
	el.MouseDrag(events.Left, math32.Vec2(400, 300), math32.Vec2(550, 300), 3, 0)
	el.ProcessEvents()
	assertVector3(t, math32.Vec3(-5, 0, 0), cam.Pose.Pos, testTol)
}
