// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit provides a camera controller that orbits a camera
// around a target point in response to pointer, touch, scroll, and
// key input, keeping the camera upright.
//
// Rotating converts pointer motion into changes of the spherical
// coordinates of the camera relative to the target: the polar angle
// from the camera up direction, and the azimuth around it. Dollying
// scales the distance to the target (or the zoom of an orthographic
// camera), and panning moves the camera and target together.
//
// The controller is driven by a single goroutine: input events are
// handled by [Controller.HandleEvent], and [Controller.Update] is
// called once per frame to apply the pending motion.
package orbit

import (
	"log/slog"
	"math"
	"time"

	"cogentcore.org/scenegraph/events"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/xyz"
)

// ChangeThreshold is the squared displacement, and the squared angle
// in radians, below which [Controller.Update] reports no change.
var ChangeThreshold = 1e-6

// tiltLimit is the cosine of the angle from the up direction beyond
// which zooming to the cursor keeps the target on the up plane.
var tiltLimit = math32.Cos(70 * math32.DegToRadFactor)

// Controller orbits a camera around [Controller.Target].
// Create one with [New].
type Controller struct {
	Settings

	// Object is the camera being controlled.
	Object xyz.Camera

	// Surface delivers the pointer and scroll events.
	Surface events.Surface

	// Target is the point that the camera orbits around and looks at.
	Target math32.Vector3

	// Cursor is the center of the sphere that the target is kept in,
	// see [Settings.MaxTargetRadius].
	Cursor math32.Vector3

	// OnChange is called when the controller has changed the camera.
	OnChange func()

	// OnStart is called when a gesture starts.
	OnStart func()

	// OnEnd is called when a gesture ends.
	OnEnd func()

	state States

	// spherical is the camera position relative to the target
	// as of the last update.
	spherical math32.Spherical

	// pending motion, consumed by Update
	sphericalDelta    math32.Spherical
	scale             float32
	panOffset         math32.Vector3
	performCursorZoom bool

	rotateStart math32.Vector2
	panStart    math32.Vector2
	dollyStart  math32.Vector2

	// mouse is the cursor position for ZoomToCursor,
	// in normalized device coordinates.
	mouse          math32.Vector2
	dollyDirection math32.Vector3

	// pointers are the IDs of the active pointers, in order of arrival.
	pointers         []int
	pointerPositions map[int]math32.Vector2

	lastPosition math32.Vector3
	lastQuat     math32.Quat
	lastTarget   math32.Vector3

	saved viewState
	views map[string]viewState

	listeners   []events.ListenerID
	keySurface  events.Surface
	keyListener events.ListenerID
}

// New returns a new [Controller] for the given camera, listening to
// events from the given surface. The camera must have its pose set,
// and is oriented toward the target (the origin) immediately.
func New(cam xyz.Camera, surface events.Surface) *Controller {
	c := &Controller{Object: cam, Surface: surface}
	c.Defaults()
	c.scale = 1
	c.pointerPositions = map[int]math32.Vector2{}
	c.views = map[string]viewState{}
	for _, typ := range []events.Types{events.PointerDown, events.PointerMove, events.PointerUp,
		events.PointerCancel, events.Scroll, events.ContextMenu} {
		c.listeners = append(c.listeners, surface.AddListener(typ, c.HandleEvent))
	}
	c.SaveState()
	c.Update()
	return c
}

// ApplySettings sets the settings of the controller.
func (c *Controller) ApplySettings(s *Settings) {
	c.Settings = *s
}

// State returns the current gesture state.
func (c *Controller) State() States {
	return c.state
}

// PolarAngle returns the current polar angle of the camera in radians,
// measured from the up direction.
func (c *Controller) PolarAngle() float32 {
	return c.spherical.Phi
}

// AzimuthalAngle returns the current horizontal rotation of the camera
// in radians.
func (c *Controller) AzimuthalAngle() float32 {
	return c.spherical.Theta
}

// Distance returns the distance from the camera to the target.
func (c *Controller) Distance() float32 {
	return c.Object.AsNode().Pose.Pos.DistanceTo(c.Target)
}

// Update applies the pending motion to the camera, orienting it toward
// the target, and returns whether the camera changed. It must be called
// every frame when damping or auto rotation is enabled. Auto rotation
// assumes 60 frames per second; see [Controller.UpdateDelta].
func (c *Controller) Update() bool {
	return c.UpdateDelta(0)
}

// UpdateDelta is [Controller.Update] with the time since the last
// frame, used for frame rate independent auto rotation.
func (c *Controller) UpdateDelta(dt time.Duration) bool {
	nb := c.Object.AsNode()
	pc, oc := c.cameras()

	// rotate the offset into a y-up frame
	var quat math32.Quat
	quat.SetFromUnitVectors(nb.Up, math32.Vec3(0, 1, 0))
	quatInverse := quat.Inverse()

	offset := nb.Pose.Pos.Sub(c.Target).MulQuat(quat)
	c.spherical.SetFromVector3(offset)

	if c.AutoRotate && c.state == StateNone {
		c.rotateLeft(c.autoRotationAngle(dt))
	}

	if c.EnableDamping {
		c.spherical.Theta += c.sphericalDelta.Theta * c.DampingFactor
		c.spherical.Phi += c.sphericalDelta.Phi * c.DampingFactor
	} else {
		c.spherical.Theta += c.sphericalDelta.Theta
		c.spherical.Phi += c.sphericalDelta.Phi
	}

	c.spherical.Theta = clampAzimuth(c.spherical.Theta, c.MinAzimuthAngle, c.MaxAzimuthAngle)
	c.spherical.Phi = math32.Clamp(c.spherical.Phi, c.MinPolarAngle, c.MaxPolarAngle)
	c.spherical.MakeSafe()

	if c.EnableDamping {
		c.Target.SetAddScaled(c.panOffset, c.DampingFactor)
	} else {
		c.Target.SetAdd(c.panOffset)
	}
	c.Target = c.Target.Sub(c.Cursor).ClampLength(c.MinTargetRadius, c.MaxTargetRadius).Add(c.Cursor)

	zoomChanged := false
	if (c.ZoomToCursor && c.performCursorZoom) || oc != nil {
		c.spherical.Radius = c.clampDistance(c.spherical.Radius)
	} else {
		prevRadius := c.spherical.Radius
		c.spherical.Radius = c.clampDistance(c.spherical.Radius * c.scale)
		zoomChanged = prevRadius != c.spherical.Radius
	}

	offset = c.spherical.Vector3().MulQuat(quatInverse)
	nb.Pose.Pos = c.Target.Add(offset)
	nb.LookAt(c.Target)

	if c.EnableDamping {
		c.sphericalDelta.Theta *= 1 - c.DampingFactor
		c.sphericalDelta.Phi *= 1 - c.DampingFactor
		c.panOffset.SetMulScalar(1 - c.DampingFactor)
	} else {
		c.sphericalDelta = math32.Spherical{}
		c.panOffset.SetZero()
	}

	switch {
	case c.ZoomToCursor && c.performCursorZoom:
		if c.zoomToCursor(offset.Length(), pc, oc) {
			zoomChanged = true
		}
	case oc != nil:
		prevZoom := oc.Zoom
		oc.Zoom = math32.Clamp(oc.Zoom/c.scale, c.MinZoom, c.MaxZoom)
		if prevZoom != oc.Zoom {
			oc.UpdateProjectionMatrix()
			zoomChanged = true
		}
	}

	c.scale = 1
	c.performCursorZoom = false

	// change if min(displacement, rotation in radians)^2 > threshold,
	// using the small angle approximation cos(x/2) = 1 - x^2 / 8
	if zoomChanged ||
		float64(c.lastPosition.DistanceToSquared(nb.Pose.Pos)) > ChangeThreshold ||
		8*(1-quatCos(c.lastQuat, nb.Pose.Quat)) > ChangeThreshold ||
		float64(c.lastTarget.DistanceToSquared(c.Target)) > ChangeThreshold {
		c.lastPosition = nb.Pose.Pos
		c.lastQuat = nb.Pose.Quat
		c.lastTarget = c.Target
		c.emit(c.OnChange)
		return true
	}
	return false
}

// zoomToCursor moves the camera toward the cursor by the pending dolly
// scale, and moves the target to stay in front of the camera. It returns
// whether the camera changed.
func (c *Controller) zoomToCursor(radius float32, pc *xyz.PerspectiveCamera, oc *xyz.OrthographicCamera) bool {
	nb := c.Object.AsNode()
	changed := false
	var newRadius float32
	switch {
	case pc != nil:
		prevRadius := radius
		newRadius = c.clampDistance(prevRadius * c.scale)
		radiusDelta := prevRadius - newRadius
		nb.Pose.Pos.SetAddScaled(c.dollyDirection, radiusDelta)
		c.Object.UpdateMatrixWorld(false)
		changed = radiusDelta != 0
	case oc != nil:
		cb := oc.AsCamera()
		c.Object.UpdateWorldMatrix(true, false)
		before := cb.Unproject(math32.Vec3(c.mouse.X, c.mouse.Y, 0))
		prevZoom := oc.Zoom
		oc.Zoom = math32.Clamp(oc.Zoom/c.scale, c.MinZoom, c.MaxZoom)
		oc.UpdateProjectionMatrix()
		changed = prevZoom != oc.Zoom
		after := cb.Unproject(math32.Vec3(c.mouse.X, c.mouse.Y, 0))
		nb.Pose.Pos = nb.Pose.Pos.Sub(after).Add(before)
		c.Object.UpdateMatrixWorld(false)
		newRadius = radius
	default:
		slog.Warn("orbit.Controller: unsupported camera type, zoom to cursor disabled", "camera", nb.Name)
		c.ZoomToCursor = false
		return false
	}

	dir := math32.Vec3(0, 0, -1).MulDirMatrix4(&nb.Pose.Matrix)
	if c.ScreenSpacePanning {
		// keep the target in front of the new camera position
		c.Target = nb.Pose.Pos.Add(dir.MulScalar(newRadius))
		return changed
	}
	// move the target along the view ray to the plane orthogonal to up,
	// unless the camera is close to horizontal
	if math32.Abs(nb.Up.Dot(dir)) < tiltLimit {
		nb.LookAt(c.Target)
		return changed
	}
	denom := nb.Up.Dot(dir)
	t := c.Target.Sub(nb.Pose.Pos).Dot(nb.Up) / denom
	if t >= 0 {
		c.Target = nb.Pose.Pos.Add(dir.MulScalar(t))
	}
	return changed
}

// Stop discards any pending motion, including damped motion
// continuing from a finished gesture.
func (c *Controller) Stop() {
	c.sphericalDelta = math32.Spherical{}
	c.panOffset.SetZero()
	c.scale = 1
	c.performCursorZoom = false
}

// Dispose removes all of the event listeners of the controller.
// The controller must not be used after.
func (c *Controller) Dispose() {
	for _, id := range c.listeners {
		c.Surface.RemoveListener(id)
	}
	c.listeners = nil
	c.StopListenToKeyEvents()
	for _, id := range c.pointers {
		c.Surface.ReleasePointerCapture(id)
	}
	c.pointers = nil
	clear(c.pointerPositions)
	c.state = StateNone
}

// cameras returns the camera as one of the supported kinds,
// or both nil if it is neither.
func (c *Controller) cameras() (*xyz.PerspectiveCamera, *xyz.OrthographicCamera) {
	switch cam := c.Object.(type) {
	case *xyz.PerspectiveCamera:
		return cam, nil
	case *xyz.OrthographicCamera:
		return nil, cam
	}
	return nil, nil
}

func (c *Controller) emit(fun func()) {
	if fun != nil {
		fun()
	}
}

func (c *Controller) autoRotationAngle(dt time.Duration) float32 {
	if dt > 0 {
		return math32.TwoPi / 60 * c.AutoRotateSpeed * float32(dt.Seconds())
	}
	return math32.TwoPi / 60 / 60 * c.AutoRotateSpeed
}

func (c *Controller) zoomScale(delta float32) float32 {
	normalized := math32.Abs(delta * 0.01)
	return math32.Pow(0.95, c.ZoomSpeed*normalized)
}

func (c *Controller) rotateLeft(angle float32) {
	c.sphericalDelta.Theta -= angle
}

func (c *Controller) rotateUp(angle float32) {
	c.sphericalDelta.Phi -= angle
}

// panLeft pans along the camera x axis.
func (c *Controller) panLeft(distance float32, m *math32.Matrix4) {
	var v math32.Vector3
	v.SetFromMatrixCol(m, 0)
	c.panOffset.SetAdd(v.MulScalar(-distance))
}

// panUp pans along the camera y axis, or along the direction
// orthogonal to the camera x axis and the up direction.
func (c *Controller) panUp(distance float32, m *math32.Matrix4) {
	var v math32.Vector3
	if c.ScreenSpacePanning {
		v.SetFromMatrixCol(m, 1)
	} else {
		v.SetFromMatrixCol(m, 0)
		v = c.Object.AsNode().Up.Cross(v)
	}
	c.panOffset.SetAdd(v.MulScalar(distance))
}

// pan pans by the given pixel deltas on the surface.
func (c *Controller) pan(deltaX, deltaY float32) {
	nb := c.Object.AsNode()
	m := math32.Matrix4FromTransform(nb.Pose.Pos, nb.Pose.Quat, nb.Pose.Scale)
	size := c.Surface.Size()
	switch cam := c.Object.(type) {
	case *xyz.PerspectiveCamera:
		// half of the fov is center to top of screen
		targetDistance := nb.Pose.Pos.Sub(c.Target).Length()
		targetDistance *= math32.Tan(0.5 * cam.FOV * math32.DegToRadFactor)
		// only the height is used, so that aspect ratio does not distort speed
		c.panLeft(2*deltaX*targetDistance/size.Y, m)
		c.panUp(2*deltaY*targetDistance/size.Y, m)
	case *xyz.OrthographicCamera:
		c.panLeft(deltaX*(cam.Right-cam.Left)/cam.Zoom/size.X, m)
		c.panUp(deltaY*(cam.Top-cam.Bottom)/cam.Zoom/size.Y, m)
	default:
		slog.Warn("orbit.Controller: unsupported camera type, pan disabled", "camera", nb.Name)
		c.EnablePan = false
	}
}

func (c *Controller) dollyOut(dollyScale float32) {
	if !c.dollySupported() {
		return
	}
	c.scale /= dollyScale
}

func (c *Controller) dollyIn(dollyScale float32) {
	if !c.dollySupported() {
		return
	}
	c.scale *= dollyScale
}

func (c *Controller) dollySupported() bool {
	if pc, oc := c.cameras(); pc != nil || oc != nil {
		return true
	}
	slog.Warn("orbit.Controller: unsupported camera type, zoom disabled", "camera", c.Object.AsNode().Name)
	c.EnableZoom = false
	return false
}

// updateZoomParameters records the cursor position for ZoomToCursor.
func (c *Controller) updateZoomParameters(pos math32.Vector2) {
	if !c.ZoomToCursor {
		return
	}
	c.performCursorZoom = true
	size := c.Surface.Size()
	c.mouse.X = pos.X/size.X*2 - 1
	c.mouse.Y = -(pos.Y/size.Y)*2 + 1

	c.Object.UpdateWorldMatrix(true, false)
	cb := c.Object.AsCamera()
	far := cb.Unproject(math32.Vec3(c.mouse.X, c.mouse.Y, 1))
	c.dollyDirection = far.Sub(cb.Pose.Pos).Normal()
}

func (c *Controller) clampDistance(dist float32) float32 {
	return math32.Max(c.MinDistance, math32.Min(c.MaxDistance, dist))
}

// clampAzimuth clamps theta into [min, max]. Limits outside of
// [-Pi, Pi] are shifted by one turn, and a range with min > max wraps
// through Pi. Infinite limits leave theta unclamped.
func clampAzimuth(theta, min, max float32) float32 {
	if !math32.IsFinite(min) || !math32.IsFinite(max) {
		return theta
	}
	min = wrapLimit(min)
	max = wrapLimit(max)
	theta = math32.WrapAngle(theta)
	if min <= max {
		return math32.Clamp(theta, min, max)
	}
	if theta > (min+max)/2 {
		return math32.Max(min, theta)
	}
	return math32.Min(max, theta)
}

// wrapLimit shifts an azimuth limit by one turn if it is outside of
// [-Pi, Pi]. Unlike [math32.WrapAngle], -Pi is kept as is, so that
// [-Pi, Pi] remains the full circle.
func wrapLimit(a float32) float32 {
	switch {
	case a < -math32.Pi:
		return a + math32.TwoPi
	case a > math32.Pi:
		return a - math32.TwoPi
	}
	return a
}

// quatCos returns the dot product of the normalized quaternions,
// which is the cosine of half the angle between them.
func quatCos(a, b math32.Quat) float64 {
	dot := float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y) + float64(a.Z)*float64(b.Z) + float64(a.W)*float64(b.W)
	la := float64(a.X)*float64(a.X) + float64(a.Y)*float64(a.Y) + float64(a.Z)*float64(a.Z) + float64(a.W)*float64(a.W)
	lb := float64(b.X)*float64(b.X) + float64(b.Y)*float64(b.Y) + float64(b.Z)*float64(b.Z) + float64(b.W)*float64(b.W)
	if la == 0 || lb == 0 {
		return 0
	}
	return dot / math.Sqrt(la*lb)
}
