// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/reflectx"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
)

// Camera is a node that defines a view of the scene for the renderer.
// A camera looks down its local negative Z axis, with positive Y up.
type Camera interface {
	Node

	// AsCamera returns the [CameraBase] for this Camera.
	AsCamera() *CameraBase

	// UpdateProjectionMatrix recomputes the projection matrix and its
	// inverse from the intrinsic parameters of the camera. It must be
	// called after changing any of them; the update pass does not call it.
	UpdateProjectionMatrix()
}

// CameraBase provides the view and projection matrices shared by
// all camera kinds.
type CameraBase struct {
	NodeBase

	// MatrixWorldInverse is the view matrix, the inverse of the world matrix.
	// It is updated together with the world matrix.
	MatrixWorldInverse math32.Matrix4 `display:"-"`

	// ProjectionMatrix is the projection transform from view space
	// to normalized device coordinates.
	ProjectionMatrix math32.Matrix4 `display:"-"`

	// ProjectionMatrixInverse is the inverse of ProjectionMatrix.
	ProjectionMatrixInverse math32.Matrix4 `display:"-"`
}

func (cb *CameraBase) AsCamera() *CameraBase {
	return cb
}

func (cb *CameraBase) IsCamera() bool {
	return true
}

func (cb *CameraBase) Init() {
	cb.NodeBase.Init()
	cb.MatrixWorldInverse.SetIdentity()
	cb.ProjectionMatrix.SetIdentity()
	cb.ProjectionMatrixInverse.SetIdentity()
}

// updateWorldInverse sets MatrixWorldInverse from the world matrix.
func (cb *CameraBase) updateWorldInverse() {
	errors.Log(cb.MatrixWorldInverse.SetInverse(&cb.Pose.WorldMatrix))
}

// updateProjectionInverse sets ProjectionMatrixInverse from ProjectionMatrix.
func (cb *CameraBase) updateProjectionInverse() {
	errors.Log(cb.ProjectionMatrixInverse.SetInverse(&cb.ProjectionMatrix))
}

// UpdateMatrixWorld runs the update pass and then updates
// [CameraBase.MatrixWorldInverse].
func (cb *CameraBase) UpdateMatrixWorld(force bool) {
	cb.NodeBase.UpdateMatrixWorld(force)
	cb.updateWorldInverse()
}

// UpdateWorldMatrix updates the world matrix and then
// [CameraBase.MatrixWorldInverse].
func (cb *CameraBase) UpdateWorldMatrix(updateParents, updateChildren bool) {
	cb.NodeBase.UpdateWorldMatrix(updateParents, updateChildren)
	cb.updateWorldInverse()
}

// Project maps the given world position to normalized device coordinates,
// where the visible volume spans -1 to 1 on each axis.
func (cb *CameraBase) Project(v math32.Vector3) math32.Vector3 {
	return v.MulMatrix4(&cb.MatrixWorldInverse).MulMatrix4(&cb.ProjectionMatrix)
}

// Unproject maps the given normalized device coordinates to world space.
func (cb *CameraBase) Unproject(v math32.Vector3) math32.Vector3 {
	return v.Unproject(&cb.ProjectionMatrixInverse, &cb.Pose.WorldMatrix)
}

// ViewMainAxis returns the world dimension along which the camera view
// direction is largest, along with the sign of that axis
// (+1 for positive, -1 for negative).
func (cb *CameraBase) ViewMainAxis() (dim math32.Dims, sign float32) {
	vv := cb.WorldDirection()
	va := vv.Abs()
	switch {
	case va.X > va.Y && va.X > va.Z:
		return math32.X, math32.Sign(vv.X)
	case va.Y > va.X && va.Y > va.Z:
		return math32.Y, math32.Sign(vv.Y)
	default:
		return math32.Z, math32.Sign(vv.Z)
	}
}

// ViewOffset describes a sub-region of a larger virtual view, as used
// for multi-monitor or tiled rendering.
type ViewOffset struct {

	// Enabled is whether the view offset applies.
	Enabled bool

	// FullWidth and FullHeight are the size of the full view.
	FullWidth, FullHeight float32

	// OffsetX and OffsetY are the offset of the sub-view within the full view.
	OffsetX, OffsetY float32

	// Width and Height are the size of the sub-view.
	Width, Height float32
}

func (vo *ViewOffset) set(fullWidth, fullHeight, x, y, width, height float32) {
	*vo = ViewOffset{Enabled: true, FullWidth: fullWidth, FullHeight: fullHeight,
		OffsetX: x, OffsetY: y, Width: width, Height: height}
}

// PerspectiveCamera is a camera with a perspective projection, defined
// by a vertical field of view and an aspect ratio.
type PerspectiveCamera struct {
	CameraBase

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"50"`

	// Aspect is the aspect ratio (width / height) of the view.
	Aspect float32 `default:"1"`

	// Near is the distance to the near clipping plane.
	Near float32 `default:"0.1"`

	// Far is the distance to the far clipping plane.
	Far float32 `default:"2000"`

	// Zoom scales the view; values above 1 magnify.
	Zoom float32 `default:"1"`

	// Focus is the object distance used for stereoscopy and depth of field.
	Focus float32 `default:"10"`

	// FilmGauge is the film size in millimeters used for the larger axis.
	FilmGauge float32 `default:"35"`

	// FilmOffset is the horizontal off-center offset in the same unit as FilmGauge.
	FilmOffset float32

	// View is the optional sub-view offset.
	View ViewOffset
}

var _ Camera = &PerspectiveCamera{}

// NewPerspectiveCamera returns a new [PerspectiveCamera] with default
// parameters, added to the given parent if any.
func NewPerspectiveCamera(parent ...tree.Node) *PerspectiveCamera {
	return tree.Init(&PerspectiveCamera{}, parent...)
}

func (pc *PerspectiveCamera) Init() {
	pc.CameraBase.Init()
	errors.Log(reflectx.SetFromDefaultTags(pc))
	pc.UpdateProjectionMatrix()
}

// FilmWidth returns the width of the film in the unit of FilmGauge.
func (pc *PerspectiveCamera) FilmWidth() float32 {
	return pc.FilmGauge * math32.Min(pc.Aspect, 1)
}

// FilmHeight returns the height of the film in the unit of FilmGauge.
func (pc *PerspectiveCamera) FilmHeight() float32 {
	return pc.FilmGauge / math32.Max(pc.Aspect, 1)
}

// EffectiveFOV returns the vertical field of view in degrees
// after applying Zoom.
func (pc *PerspectiveCamera) EffectiveFOV() float32 {
	return math32.RadToDeg(2 * math32.Atan(math32.Tan(math32.DegToRad(0.5*pc.FOV))/pc.Zoom))
}

// FocalLength returns the focal length for the current FOV and FilmGauge.
func (pc *PerspectiveCamera) FocalLength() float32 {
	vExtentSlope := math32.Tan(math32.DegToRad(0.5 * pc.FOV))
	return 0.5 * pc.FilmHeight() / vExtentSlope
}

// SetFocalLength sets the FOV from the given focal length, relative to
// the current FilmGauge, and updates the projection.
func (pc *PerspectiveCamera) SetFocalLength(focalLength float32) {
	vExtentSlope := 0.5 * pc.FilmHeight() / focalLength
	pc.FOV = math32.RadToDeg(2 * math32.Atan(vExtentSlope))
	pc.UpdateProjectionMatrix()
}

// SetViewOffset renders only the given sub-region of a full view of the
// given size, and updates the projection.
func (pc *PerspectiveCamera) SetViewOffset(fullWidth, fullHeight, x, y, width, height float32) {
	pc.Aspect = fullWidth / fullHeight
	pc.View.set(fullWidth, fullHeight, x, y, width, height)
	pc.UpdateProjectionMatrix()
}

// ClearViewOffset removes any view offset and updates the projection.
func (pc *PerspectiveCamera) ClearViewOffset() {
	pc.View.Enabled = false
	pc.UpdateProjectionMatrix()
}

func (pc *PerspectiveCamera) UpdateProjectionMatrix() {
	near := pc.Near
	top := near * math32.Tan(math32.DegToRad(0.5*pc.FOV)) / pc.Zoom
	height := 2 * top
	width := pc.Aspect * height
	left := -0.5 * width

	if vw := &pc.View; vw.Enabled {
		left += vw.OffsetX * width / vw.FullWidth
		top -= vw.OffsetY * height / vw.FullHeight
		width *= vw.Width / vw.FullWidth
		height *= vw.Height / vw.FullHeight
	}
	if pc.FilmOffset != 0 {
		left += near * pc.FilmOffset / pc.FilmWidth()
	}
	pc.ProjectionMatrix.SetFrustum(left, left+width, top-height, top, near, pc.Far)
	pc.updateProjectionInverse()
}

// OrthographicCamera is a camera with an orthographic projection,
// in which size does not change with distance.
type OrthographicCamera struct {
	CameraBase

	// Left is the left plane of the view volume.
	Left float32 `default:"-1"`

	// Right is the right plane of the view volume.
	Right float32 `default:"1"`

	// Top is the top plane of the view volume.
	Top float32 `default:"1"`

	// Bottom is the bottom plane of the view volume.
	Bottom float32 `default:"-1"`

	// Near is the distance to the near clipping plane.
	Near float32 `default:"0.1"`

	// Far is the distance to the far clipping plane.
	Far float32 `default:"2000"`

	// Zoom scales the view; values above 1 magnify.
	Zoom float32 `default:"1"`

	// View is the optional sub-view offset.
	View ViewOffset
}

var _ Camera = &OrthographicCamera{}

// NewOrthographicCamera returns a new [OrthographicCamera] spanning
// -1 to 1 on each axis, added to the given parent if any.
func NewOrthographicCamera(parent ...tree.Node) *OrthographicCamera {
	return tree.Init(&OrthographicCamera{}, parent...)
}

func (oc *OrthographicCamera) Init() {
	oc.CameraBase.Init()
	errors.Log(reflectx.SetFromDefaultTags(oc))
	oc.UpdateProjectionMatrix()
}

// SetViewOffset renders only the given sub-region of a full view of the
// given size, and updates the projection.
func (oc *OrthographicCamera) SetViewOffset(fullWidth, fullHeight, x, y, width, height float32) {
	oc.View.set(fullWidth, fullHeight, x, y, width, height)
	oc.UpdateProjectionMatrix()
}

// ClearViewOffset removes any view offset and updates the projection.
func (oc *OrthographicCamera) ClearViewOffset() {
	oc.View.Enabled = false
	oc.UpdateProjectionMatrix()
}

func (oc *OrthographicCamera) UpdateProjectionMatrix() {
	dx := (oc.Right - oc.Left) / (2 * oc.Zoom)
	dy := (oc.Top - oc.Bottom) / (2 * oc.Zoom)
	cx := (oc.Right + oc.Left) / 2
	cy := (oc.Top + oc.Bottom) / 2

	left := cx - dx
	right := cx + dx
	top := cy + dy
	bottom := cy - dy

	if vw := &oc.View; vw.Enabled {
		scaleW := (oc.Right - oc.Left) / vw.FullWidth / oc.Zoom
		scaleH := (oc.Top - oc.Bottom) / vw.FullHeight / oc.Zoom
		left += scaleW * vw.OffsetX
		right = left + scaleW*vw.Width
		top -= scaleH * vw.OffsetY
		bottom = top - scaleH*vw.Height
	}
	oc.ProjectionMatrix.SetOrthographic(left, right, top, bottom, oc.Near, oc.Far)
	oc.updateProjectionInverse()
}
