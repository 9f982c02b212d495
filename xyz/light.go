// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/tree"
)

// Light is a node that illuminates a scene.
type Light interface {
	Node

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {
	NodeBase

	// On is whether the light is turned on.
	On bool

	// Intensity is the strength of the light, which is multiplied by the color.
	Intensity float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

func (lb *LightBase) IsLight() bool {
	return true
}

func (lb *LightBase) Init() {
	lb.NodeBase.Init()
	lb.On = true
	lb.Intensity = 1
	lb.Color = color.RGBA{255, 255, 255, 255}
}

// AmbientLight provides diffuse uniform lighting; typically only one
// of these is in a [Scene]. Its pose has no effect.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight returns a new [AmbientLight], added to the given parent if any.
func NewAmbientLight(parent ...tree.Node) *AmbientLight {
	return tree.Init(&AmbientLight{}, parent...)
}

// PointLight is an omnidirectional light with a position
// and associated decay factors.
type PointLight struct {
	LightBase

	// Distance is the maximum range of the light; 0 means no limit.
	Distance float32

	// Decay is the amount the light dims along the distance of the light.
	Decay float32
}

// NewPointLight returns a new [PointLight], added to the given parent if any.
func NewPointLight(parent ...tree.Node) *PointLight {
	return tree.Init(&PointLight{}, parent...)
}

func (pl *PointLight) Init() {
	pl.LightBase.Init()
	pl.Decay = 2
}

// DirectionalLight is a light that shines from its position toward its
// target, with no attenuation, like the Sun. Only the direction matters.
type DirectionalLight struct {
	LightBase

	// Target is the node the light points at. It need not be in the
	// scene; when nil, the light points at the world origin.
	Target Node `copier:"-"`
}

// NewDirectionalLight returns a new [DirectionalLight] placed overhead,
// added to the given parent if any.
func NewDirectionalLight(parent ...tree.Node) *DirectionalLight {
	return tree.Init(&DirectionalLight{}, parent...)
}

func (dl *DirectionalLight) Init() {
	dl.LightBase.Init()
	dl.Pose.Pos = DefaultUp
	dl.UpdateMatrix()
}

// Direction returns the normalized world direction the light shines in.
func (dl *DirectionalLight) Direction() math32.Vector3 {
	return lightDirection(&dl.NodeBase, dl.Target)
}

// SpotLight is a light with a position and a direction toward its
// target, and a cone angle limiting its spread.
type SpotLight struct {
	LightBase

	// Target is the node the light points at. It need not be in the
	// scene; when nil, the light points at the world origin.
	Target Node `copier:"-"`

	// Angle is the maximum extent of the cone, in radians.
	Angle float32

	// Penumbra is the fraction of the cone that is attenuated at the edge, 0 to 1.
	Penumbra float32

	// Distance is the maximum range of the light; 0 means no limit.
	Distance float32

	// Decay is the amount the light dims along the distance of the light.
	Decay float32
}

// NewSpotLight returns a new [SpotLight] placed overhead,
// added to the given parent if any.
func NewSpotLight(parent ...tree.Node) *SpotLight {
	return tree.Init(&SpotLight{}, parent...)
}

func (sl *SpotLight) Init() {
	sl.LightBase.Init()
	sl.Pose.Pos = DefaultUp
	sl.Angle = math32.Pi / 3
	sl.Decay = 2
	sl.UpdateMatrix()
}

// Direction returns the normalized world direction the light shines in.
func (sl *SpotLight) Direction() math32.Vector3 {
	return lightDirection(&sl.NodeBase, sl.Target)
}

// lightDirection returns the normalized direction from the light to its
// target in world space. A missing target is taken as the world origin.
func lightDirection(lb *NodeBase, target Node) math32.Vector3 {
	pos := lb.WorldPosition()
	var tpos math32.Vector3
	if target != nil {
		tpos = target.AsNode().WorldPosition()
	}
	return tpos.Sub(pos).Normal()
}
