// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/base/iox/tomlx"
	"cogentcore.org/scenegraph/base/iox/yamlx"
	"cogentcore.org/scenegraph/base/reflectx"
	"cogentcore.org/scenegraph/events/key"
)

// Settings are the user-configurable parameters of a [Controller].
// They can be saved to and loaded from TOML or YAML files.
type Settings struct {

	// Enabled is whether the controller responds to input.
	Enabled bool `default:"true"`

	// MinDistance is the minimum distance from the camera to the target
	// for a perspective camera.
	MinDistance float32 `default:"0"`

	// MaxDistance is the maximum distance from the camera to the target
	// for a perspective camera.
	MaxDistance float32 `default:"+Inf"`

	// MinZoom is the minimum zoom of an orthographic camera.
	MinZoom float32 `default:"0"`

	// MaxZoom is the maximum zoom of an orthographic camera.
	MaxZoom float32 `default:"+Inf"`

	// MinTargetRadius is the minimum distance of the target
	// from [Controller.Cursor].
	MinTargetRadius float32 `default:"0"`

	// MaxTargetRadius is the maximum distance of the target
	// from [Controller.Cursor].
	MaxTargetRadius float32 `default:"+Inf"`

	// MinPolarAngle is the lowest the camera can orbit, in radians
	// from the up direction.
	MinPolarAngle float32 `default:"0"`

	// MaxPolarAngle is the highest the camera can orbit, in radians
	// from the up direction.
	MaxPolarAngle float32 `default:"3.141592653589793"`

	// MinAzimuthAngle is the lower limit of horizontal orbiting in radians.
	// If either azimuth limit is infinite, orbiting is unlimited. The limits
	// are normalized into (-Pi, Pi], and a range with MinAzimuthAngle greater
	// than MaxAzimuthAngle wraps around the back of the target.
	MinAzimuthAngle float32 `default:"-Inf"`

	// MaxAzimuthAngle is the upper limit of horizontal orbiting in radians.
	MaxAzimuthAngle float32 `default:"+Inf"`

	// EnableDamping gives the camera a sense of weight, continuing
	// motion after a gesture ends. [Controller.Update] must be called
	// every frame for it to work.
	EnableDamping bool

	// DampingFactor is the fraction of the remaining motion applied
	// each frame when EnableDamping is on.
	DampingFactor float32 `default:"0.05"`

	// EnableZoom is whether dollying and zooming are enabled.
	EnableZoom bool `default:"true"`

	// ZoomSpeed is the speed of dollying and zooming.
	ZoomSpeed float32 `default:"1"`

	// ZoomToCursor dollies toward the pointer position
	// instead of toward the target.
	ZoomToCursor bool

	// EnableRotate is whether rotating is enabled.
	EnableRotate bool `default:"true"`

	// RotateSpeed is the speed of rotating.
	RotateSpeed float32 `default:"1"`

	// EnablePan is whether panning is enabled.
	EnablePan bool `default:"true"`

	// PanSpeed is the speed of panning.
	PanSpeed float32 `default:"1"`

	// ScreenSpacePanning pans in the plane of the screen.
	// Otherwise panning is in the plane orthogonal to the camera up direction.
	ScreenSpacePanning bool `default:"true"`

	// KeyPanSpeed is the number of pixels moved per arrow key press.
	KeyPanSpeed float32 `default:"7"`

	// AutoRotate rotates the camera around the target
	// whenever no gesture is in progress.
	AutoRotate bool

	// AutoRotateSpeed is the speed of AutoRotate: 2 is one orbit
	// every 30 seconds at 60 frames per second.
	AutoRotateSpeed float32 `default:"2"`

	// Keys are the keys used for keyboard panning.
	Keys KeyBindings

	// MouseButtons are the actions bound to the mouse buttons.
	MouseButtons MouseBindings

	// Touches are the actions bound to touch gestures.
	Touches TouchBindings
}

// KeyBindings are the keys that pan the camera.
type KeyBindings struct {
	Left   key.Codes `default:"LeftArrow"`
	Up     key.Codes `default:"UpArrow"`
	Right  key.Codes `default:"RightArrow"`
	Bottom key.Codes `default:"DownArrow"`
}

// MouseBindings are the actions of the mouse buttons.
// Holding Shift, Control, or Meta swaps [Rotate] and [Pan].
type MouseBindings struct {
	Left   Actions `default:"Rotate"`
	Middle Actions `default:"Dolly"`
	Right  Actions `default:"Pan"`
}

// TouchBindings are the actions of touch gestures.
type TouchBindings struct {

	// One is the action of one finger: [Rotate] or [Pan].
	One Actions `default:"Rotate"`

	// Two is the action of two fingers: [DollyPan] or [DollyRotate].
	Two Actions `default:"DollyPan"`
}

// Defaults sets the settings to their default values.
func (s *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
}

// NewSettings returns new [Settings] with default values.
func NewSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// OpenSettings returns settings read from the given TOML or YAML file,
// determined by the file extension. Values missing from the file
// keep their defaults.
func OpenSettings(filename string) (*Settings, error) {
	s := NewSettings()
	var err error
	switch settingsFormat(filename) {
	case "toml":
		err = tomlx.Open(s, filename)
	case "yaml":
		err = yamlx.Open(s, filename)
	default:
		err = fmt.Errorf("orbit.OpenSettings: unsupported file extension %q", filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the settings to the given TOML or YAML file,
// determined by the file extension.
func (s *Settings) Save(filename string) error {
	switch settingsFormat(filename) {
	case "toml":
		return tomlx.Save(s, filename)
	case "yaml":
		return yamlx.Save(s, filename)
	}
	return fmt.Errorf("orbit.Settings.Save: unsupported file extension %q", filepath.Ext(filename))
}

func settingsFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}
