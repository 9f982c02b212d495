// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"fmt"
	"slices"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/math32"
	"cogentcore.org/scenegraph/xyz"
)

// ErrNoSavedState is returned when restoring a view that was never saved.
var ErrNoSavedState = errors.New("orbit: no saved view")

// viewState is a saved camera view.
type viewState struct {
	Target math32.Vector3
	Pos    math32.Vector3
	Zoom   float32
}

func (c *Controller) currentView() viewState {
	return viewState{Target: c.Target, Pos: c.Object.AsNode().Pose.Pos, Zoom: c.zoom()}
}

// SaveState saves the current view, which is restored by [Controller.Reset].
// It is called by [New].
func (c *Controller) SaveState() {
	c.saved = c.currentView()
}

// Reset restores the view saved by [Controller.SaveState]
// and ends any gesture in progress.
func (c *Controller) Reset() {
	c.restore(c.saved)
	c.state = StateNone
}

// SaveView saves the current view under the given name.
func (c *Controller) SaveView(name string) {
	c.views[name] = c.currentView()
}

// RestoreView restores the view saved under the given name.
// It returns an error wrapping [ErrNoSavedState] if there is none.
func (c *Controller) RestoreView(name string) error {
	vs, ok := c.views[name]
	if !ok {
		return fmt.Errorf("orbit.Controller.RestoreView %q: %w", name, ErrNoSavedState)
	}
	c.restore(vs)
	return nil
}

// DeleteView deletes the view saved under the given name.
func (c *Controller) DeleteView(name string) {
	delete(c.views, name)
}

// Views returns the sorted names of the saved views.
func (c *Controller) Views() []string {
	names := make([]string, 0, len(c.views))
	for nm := range c.views {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

func (c *Controller) restore(vs viewState) {
	c.Stop()
	c.Target = vs.Target
	c.Object.AsNode().Pose.Pos = vs.Pos
	c.setZoom(vs.Zoom)
	c.Object.UpdateProjectionMatrix()
	c.emit(c.OnChange)
	c.Update()
}

func (c *Controller) zoom() float32 {
	switch cam := c.Object.(type) {
	case *xyz.PerspectiveCamera:
		return cam.Zoom
	case *xyz.OrthographicCamera:
		return cam.Zoom
	}
	return 1
}

func (c *Controller) setZoom(zoom float32) {
	switch cam := c.Object.(type) {
	case *xyz.PerspectiveCamera:
		cam.Zoom = zoom
	case *xyz.OrthographicCamera:
		cam.Zoom = zoom
	}
}
