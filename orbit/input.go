// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"slices"

	"cogentcore.org/scenegraph/base/errors"
	"cogentcore.org/scenegraph/events"
	"cogentcore.org/scenegraph/events/key"
	"cogentcore.org/scenegraph/math32"
)

// HandleEvent handles the given input event, updating the gesture
// state and the pending camera motion. It is registered on the
// [Controller.Surface] by [New], and on the key surface by
// [Controller.ListenToKeyEvents].
func (c *Controller) HandleEvent(ev events.Event) {
	switch ev.Type() {
	case events.PointerUp, events.PointerCancel:
		// always processed so that a gesture cannot outlive its pointer
		if pe, ok := ev.(*events.Pointer); ok {
			c.pointerUp(pe)
		}
		return
	}
	if !c.Enabled {
		return
	}
	switch ev.Type() {
	case events.PointerDown:
		if pe, ok := ev.(*events.Pointer); ok {
			c.pointerDown(pe)
		}
	case events.PointerMove:
		if pe, ok := ev.(*events.Pointer); ok {
			c.pointerMove(pe)
		}
	case events.Scroll:
		if se, ok := ev.(*events.MouseScroll); ok {
			c.mouseWheel(se)
		}
	case events.KeyDown:
		if ke, ok := ev.(*events.Key); ok {
			c.keyDown(ke)
		}
	case events.ContextMenu:
		ev.PreventDefault()
	}
}

// ListenToKeyEvents handles key events from the given surface, which
// is typically the whole window rather than the render surface.
func (c *Controller) ListenToKeyEvents(s events.Surface) {
	c.StopListenToKeyEvents()
	c.keySurface = s
	c.keyListener = s.AddListener(events.KeyDown, c.HandleEvent)
}

// StopListenToKeyEvents stops handling key events started by
// [Controller.ListenToKeyEvents].
func (c *Controller) StopListenToKeyEvents() {
	if c.keySurface == nil {
		return
	}
	c.keySurface.RemoveListener(c.keyListener)
	c.keySurface = nil
}

func (c *Controller) pointerDown(pe *events.Pointer) {
	if len(c.pointers) == 0 {
		c.Surface.SetPointerCapture(pe.PointerID)
	}
	if c.isTrackingPointer(pe.PointerID) {
		return
	}
	c.pointers = append(c.pointers, pe.PointerID)
	if pe.PointerType == events.Touch {
		c.touchStart(pe.PointerID, pe.Where)
	} else {
		c.mouseDown(pe)
	}
}

func (c *Controller) pointerMove(pe *events.Pointer) {
	if !c.isTrackingPointer(pe.PointerID) {
		return
	}
	if pe.PointerType == events.Touch {
		c.touchMove(pe.PointerID, pe.Where)
	} else {
		c.mouseMove(pe)
	}
}

// pointerUp ends the gesture of the given pointer. When no pointers
// remain the state returns to [StateNone]; when one touch remains, its
// gesture restarts from its last position.
func (c *Controller) pointerUp(pe *events.Pointer) {
	if !c.isTrackingPointer(pe.PointerID) {
		return
	}
	c.removePointer(pe.PointerID)
	c.state = StateNone
	switch len(c.pointers) {
	case 0:
		c.Surface.ReleasePointerCapture(pe.PointerID)
		c.emit(c.OnEnd)
	case 1:
		id := c.pointers[0]
		if pos, ok := c.pointerPositions[id]; ok {
			c.touchStart(id, pos)
		}
	}
}

func (c *Controller) mouseDown(pe *events.Pointer) {
	var action Actions
	switch pe.Button {
	case events.Left:
		action = c.MouseButtons.Left
	case events.Middle:
		action = c.MouseButtons.Middle
	case events.Right:
		action = c.MouseButtons.Right
	}
	swap := pe.HasAnyModifier(key.Control, key.Meta, key.Shift)
	if swap {
		switch action {
		case Rotate:
			action = Pan
		case Pan:
			action = Rotate
		}
	}
	switch action {
	case Dolly:
		if !c.EnableZoom {
			return
		}
		c.updateZoomParameters(pe.Where)
		c.dollyStart = pe.Where
		c.state = StateDolly
	case Rotate:
		if !c.EnableRotate {
			return
		}
		c.rotateStart = pe.Where
		c.state = StateRotate
	case Pan:
		if !c.EnablePan {
			return
		}
		c.panStart = pe.Where
		c.state = StatePan
	default:
		c.state = StateNone
	}
	if c.state != StateNone {
		c.emit(c.OnStart)
	}
}

func (c *Controller) mouseMove(pe *events.Pointer) {
	switch c.state {
	case StateRotate:
		if !c.EnableRotate {
			return
		}
		c.rotateTo(pe.Where)
	case StateDolly:
		if !c.EnableZoom {
			return
		}
		delta := pe.Where.Sub(c.dollyStart)
		if delta.Y > 0 {
			c.dollyOut(c.zoomScale(delta.Y))
		} else if delta.Y < 0 {
			c.dollyIn(c.zoomScale(delta.Y))
		}
		c.dollyStart = pe.Where
	case StatePan:
		if !c.EnablePan {
			return
		}
		c.panTo(pe.Where)
	default:
		return
	}
	c.Update()
}

// rotateTo rotates by the motion from rotateStart to pos, where
// a full surface height of motion is a full turn.
func (c *Controller) rotateTo(pos math32.Vector2) {
	delta := pos.Sub(c.rotateStart).MulScalar(c.RotateSpeed)
	height := c.Surface.Size().Y
	c.rotateLeft(math32.TwoPi * delta.X / height)
	c.rotateUp(math32.TwoPi * delta.Y / height)
	c.rotateStart = pos
}

func (c *Controller) panTo(pos math32.Vector2) {
	delta := pos.Sub(c.panStart).MulScalar(c.PanSpeed)
	c.pan(delta.X, delta.Y)
	c.panStart = pos
}

func (c *Controller) mouseWheel(se *events.MouseScroll) {
	if !c.EnableZoom || c.state != StateNone {
		return
	}
	se.PreventDefault()
	c.emit(c.OnStart)
	c.updateZoomParameters(se.Where)
	dy := se.Delta.Y
	switch se.DeltaMode {
	case events.DeltaLine:
		dy *= 16
	case events.DeltaPage:
		dy *= 100
	}
	// pinch gestures on touchpads arrive as scrolls with control held
	if se.HasAnyModifier(key.Control) {
		dy *= 10
	}
	if dy < 0 {
		c.dollyIn(c.zoomScale(dy))
	} else if dy > 0 {
		c.dollyOut(c.zoomScale(dy))
	}
	c.Update()
	c.emit(c.OnEnd)
}

// keyDown handles the panning keys, which rotate instead with a
// modifier held, along with the saved view keys: digits restore views,
// digits with Control or Meta save them, and space resets.
func (c *Controller) keyDown(ke *events.Key) {
	if d, ok := ke.Code.Digit(); ok {
		name := string(rune('0' + d))
		if ke.HasAnyModifier(key.Control, key.Meta) {
			c.SaveView(name)
		} else {
			errors.Log(c.RestoreView(name))
		}
		ke.SetHandled()
		return
	}
	if ke.Code == key.CodeSpacebar {
		c.Reset()
		ke.SetHandled()
		return
	}

	rotate := ke.HasAnyModifier(key.Control, key.Meta, key.Shift)
	angle := math32.TwoPi * c.RotateSpeed / c.Surface.Size().Y
	var dx, dy float32
	switch ke.Code {
	case c.Keys.Up:
		dy = 1
	case c.Keys.Bottom:
		dy = -1
	case c.Keys.Left:
		dx = 1
	case c.Keys.Right:
		dx = -1
	default:
		return
	}
	switch {
	case rotate && c.EnableRotate:
		c.rotateLeft(dx * angle)
		c.rotateUp(dy * angle)
	case !rotate && c.EnablePan:
		c.pan(dx*c.KeyPanSpeed, dy*c.KeyPanSpeed)
	default:
		return
	}
	ke.PreventDefault()
	ke.SetHandled()
	c.Update()
}

func (c *Controller) touchStart(id int, pos math32.Vector2) {
	c.pointerPositions[id] = pos
	switch len(c.pointers) {
	case 1:
		switch c.Touches.One {
		case Rotate:
			if !c.EnableRotate {
				return
			}
			c.rotateStart = c.touchCenter()
			c.state = StateTouchRotate
		case Pan:
			if !c.EnablePan {
				return
			}
			c.panStart = c.touchCenter()
			c.state = StateTouchPan
		default:
			c.state = StateNone
		}
	case 2:
		switch c.Touches.Two {
		case DollyPan:
			if !c.EnableZoom && !c.EnablePan {
				return
			}
			c.touchStartDolly()
			if c.EnablePan {
				c.panStart = c.touchCenter()
			}
			c.state = StateTouchDollyPan
		case DollyRotate:
			if !c.EnableZoom && !c.EnableRotate {
				return
			}
			c.touchStartDolly()
			if c.EnableRotate {
				c.rotateStart = c.touchCenter()
			}
			c.state = StateTouchDollyRotate
		default:
			c.state = StateNone
		}
	default:
		c.state = StateNone
	}
	if c.state != StateNone {
		c.emit(c.OnStart)
	}
}

func (c *Controller) touchMove(id int, pos math32.Vector2) {
	c.pointerPositions[id] = pos
	switch c.state {
	case StateTouchRotate:
		if !c.EnableRotate {
			return
		}
		c.rotateTo(c.touchCenter())
	case StateTouchPan:
		if !c.EnablePan {
			return
		}
		c.panTo(c.touchCenter())
	case StateTouchDollyPan:
		if !c.EnableZoom && !c.EnablePan {
			return
		}
		if c.EnableZoom {
			c.touchMoveDolly()
		}
		if c.EnablePan {
			c.panTo(c.touchCenter())
		}
	case StateTouchDollyRotate:
		if !c.EnableZoom && !c.EnableRotate {
			return
		}
		if c.EnableZoom {
			c.touchMoveDolly()
		}
		if c.EnableRotate {
			c.rotateTo(c.touchCenter())
		}
	default:
		c.state = StateNone
		return
	}
	c.Update()
}

func (c *Controller) touchStartDolly() {
	if !c.EnableZoom {
		return
	}
	c.dollyStart = math32.Vec2(0, c.touchSpread())
}

// touchMoveDolly dollies by the ratio of the change in distance
// between the two touches.
func (c *Controller) touchMoveDolly() {
	end := math32.Vec2(0, c.touchSpread())
	if c.dollyStart.Y > 0 {
		c.dollyOut(math32.Pow(end.Y/c.dollyStart.Y, c.ZoomSpeed))
	}
	c.dollyStart = end
	c.updateZoomParameters(c.touchCenter())
}

// touchCenter returns the position of a single touch,
// or the midpoint of the first two.
func (c *Controller) touchCenter() math32.Vector2 {
	p0 := c.pointerPositions[c.pointers[0]]
	if len(c.pointers) == 1 {
		return p0
	}
	return p0.Midpoint(c.pointerPositions[c.pointers[1]])
}

// touchSpread returns the distance between the first two touches.
func (c *Controller) touchSpread() float32 {
	return c.pointerPositions[c.pointers[0]].DistanceTo(c.pointerPositions[c.pointers[1]])
}

func (c *Controller) isTrackingPointer(id int) bool {
	return slices.Contains(c.pointers, id)
}

func (c *Controller) removePointer(id int) {
	delete(c.pointerPositions, id)
	c.pointers = slices.DeleteFunc(c.pointers, func(p int) bool { return p == id })
}
