// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/scenegraph/events/key"
	"cogentcore.org/scenegraph/math32"
)

// Surface is an on-screen region that delivers input events to
// listeners, such as the canvas that a scene is rendered into.
type Surface interface {

	// AddListener adds a listener for the given event type.
	AddListener(typ Types, fun func(ev Event)) ListenerID

	// RemoveListener removes the listener with the given ID.
	RemoveListener(id ListenerID)

	// Size returns the size of the surface in page coordinates.
	Size() math32.Vector2

	// SetPointerCapture directs all further events of the given pointer
	// to this surface, even when the pointer leaves it.
	SetPointerCapture(pointerID int)

	// ReleasePointerCapture ends a [Surface.SetPointerCapture].
	ReleasePointerCapture(pointerID int)
}

// MousePointerID is the pointer ID of mouse events generated by [Element].
const MousePointerID = 1

// Element is a headless [Surface] of a fixed size. Events can be
// dispatched directly, or sent from any goroutine and then delivered
// in order by [Element.ProcessEvents].
type Element struct {

	// Width and Height are the size of the element.
	Width, Height float32

	// Listeners are the registered event listeners.
	Listeners Listeners

	captured map[int]bool
	queue    Queue
}

var _ Surface = &Element{}

// NewElement returns a new [Element] of the given size.
func NewElement(width, height float32) *Element {
	return &Element{Width: width, Height: height, captured: map[int]bool{}}
}

func (el *Element) AddListener(typ Types, fun func(ev Event)) ListenerID {
	return el.Listeners.Add(typ, fun)
}

func (el *Element) RemoveListener(id ListenerID) {
	el.Listeners.Remove(id)
}

func (el *Element) Size() math32.Vector2 {
	return math32.Vec2(el.Width, el.Height)
}

func (el *Element) SetPointerCapture(pointerID int) {
	el.captured[pointerID] = true
}

func (el *Element) ReleasePointerCapture(pointerID int) {
	delete(el.captured, pointerID)
}

// HasPointerCapture returns whether the given pointer is captured.
func (el *Element) HasPointerCapture(pointerID int) bool {
	return el.captured[pointerID]
}

// Dispatch delivers the given event to the listeners immediately.
func (el *Element) Dispatch(ev Event) {
	el.Listeners.Call(ev)
}

// Send adds the given event to the queue, to be delivered
// by the next call to [Element.ProcessEvents].
func (el *Element) Send(ev Event) {
	el.queue.Send(ev)
}

// ProcessEvents delivers all of the queued events in order,
// returning the number delivered.
func (el *Element) ProcessEvents() int {
	return el.queue.Drain(el.Dispatch)
}

// Pending returns the number of queued events.
func (el *Element) Pending() int {
	return el.queue.Len()
}

// MouseDown sends a [PointerDown] event for the given mouse button.
func (el *Element) MouseDown(but Buttons, x, y float32, mods key.Modifiers) {
	el.Send(NewPointer(PointerDown, Mouse, MousePointerID, but, math32.Vec2(x, y), mods))
}

// MouseMove sends a mouse [PointerMove] event.
func (el *Element) MouseMove(x, y float32, mods key.Modifiers) {
	el.Send(NewPointer(PointerMove, Mouse, MousePointerID, NoButton, math32.Vec2(x, y), mods))
}

// MouseUp sends a [PointerUp] event for the given mouse button.
func (el *Element) MouseUp(but Buttons, x, y float32, mods key.Modifiers) {
	el.Send(NewPointer(PointerUp, Mouse, MousePointerID, but, math32.Vec2(x, y), mods))
}

// MouseDrag sends a button press at from, the given number of
// moves along the line to to, and a release at to.
func (el *Element) MouseDrag(but Buttons, from, to math32.Vector2, steps int, mods key.Modifiers) {
	el.MouseDown(but, from.X, from.Y, mods)
	steps = max(steps, 1)
	d := to.Sub(from).MulScalar(1 / float32(steps))
	for i := 1; i <= steps; i++ {
		p := from.Add(d.MulScalar(float32(i)))
		el.MouseMove(p.X, p.Y, mods)
	}
	el.MouseUp(but, to.X, to.Y, mods)
}

// Wheel sends a [Scroll] event with the given vertical pixel delta.
func (el *Element) Wheel(x, y, dy float32, mods key.Modifiers) {
	el.Send(NewScroll(math32.Vec2(x, y), math32.Vec2(0, dy), mods))
}

// TouchStart sends a touch [PointerDown] event.
func (el *Element) TouchStart(id int, x, y float32) {
	el.Send(NewPointer(PointerDown, Touch, id, NoButton, math32.Vec2(x, y), 0))
}

// TouchMove sends a touch [PointerMove] event.
func (el *Element) TouchMove(id int, x, y float32) {
	el.Send(NewPointer(PointerMove, Touch, id, NoButton, math32.Vec2(x, y), 0))
}

// TouchEnd sends a touch [PointerUp] event.
func (el *Element) TouchEnd(id int, x, y float32) {
	el.Send(NewPointer(PointerUp, Touch, id, NoButton, math32.Vec2(x, y), 0))
}

// KeyPress sends a [KeyDown] and [KeyUp] event for the given key.
func (el *Element) KeyPress(code key.Codes, mods key.Modifiers) {
	el.Send(NewKey(KeyDown, code, mods))
	el.Send(NewKey(KeyUp, code, mods))
}
