// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"cogentcore.org/scenegraph/events/key"
	"cogentcore.org/scenegraph/math32"
)

// Pointer is a pointer event from a mouse, touch, or pen, of type
// [PointerDown], [PointerMove], [PointerUp], or [PointerCancel].
type Pointer struct {
	Base

	// PointerID identifies the pointer, which is needed to track
	// multiple simultaneous touches.
	PointerID int

	// PointerType is the kind of device that generated the event.
	PointerType PointerTypes

	// Button is the mouse button that changed state, or [NoButton].
	Button Buttons

	// Where is the position of the pointer in page coordinates.
	Where math32.Vector2
}

// NewPointer returns a new [Pointer] event.
func NewPointer(typ Types, ptype PointerTypes, id int, but Buttons, where math32.Vector2, mods key.Modifiers) *Pointer {
	return &Pointer{Base: NewBase(typ, mods), PointerID: id, PointerType: ptype, Button: but, Where: where}
}

func (ev *Pointer) String() string {
	return fmt.Sprintf("%v{%v %d Button: %v Pos: %v Mods: %v}", ev.Typ, ev.PointerType, ev.PointerID, ev.Button, ev.Where, ev.Mods.ModifiersString())
}

// MouseScroll is a [Scroll] event from a mouse wheel or touchpad.
type MouseScroll struct {
	Base

	// Where is the position of the pointer in page coordinates.
	Where math32.Vector2

	// Delta is the amount of scrolling in each axis, in units of
	// DeltaMode. Positive Y scrolls down, away from the user.
	Delta math32.Vector2

	// DeltaMode is the unit of Delta.
	DeltaMode DeltaModes
}

// NewScroll returns a new [MouseScroll] event with a pixel delta.
func NewScroll(where, delta math32.Vector2, mods key.Modifiers) *MouseScroll {
	return &MouseScroll{Base: NewBase(Scroll, mods), Where: where, Delta: delta}
}

func (ev *MouseScroll) String() string {
	return fmt.Sprintf("%v{Delta: %v %v Pos: %v Mods: %v}", ev.Typ, ev.Delta, ev.DeltaMode, ev.Where, ev.Mods.ModifiersString())
}

// Key is a [KeyDown] or [KeyUp] event.
type Key struct {
	Base

	// Code is the physical key that was pressed or released.
	Code key.Codes
}

// NewKey returns a new [Key] event.
func NewKey(typ Types, code key.Codes, mods key.Modifiers) *Key {
	return &Key{Base: NewBase(typ, mods), Code: code}
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %v Mods: %v}", ev.Typ, ev.Code, ev.Mods.ModifiersString())
}
