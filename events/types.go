// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
// The standard [Pointer Events](https://developer.mozilla.org/en-US/docs/Web/API/Pointer_events)
// provide the basis for the event type names, so that mouse, touch,
// and pen input all arrive through the same pointer event types.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerDown happens when a pointer becomes active: a mouse button
	// is pressed, a finger touches, or a pen makes contact.
	// See [Pointer.Button] for which mouse button.
	PointerDown

	// PointerMove happens when a pointer changes position, whether
	// or not any button is down.
	PointerMove

	// PointerUp happens when a pointer is no longer active.
	PointerUp

	// PointerCancel happens when the system cancels a pointer, for
	// example when a touch is taken over by a system gesture.
	// Listeners must treat it like [PointerUp].
	PointerCancel

	// Scroll is a mouse wheel or touchpad scroll, recording the delta
	// of the scroll. See [MouseScroll].
	Scroll

	// KeyDown happens when a key is pressed. See [Key].
	KeyDown

	// KeyUp happens when a key is released.
	KeyUp

	// ContextMenu happens when the context menu would be opened,
	// typically on a right click.
	ContextMenu
)

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

// PointerTypes is the kind of device that generated a pointer event.
type PointerTypes int32 //enums:enum

const (
	// Mouse is a mouse or touchpad cursor.
	Mouse PointerTypes = iota

	// Touch is a finger on a touch screen.
	Touch

	// Pen is a stylus.
	Pen
)

// DeltaModes is the unit of the delta values of a [MouseScroll].
type DeltaModes int32 //enums:enum

const (
	// DeltaPixel means the delta is in pixels.
	DeltaPixel DeltaModes = iota

	// DeltaLine means the delta is in lines of text.
	DeltaLine

	// DeltaPage means the delta is in pages.
	DeltaPage
)
