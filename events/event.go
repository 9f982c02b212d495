// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input events that drive interactive
// scene controls: pointer (mouse, touch, pen), scroll, and key events,
// along with the [Surface] that delivers them to listeners.
//
// Events are generated outside of the code that consumes them, and
// delivered on a single goroutine. A listener runs to completion
// before the next event is delivered.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/scenegraph/events/key"
)

// Event is the interface for all input events.
type Event interface {
	fmt.Stringer

	// Type returns the type of event.
	Type() Types

	// Time returns the time at which the event was generated.
	Time() time.Time

	// Modifiers returns the modifier keys held when the event was generated.
	Modifiers() key.Modifiers

	// HasAnyModifier tests whether any of the given modifiers was held.
	HasAnyModifier(mods ...key.Modifiers) bool

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so that no further listeners receive it.
	SetHandled()

	// PreventDefault tells the source of the event not to take
	// its default action, such as scrolling a page or showing a menu.
	PreventDefault()

	// IsDefaultPrevented returns whether PreventDefault has been called.
	IsDefaultPrevented() bool
}

// Base is the base type for events.
// It is designed to be anonymously embedded in concrete event types.
type Base struct {

	// Typ is the type of event returned by Type()
	Typ Types

	// GenTime records the time when the event was first generated
	GenTime time.Time

	// Mods are the modifier keys present at time of event
	Mods key.Modifiers

	// Handled is set to true when the event has been processed.
	Handled bool

	// DefaultPrevented is set to true by [Base.PreventDefault].
	DefaultPrevented bool
}

// NewBase returns a new [Base] of the given type, generated now.
func NewBase(typ Types, mods key.Modifiers) Base {
	return Base{Typ: typ, GenTime: time.Now(), Mods: mods}
}

// NewEvent returns a new event of the given type that carries no
// data beyond the [Base], such as [ContextMenu].
func NewEvent(typ Types, mods key.Modifiers) *Base {
	b := NewBase(typ, mods)
	return &b
}

func (ev *Base) Type() Types {
	return ev.Typ
}

func (ev *Base) Time() time.Time {
	return ev.GenTime
}

func (ev *Base) Modifiers() key.Modifiers {
	return ev.Mods
}

func (ev *Base) HasAnyModifier(mods ...key.Modifiers) bool {
	return key.HasAnyModifier(ev.Mods, mods...)
}

func (ev *Base) IsHandled() bool {
	return ev.Handled
}

func (ev *Base) SetHandled() {
	ev.Handled = true
}

func (ev *Base) PreventDefault() {
	ev.DefaultPrevented = true
}

func (ev *Base) IsDefaultPrevented() bool {
	return ev.DefaultPrevented
}

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Time: %v, Mods: %v}", ev.Typ, ev.GenTime.Format("04:05"), ev.Mods.ModifiersString())
}
