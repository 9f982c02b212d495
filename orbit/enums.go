// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

// States are the states of the gesture state machine of a [Controller].
type States int32 //enums:enum -trim-prefix State

const (
	// StateNone means that no gesture is in progress.
	StateNone States = iota

	// StateRotate is a mouse drag orbiting around the target.
	StateRotate

	// StatePan is a mouse drag moving the target.
	StatePan

	// StateDolly is a mouse drag moving toward or away from the target.
	StateDolly

	// StateTouchRotate is a one finger drag orbiting around the target.
	StateTouchRotate

	// StateTouchPan is a one finger drag moving the target.
	StateTouchPan

	// StateTouchDollyPan is a two finger pinch and drag that dollies
	// and pans at the same time.
	StateTouchDollyPan

	// StateTouchDollyRotate is a two finger pinch and drag that dollies
	// and rotates at the same time.
	StateTouchDollyRotate
)

// Actions are the camera motions that can be bound to mouse buttons
// and touch gestures in [Settings].
type Actions int32 //enums:enum

const (
	// NoAction means the input is ignored.
	NoAction Actions = iota

	// Rotate orbits the camera around the target.
	Rotate

	// Dolly moves the camera toward or away from the target.
	Dolly

	// Pan moves the camera and the target together.
	Pan

	// DollyPan is a two finger gesture that dollies and pans.
	DollyPan

	// DollyRotate is a two finger gesture that dollies and rotates.
	DollyRotate
)
