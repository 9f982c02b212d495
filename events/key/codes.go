// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes and modifier flags
// carried by keyboard events.
package key

// Codes are the physical key codes of keyboard events, independent
// of the keyboard layout. Only the keys used for camera navigation
// and view bookmarks are named; all other keys are [CodeUnknown].
type Codes int32 //enums:enum -trim-prefix Code

const (
	CodeUnknown Codes = iota

	CodeUpArrow
	CodeDownArrow
	CodeLeftArrow
	CodeRightArrow

	CodeSpacebar
	CodeEscape
	CodeReturnEnter

	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	CodeLeftShift
	CodeRightShift
	CodeLeftControl
	CodeRightControl
	CodeLeftAlt
	CodeRightAlt
	CodeLeftMeta
	CodeRightMeta
)

// Digit returns the number of a digit key, and false if the code
// is not a digit key.
func (c Codes) Digit() (int, bool) {
	if c < Code0 || c > Code9 {
		return 0, false
	}
	return int(c - Code0), true
}

// IsModifier returns whether the code is one of the modifier keys.
func (c Codes) IsModifier() bool {
	return c >= CodeLeftShift && c <= CodeRightMeta
}
