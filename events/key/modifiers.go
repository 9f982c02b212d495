// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

// Modifiers are used as bitflags representing a set of modifier keys.
type Modifiers int64 //enums:bitflag

const (
	// Shift is the shift key.
	Shift Modifiers = iota

	// Control is the control key.
	Control

	// Alt is the alt (option) key.
	Alt

	// Meta is the system meta key (Command on macOS, Windows key elsewhere).
	Meta
)

// HasAnyModifier tests whether any of the given modifier flags are set.
func HasAnyModifier(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if flags.HasFlag(m) {
			return true
		}
	}
	return false
}

// HasAllModifiers tests whether all of the given modifier flags are set.
func HasAllModifiers(flags Modifiers, mods ...Modifiers) bool {
	for _, m := range mods {
		if !flags.HasFlag(m) {
			return false
		}
	}
	return true
}

// ModifiersString returns the string representation of the modifiers,
// with the flags joined by "+", as used in key chords.
func (mo Modifiers) ModifiersString() string {
	str := ""
	for _, m := range ModifiersValues() {
		if mo.HasFlag(m) {
			str += m.String() + "+"
		}
	}
	return str
}
