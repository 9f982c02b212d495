// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"cogentcore.org/scenegraph/enums"
)

var _CodesValues = []Codes{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}

// CodesN is the highest valid value for type Codes, plus one.
const CodesN Codes = 26

var _CodesValueMap = map[string]Codes{`Unknown`: 0, `UpArrow`: 1, `DownArrow`: 2, `LeftArrow`: 3, `RightArrow`: 4, `Spacebar`: 5, `Escape`: 6, `ReturnEnter`: 7, `0`: 8, `1`: 9, `2`: 10, `3`: 11, `4`: 12, `5`: 13, `6`: 14, `7`: 15, `8`: 16, `9`: 17, `LeftShift`: 18, `RightShift`: 19, `LeftControl`: 20, `RightControl`: 21, `LeftAlt`: 22, `RightAlt`: 23, `LeftMeta`: 24, `RightMeta`: 25}

var _CodesMap = map[Codes]string{0: `Unknown`, 1: `UpArrow`, 2: `DownArrow`, 3: `LeftArrow`, 4: `RightArrow`, 5: `Spacebar`, 6: `Escape`, 7: `ReturnEnter`, 8: `0`, 9: `1`, 10: `2`, 11: `3`, 12: `4`, 13: `5`, 14: `6`, 15: `7`, 16: `8`, 17: `9`, 18: `LeftShift`, 19: `RightShift`, 20: `LeftControl`, 21: `RightControl`, 22: `LeftAlt`, 23: `RightAlt`, 24: `LeftMeta`, 25: `RightMeta`}

// String returns the string representation of this Codes value.
func (i Codes) String() string { return enums.String(i, _CodesMap) }

// SetString sets the Codes value from its string representation,
// and returns an error if the string is invalid.
func (i *Codes) SetString(s string) error {
	return enums.SetString(i, s, _CodesValueMap, "Codes")
}

// Int64 returns the Codes value as an int64.
func (i Codes) Int64() int64 { return int64(i) }

// SetInt64 sets the Codes value from an int64.
func (i *Codes) SetInt64(in int64) { *i = Codes(in) }

// CodesValues returns all possible values for the type Codes.
func CodesValues() []Codes { return _CodesValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Codes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Codes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _ModifiersValues = []Modifiers{0, 1, 2, 3}

// ModifiersN is the highest valid value for type Modifiers, plus one.
const ModifiersN Modifiers = 4

var _ModifiersValueMap = map[string]Modifiers{`Shift`: 0, `Control`: 1, `Alt`: 2, `Meta`: 3}

var _ModifiersMap = map[Modifiers]string{0: `Shift`, 1: `Control`, 2: `Alt`, 3: `Meta`}

// String returns the string representation of this Modifiers value.
func (i Modifiers) String() string {
	return enums.BitFlagString(int64(i), _ModifiersValues)
}

// BitIndexString returns the string representation of this Modifiers value
// if it is a bit index value (typically an enum constant), and
// not an actual bit flag value.
func (i Modifiers) BitIndexString() string { return enums.String(i, _ModifiersMap) }

// SetString sets the Modifiers value from its string representation,
// and returns an error if the string is invalid.
func (i *Modifiers) SetString(s string) error { *i = 0; return i.SetStringOr(s) }

// SetStringOr sets the Modifiers value from its string representation
// while preserving any bit flags already set, and returns an
// error if the string is invalid.
func (i *Modifiers) SetStringOr(s string) error {
	bits := int64(*i)
	err := enums.SetStringOr(&bits, s, _ModifiersValueMap, "Modifiers")
	*i = Modifiers(bits)
	return err
}

// Int64 returns the Modifiers value as an int64.
func (i Modifiers) Int64() int64 { return int64(i) }

// SetInt64 sets the Modifiers value from an int64.
func (i *Modifiers) SetInt64(in int64) { *i = Modifiers(in) }

// ModifiersValues returns all possible values for the type Modifiers.
func ModifiersValues() []Modifiers { return _ModifiersValues }

// HasFlag returns whether these bit flags have the given bit flag set.
func (i Modifiers) HasFlag(f enums.BitFlag) bool { return enums.HasFlag(int64(i), f.Int64()) }

// SetFlag sets the value of the given flags in these flags to the given value.
func (i *Modifiers) SetFlag(on bool, f ...enums.BitFlag) {
	bits := int64(*i)
	for _, fl := range f {
		enums.SetFlag(&bits, on, fl.Int64())
	}
	*i = Modifiers(bits)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Modifiers) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Modifiers) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
