// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/scenegraph/enums"
)

var _TypesValues = []Types{0, 1, 2, 3, 4, 5, 6, 7, 8}

// TypesN is the highest valid value for type Types, plus one.
const TypesN Types = 9

var _TypesValueMap = map[string]Types{`UnknownType`: 0, `PointerDown`: 1, `PointerMove`: 2, `PointerUp`: 3, `PointerCancel`: 4, `Scroll`: 5, `KeyDown`: 6, `KeyUp`: 7, `ContextMenu`: 8}

var _TypesMap = map[Types]string{0: `UnknownType`, 1: `PointerDown`, 2: `PointerMove`, 3: `PointerUp`, 4: `PointerCancel`, 5: `Scroll`, 6: `KeyDown`, 7: `KeyUp`, 8: `ContextMenu`}

// String returns the string representation of this Types value.
func (i Types) String() string { return enums.String(i, _TypesMap) }

// SetString sets the Types value from its string representation,
// and returns an error if the string is invalid.
func (i *Types) SetString(s string) error {
	return enums.SetString(i, s, _TypesValueMap, "Types")
}

// Int64 returns the Types value as an int64.
func (i Types) Int64() int64 { return int64(i) }

// SetInt64 sets the Types value from an int64.
func (i *Types) SetInt64(in int64) { *i = Types(in) }

// TypesValues returns all possible values for the type Types.
func TypesValues() []Types { return _TypesValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Types) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Types) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _ButtonsValues = []Buttons{0, 1, 2, 3}

// ButtonsN is the highest valid value for type Buttons, plus one.
const ButtonsN Buttons = 4

var _ButtonsValueMap = map[string]Buttons{`NoButton`: 0, `Left`: 1, `Middle`: 2, `Right`: 3}

var _ButtonsMap = map[Buttons]string{0: `NoButton`, 1: `Left`, 2: `Middle`, 3: `Right`}

// String returns the string representation of this Buttons value.
func (i Buttons) String() string { return enums.String(i, _ButtonsMap) }

// SetString sets the Buttons value from its string representation,
// and returns an error if the string is invalid.
func (i *Buttons) SetString(s string) error {
	return enums.SetString(i, s, _ButtonsValueMap, "Buttons")
}

// Int64 returns the Buttons value as an int64.
func (i Buttons) Int64() int64 { return int64(i) }

// SetInt64 sets the Buttons value from an int64.
func (i *Buttons) SetInt64(in int64) { *i = Buttons(in) }

// ButtonsValues returns all possible values for the type Buttons.
func ButtonsValues() []Buttons { return _ButtonsValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Buttons) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Buttons) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _PointerTypesValues = []PointerTypes{0, 1, 2}

// PointerTypesN is the highest valid value for type PointerTypes, plus one.
const PointerTypesN PointerTypes = 3

var _PointerTypesValueMap = map[string]PointerTypes{`Mouse`: 0, `Touch`: 1, `Pen`: 2}

var _PointerTypesMap = map[PointerTypes]string{0: `Mouse`, 1: `Touch`, 2: `Pen`}

// String returns the string representation of this PointerTypes value.
func (i PointerTypes) String() string { return enums.String(i, _PointerTypesMap) }

// SetString sets the PointerTypes value from its string representation,
// and returns an error if the string is invalid.
func (i *PointerTypes) SetString(s string) error {
	return enums.SetString(i, s, _PointerTypesValueMap, "PointerTypes")
}

// Int64 returns the PointerTypes value as an int64.
func (i PointerTypes) Int64() int64 { return int64(i) }

// SetInt64 sets the PointerTypes value from an int64.
func (i *PointerTypes) SetInt64(in int64) { *i = PointerTypes(in) }

// PointerTypesValues returns all possible values for the type PointerTypes.
func PointerTypesValues() []PointerTypes { return _PointerTypesValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i PointerTypes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *PointerTypes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _DeltaModesValues = []DeltaModes{0, 1, 2}

// DeltaModesN is the highest valid value for type DeltaModes, plus one.
const DeltaModesN DeltaModes = 3

var _DeltaModesValueMap = map[string]DeltaModes{`DeltaPixel`: 0, `DeltaLine`: 1, `DeltaPage`: 2}

var _DeltaModesMap = map[DeltaModes]string{0: `DeltaPixel`, 1: `DeltaLine`, 2: `DeltaPage`}

// String returns the string representation of this DeltaModes value.
func (i DeltaModes) String() string { return enums.String(i, _DeltaModesMap) }

// SetString sets the DeltaModes value from its string representation,
// and returns an error if the string is invalid.
func (i *DeltaModes) SetString(s string) error {
	return enums.SetString(i, s, _DeltaModesValueMap, "DeltaModes")
}

// Int64 returns the DeltaModes value as an int64.
func (i DeltaModes) Int64() int64 { return int64(i) }

// SetInt64 sets the DeltaModes value from an int64.
func (i *DeltaModes) SetInt64(in int64) { *i = DeltaModes(in) }

// DeltaModesValues returns all possible values for the type DeltaModes.
func DeltaModesValues() []DeltaModes { return _DeltaModesValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i DeltaModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *DeltaModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
