// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbit

import (
	"cogentcore.org/scenegraph/enums"
)

var _StatesValues = []States{0, 1, 2, 3, 4, 5, 6, 7}

// StatesN is the highest valid value for type States, plus one.
const StatesN States = 8

var _StatesValueMap = map[string]States{`None`: 0, `Rotate`: 1, `Pan`: 2, `Dolly`: 3, `TouchRotate`: 4, `TouchPan`: 5, `TouchDollyPan`: 6, `TouchDollyRotate`: 7}

var _StatesMap = map[States]string{0: `None`, 1: `Rotate`, 2: `Pan`, 3: `Dolly`, 4: `TouchRotate`, 5: `TouchPan`, 6: `TouchDollyPan`, 7: `TouchDollyRotate`}

// String returns the string representation of this States value.
func (i States) String() string { return enums.String(i, _StatesMap) }

// SetString sets the States value from its string representation,
// and returns an error if the string is invalid.
func (i *States) SetString(s string) error {
	return enums.SetString(i, s, _StatesValueMap, "States")
}

// Int64 returns the States value as an int64.
func (i States) Int64() int64 { return int64(i) }

// SetInt64 sets the States value from an int64.
func (i *States) SetInt64(in int64) { *i = States(in) }

// StatesValues returns all possible values for the type States.
func StatesValues() []States { return _StatesValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i States) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *States) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _ActionsValues = []Actions{0, 1, 2, 3, 4, 5}

// ActionsN is the highest valid value for type Actions, plus one.
const ActionsN Actions = 6

var _ActionsValueMap = map[string]Actions{`NoAction`: 0, `Rotate`: 1, `Dolly`: 2, `Pan`: 3, `DollyPan`: 4, `DollyRotate`: 5}

var _ActionsMap = map[Actions]string{0: `NoAction`, 1: `Rotate`, 2: `Dolly`, 3: `Pan`, 4: `DollyPan`, 5: `DollyRotate`}

// String returns the string representation of this Actions value.
func (i Actions) String() string { return enums.String(i, _ActionsMap) }

// SetString sets the Actions value from its string representation,
// and returns an error if the string is invalid.
func (i *Actions) SetString(s string) error {
	return enums.SetString(i, s, _ActionsValueMap, "Actions")
}

// Int64 returns the Actions value as an int64.
func (i Actions) Int64() int64 { return int64(i) }

// SetInt64 sets the Actions value from an int64.
func (i *Actions) SetInt64(in int64) { *i = Actions(in) }

// ActionsValues returns all possible values for the type Actions.
func ActionsValues() []Actions { return _ActionsValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Actions) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Actions) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
