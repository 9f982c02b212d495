// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"cogentcore.org/scenegraph/enums"
)

var _DimsValues = []Dims{0, 1, 2, 3}

// DimsN is the highest valid value for type Dims, plus one.
const DimsN Dims = 4

var _DimsValueMap = map[string]Dims{`X`: 0, `Y`: 1, `Z`: 2, `W`: 3}

var _DimsMap = map[Dims]string{0: `X`, 1: `Y`, 2: `Z`, 3: `W`}

// String returns the string representation of this Dims value.
func (i Dims) String() string { return enums.String(i, _DimsMap) }

// SetString sets the Dims value from its string representation,
// and returns an error if the string is invalid.
func (i *Dims) SetString(s string) error {
	return enums.SetString(i, s, _DimsValueMap, "Dims")
}

// Int64 returns the Dims value as an int64.
func (i Dims) Int64() int64 { return int64(i) }

// SetInt64 sets the Dims value from an int64.
func (i *Dims) SetInt64(in int64) { *i = Dims(in) }

// DimsValues returns all possible values for the type Dims.
func DimsValues() []Dims { return _DimsValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Dims) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Dims) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

var _EulerOrdersValues = []EulerOrders{0, 1, 2, 3, 4, 5}

// EulerOrdersN is the highest valid value for type EulerOrders, plus one.
const EulerOrdersN EulerOrders = 6

var _EulerOrdersValueMap = map[string]EulerOrders{`XYZ`: 0, `YXZ`: 1, `ZXY`: 2, `ZYX`: 3, `YZX`: 4, `XZY`: 5}

var _EulerOrdersMap = map[EulerOrders]string{0: `XYZ`, 1: `YXZ`, 2: `ZXY`, 3: `ZYX`, 4: `YZX`, 5: `XZY`}

// String returns the string representation of this EulerOrders value.
func (i EulerOrders) String() string { return enums.String(i, _EulerOrdersMap) }

// SetString sets the EulerOrders value from its string representation,
// and returns an error if the string is invalid.
func (i *EulerOrders) SetString(s string) error {
	return enums.SetString(i, s, _EulerOrdersValueMap, "EulerOrders")
}

// Int64 returns the EulerOrders value as an int64.
func (i EulerOrders) Int64() int64 { return int64(i) }

// SetInt64 sets the EulerOrders value from an int64.
func (i *EulerOrders) SetInt64(in int64) { *i = EulerOrders(in) }

// EulerOrdersValues returns all possible values for the type EulerOrders.
func EulerOrdersValues() []EulerOrders { return _EulerOrdersValues }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i EulerOrders) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *EulerOrders) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
