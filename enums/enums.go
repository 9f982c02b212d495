// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the interfaces shared by all enum types in this
// module and the helper functions used by their enumgen.go method sets,
// which provide string conversion and text marshaling (so that enum
// values read naturally in TOML and YAML settings files).
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// BitFlag is the interface that all bit flag enum types satisfy.
type BitFlag interface {
	Enum

	// HasFlag returns whether these flags have the given flag set.
	HasFlag(f BitFlag) bool
}

// EnumConstraint is the generic type constraint that all enums satisfy.
type EnumConstraint interface {
	Enum
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// String returns the name of the given enum value, using the given
// map of names, falling back on the integer value.
func String[T EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from the given string,
// using the given map from names to values. It returns an error
// naming the given type if the string is not found.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString] but matches in a case-insensitive
// manner; valueMap keys must be lowercase.
func SetStringLower[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// HasFlag returns whether the given bit flag index is set in the given bits.
func HasFlag(bits int64, index int64) bool {
	return bits&(1<<uint64(index)) != 0
}

// SetFlag sets or clears the given bit flag indexes in the given bits.
func SetFlag(bits *int64, on bool, indexes ...int64) {
	var mask int64
	for _, idx := range indexes {
		mask |= 1 << uint64(idx)
	}
	if on {
		*bits |= mask
	} else {
		*bits &^= mask
	}
}

// BitFlagString returns the names of all of the set flags in the given
// bits, joined with "|", in the order of the given values.
func BitFlagString[T Enum](bits int64, values []T) string {
	var names []string
	for _, v := range values {
		if HasFlag(bits, v.Int64()) {
			names = append(names, v.String())
		}
	}
	return strings.Join(names, "|")
}

// SetStringOr sets the bits for the "|"-separated flag names in s,
// or-ing them with the existing bits.
func SetStringOr[T Enum](bits *int64, s string, valueMap map[string]T, typeName string) error {
	for _, fs := range strings.Split(s, "|") {
		if fs == "" {
			continue
		}
		v, ok := valueMap[fs]
		if !ok {
			return fmt.Errorf("%s is not a valid value for type %s", fs, typeName)
		}
		SetFlag(bits, true, v.Int64())
	}
	return nil
}
