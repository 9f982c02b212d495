// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of helpers for working with
// struct values through the reflect system, used mainly for
// applying struct tag based configuration.
package reflectx

import (
	"reflect"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// OnePointerValue returns a value that is exactly one pointer away
// from a non-pointer value.
func OnePointerValue(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.Pointer {
		if v.CanAddr() {
			return v.Addr()
		}
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		return pv
	}
	for v.Elem().Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}
