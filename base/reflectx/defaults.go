// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` struct field tags. Nested and embedded structs are processed
// recursively. Fields that implement [encoding.TextUnmarshaler] (such as
// enums) are set through UnmarshalText. All errors are joined and returned.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: object must be a struct, not %v", v.Kind())
	}
	if !v.CanAddr() {
		return errors.New("reflectx.SetFromDefaultTags: object must be a pointer to a struct")
	}
	return setFromDefaultTags(v)
}

func setFromDefaultTags(v reflect.Value) error {
	var errs []error
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		def, has := f.Tag.Lookup("default")
		if !has {
			if fv.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaultTags(fv))
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value from its string representation.
func SetFromString(v reflect.Value, str string) error {
	if tu, ok := OnePointerValue(v).Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(str))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		fl, err := strconv.ParseFloat(str, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(fl)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
