package util

import (
	"reflect"
)

// IsNil reports whether itf is nil or a typed nil of a nillable kind.
func IsNil(itf interface{}) bool {
	if itf == nil {
		return true
	}

	switch v := reflect.ValueOf(itf); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan,
		reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}

	return false
}
