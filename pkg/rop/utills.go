package rop

import (
	"reflect"
)

// IsNil reports whether i is nil or a nil pointer stored in an interface,
// such as a typed nil *MyError returned as error.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// GetErrors flattens err into its parts. Errors produced by errors.Join (or
// anything with Unwrap() []error) are split; nil yields an empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
