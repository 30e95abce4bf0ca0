package rop

import (
	"errors"
	"fmt"
)

const (
	variantOk   = "Ok"
	variantErr  = "Err"
	variantNone = "None"
)

// ErrUnwrap matches every *UnwrapError under errors.Is.
var ErrUnwrap = errors.New("rop: unwrap on wrong variant")

// UnwrapError is returned (or panicked) when a success-only accessor is
// called on the other variant.
type UnwrapError struct {
	// Method is the accessor that failed, e.g. "Result.Unwrap".
	Method string
	// Variant is the variant actually held: "Ok", "Err" or "None".
	Variant string
	// Detail is the string form of the held payload. Empty for None.
	Detail string
	// Msg is the caller message given to Expect, if any.
	Msg string

	cause error
}

func newUnwrapError(method, variant string, payload any, msg string) *UnwrapError {
	e := &UnwrapError{
		Method:  method,
		Variant: variant,
		Msg:     msg,
	}
	if variant != variantNone {
		e.Detail = fmt.Sprint(payload)
	}
	if err, ok := payload.(error); ok && !IsNil(err) {
		e.cause = err
	}
	return e
}

func (e *UnwrapError) Error() string {
	head := e.Msg
	if head == "" {
		head = fmt.Sprintf("rop: called %s on %s value", e.Method, article(e.Variant))
	}
	if e.Variant == variantNone {
		return head
	}
	return head + ": " + e.Detail
}

// Unwrap exposes the held payload when it is itself an error.
func (e *UnwrapError) Unwrap() error {
	return e.cause
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrap
}

func article(variant string) string {
	if variant == variantNone {
		return "a " + variant
	}
	return "an " + variant
}
