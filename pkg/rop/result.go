package rop

import "fmt"

// Result holds either a success value of type T (Ok) or an error value of
// type E (Err), never both. The zero value is an Err carrying the zero E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok builds a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		ok:    true,
	}
}

// Err builds a failed Result. T usually has to be given explicitly:
// rop.Err[int]("bad").
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err: e,
		ok:  false,
	}
}

// Success is Ok for results whose error side is a plain error.
func Success[T any](v T) Result[T, error] {
	return Ok[T, error](v)
}

// Fail is Err for results whose error side is a plain error.
func Fail[T any](err error) Result[T, error] {
	return Err[T](err)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether r is Ok and its value satisfies pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether r is Err and its error satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Get returns the success value and true, or the zero T and false.
func (r Result[T, E]) Get() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// GetErr returns the error value and true, or the zero E and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the success value. On Err it returns the zero T and an
// *UnwrapError describing the contained error.
func (r Result[T, E]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, newUnwrapError("Result.Unwrap", variantErr, r.err, "")
	}
	return r.value, nil
}

// UnwrapErr returns the error value. On Ok it returns the zero E and an
// *UnwrapError describing the contained value.
func (r Result[T, E]) UnwrapErr() (E, error) {
	if r.ok {
		var zero E
		return zero, newUnwrapError("Result.UnwrapErr", variantOk, r.value, "")
	}
	return r.err, nil
}

// MustUnwrap is Unwrap that panics with the *UnwrapError.
func (r Result[T, E]) MustUnwrap() T {
	if !r.ok {
		panic(newUnwrapError("Result.MustUnwrap", variantErr, r.err, ""))
	}
	return r.value
}

// MustUnwrapErr is UnwrapErr that panics with the *UnwrapError.
func (r Result[T, E]) MustUnwrapErr() E {
	if r.ok {
		panic(newUnwrapError("Result.MustUnwrapErr", variantOk, r.value, ""))
	}
	return r.err
}

// Expect is MustUnwrap with a caller supplied message.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(newUnwrapError("Result.Expect", variantErr, r.err, msg))
	}
	return r.value
}

// ExpectErr is MustUnwrapErr with a caller supplied message.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(newUnwrapError("Result.ExpectErr", variantOk, r.value, msg))
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if !r.ok {
		return f(r.err)
	}
	return r.value
}

func (r Result[T, E]) UnwrapOrDefault() T {
	if !r.ok {
		var zero T
		return zero
	}
	return r.value
}

// Map applies f to the success value. An Err passes through untouched.
// See solo.Map for a version that changes the value type.
func (r Result[T, E]) Map(f func(T) T) Result[T, E] {
	if !r.ok {
		return r
	}
	return Ok[T, E](f(r.value))
}

// MapErr applies f to the error value. An Ok passes through untouched.
func (r Result[T, E]) MapErr(f func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}

// AndThen calls f with the success value and returns its result. An Err
// short-circuits and f is never called.
func (r Result[T, E]) AndThen(f func(T) Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return f(r.value)
}

// Or returns r if it is Ok, otherwise alt.
func (r Result[T, E]) Or(alt Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return alt
}

// OrElse calls f with the error value and returns its result. An Ok
// short-circuits and f is never called.
func (r Result[T, E]) OrElse(f func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return f(r.err)
}

func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Ok converts r into an Option, dropping the error.
func (r Result[T, E]) Ok() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.value)
}

// Err converts r into an Option of its error, dropping the value.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
