package solo

import (
	"errors"
	"fmt"

	"github.com/ib-77/resultify/pkg/rop"
)

// ErrPanic wraps a panic recovered by Try.
var ErrPanic = errors.New("solo: recovered panic")

// ErrNilError stands in for the error of an Err that holds a nil error,
// such as the zero Result[T, error].
var ErrNilError = errors.New("solo: failed result holds a nil error")

// Of lifts a Go (value, error) pair into a Result. A nil error, including a
// typed nil pointer, gives Ok.
func Of[T any](v T, err error) rop.Result[T, error] {
	if rop.IsNil(err) {
		return rop.Success(v)
	}
	return rop.Fail[T](err)
}

// Try calls f and turns both a returned error and a panic into Err. A
// recovered panic is wrapped in ErrPanic; a panic value that is an error is
// wrapped as well, so errors.Is sees both.
func Try[T any](f func() (T, error)) (res rop.Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				res = rop.Fail[T](fmt.Errorf("%w: %w", ErrPanic, err))
				return
			}
			res = rop.Fail[T](fmt.Errorf("%w: %v", ErrPanic, p))
		}
	}()

	return Of(f())
}

// Unpack is the inverse of Of. An Err holding a nil error yields
// ErrNilError, never a nil error.
func Unpack[T any](input rop.Result[T, error]) (T, error) {
	if v, ok := input.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, heldError(input)
}

func heldError[T any](input rop.Result[T, error]) error {
	err, _ := input.GetErr()
	if rop.IsNil(err) {
		return ErrNilError
	}
	return err
}

func Map[In, Out, E any](input rop.Result[In, E], onSuccess func(r In) Out) rop.Result[Out, E] {
	if v, ok := input.Get(); ok {
		return rop.Ok[Out, E](onSuccess(v))
	}
	e, _ := input.GetErr()
	return rop.Err[Out](e)
}

func MapErr[T, E, F any](input rop.Result[T, E], onError func(e E) F) rop.Result[T, F] {
	if e, ok := input.GetErr(); ok {
		return rop.Err[T](onError(e))
	}
	v, _ := input.Get()
	return rop.Ok[T, F](v)
}

// MapOr returns def for an Err, otherwise onSuccess applied to the value.
func MapOr[In, Out, E any](input rop.Result[In, E], def Out, onSuccess func(r In) Out) Out {
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	return def
}

// AndThen switches from Result[In, E] to Result[Out, E]. An Err
// short-circuits without calling onSuccess.
func AndThen[In, Out, E any](input rop.Result[In, E], onSuccess func(r In) rop.Result[Out, E]) rop.Result[Out, E] {
	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	e, _ := input.GetErr()
	return rop.Err[Out](e)
}

// OrElse switches the error type on the failure path. An Ok short-circuits
// without calling onError.
func OrElse[T, E, F any](input rop.Result[T, E], onError func(e E) rop.Result[T, F]) rop.Result[T, F] {
	if e, ok := input.GetErr(); ok {
		return onError(e)
	}
	v, _ := input.Get()
	return rop.Ok[T, F](v)
}

func Flatten[T, E any](input rop.Result[rop.Result[T, E], E]) rop.Result[T, E] {
	return AndThen(input, func(inner rop.Result[T, E]) rop.Result[T, E] { return inner })
}

// Finally collapses input into a single value using one handler per variant.
func Finally[In, E, Out any](input rop.Result[In, E],
	onSuccess func(r In) Out,
	onError func(e E) Out) Out {

	if v, ok := input.Get(); ok {
		return onSuccess(v)
	}
	e, _ := input.GetErr()
	return onError(e)
}

// Collect gathers the values of inputs, stopping at the first Err.
func Collect[T, E any](inputs []rop.Result[T, E]) rop.Result[[]T, E] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		v, ok := in.Get()
		if !ok {
			e, _ := in.GetErr()
			return rop.Err[[]T](e)
		}
		values = append(values, v)
	}
	return rop.Ok[[]T, E](values)
}

// CollectAll gathers the values of inputs or, if any failed, every error
// joined together. Errors that are already joined are flattened first, and a
// nil held error counts as ErrNilError.
func CollectAll[T any](inputs []rop.Result[T, error]) rop.Result[[]T, error] {
	values := make([]T, 0, len(inputs))
	var errs []error

	for _, in := range inputs {
		if v, ok := in.Get(); ok {
			values = append(values, v)
			continue
		}
		errs = append(errs, rop.GetErrors(heldError(in))...)
	}

	if len(errs) > 0 {
		return rop.Fail[[]T](errors.Join(errs...))
	}
	return rop.Success(values)
}
