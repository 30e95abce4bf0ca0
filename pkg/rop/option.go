package rop

import "fmt"

// Option holds either a value (Some) or nothing (None). The zero value is
// None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// Get returns the value and true, or the zero T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the value. On None it returns the zero T and an
// *UnwrapError.
func (o Option[T]) Unwrap() (T, error) {
	if !o.some {
		var zero T
		return zero, newUnwrapError("Option.Unwrap", variantNone, nil, "")
	}
	return o.value, nil
}

func (o Option[T]) MustUnwrap() T {
	if !o.some {
		panic(newUnwrapError("Option.MustUnwrap", variantNone, nil, ""))
	}
	return o.value
}

func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(newUnwrapError("Option.Expect", variantNone, nil, msg))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(f func() T) T {
	if !o.some {
		return f()
	}
	return o.value
}

func (o Option[T]) UnwrapOrDefault() T {
	return o.value
}

// Map applies f to the value of a Some. See solo.MapOption for a version
// that changes the value type.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(f(o.value))
}

// AndThen calls f with the value of a Some and returns its result. None
// short-circuits and f is never called.
func (o Option[T]) AndThen(f func(T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return f(o.value)
}

// Filter keeps a Some only if its value satisfies pred.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.some {
		return o
	}
	return alt
}

func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return f()
}

// Xor returns whichever of o and other is Some, or None if both or neither
// are.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Ptr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
