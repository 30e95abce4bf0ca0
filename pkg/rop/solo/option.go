package solo

import "github.com/ib-77/resultify/pkg/rop"

func MapOption[In, Out any](input rop.Option[In], onSome func(v In) Out) rop.Option[Out] {
	if v, ok := input.Get(); ok {
		return rop.Some(onSome(v))
	}
	return rop.None[Out]()
}

func AndThenOption[In, Out any](input rop.Option[In], onSome func(v In) rop.Option[Out]) rop.Option[Out] {
	if v, ok := input.Get(); ok {
		return onSome(v)
	}
	return rop.None[Out]()
}

func FlattenOption[T any](input rop.Option[rop.Option[T]]) rop.Option[T] {
	if inner, ok := input.Get(); ok {
		return inner
	}
	return rop.None[T]()
}

// OkOr turns Some(v) into Ok(v) and None into Err(e).
func OkOr[T, E any](input rop.Option[T], e E) rop.Result[T, E] {
	if v, ok := input.Get(); ok {
		return rop.Ok[T, E](v)
	}
	return rop.Err[T](e)
}

// OkOrElse is OkOr with a lazily built error.
func OkOrElse[T, E any](input rop.Option[T], onNone func() E) rop.Result[T, E] {
	if v, ok := input.Get(); ok {
		return rop.Ok[T, E](v)
	}
	return rop.Err[T](onNone())
}

// Transpose turns Ok(None) into None, Ok(Some(v)) into Some(Ok(v)) and
// Err(e) into Some(Err(e)).
func Transpose[T, E any](input rop.Result[rop.Option[T], E]) rop.Option[rop.Result[T, E]] {
	if e, ok := input.GetErr(); ok {
		return rop.Some(rop.Err[T](e))
	}
	inner, _ := input.Get()
	if v, ok := inner.Get(); ok {
		return rop.Some(rop.Ok[T, E](v))
	}
	return rop.None[rop.Result[T, E]]()
}
