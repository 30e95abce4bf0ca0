package tiny

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/resultify/pkg/rop"
	"github.com/ib-77/resultify/pkg/rop/core"
	"github.com/ib-77/resultify/pkg/rop/solo"
)

// ErrLoopLimit fails a RepeatUntil or While chain that ran more steps than
// allowed by core.WithLoopOptions.
var ErrLoopLimit = errors.New("tiny: loop iteration limit reached")

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T, error]
}

func Start[T any](ctx context.Context, r rop.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

// FromTry starts a chain from a (T, error) call, converting panics to
// failures. try is not called if ctx is already done.
func FromTry[T any](ctx context.Context, try func(ctx context.Context) (T, error)) Chain[T] {
	if err := ctx.Err(); err != nil {
		return Start(ctx, rop.Fail[T](err))
	}
	return Start(ctx, solo.Try(func() (T, error) { return try(ctx) }))
}

func (c Chain[T]) Result() rop.Result[T, error] {
	return c.res
}

func (c Chain[T]) IsOk() bool {
	return c.res.IsOk()
}

func (c Chain[T]) IsErr() bool {
	return c.res.IsErr()
}

func (c Chain[T]) String() string {
	return c.res.String()
}

// stopped reports whether the next step must be skipped, failing the chain
// if its context is already done.
func (c Chain[T]) stopped() (Chain[T], bool) {
	if c.res.IsErr() {
		return c, true
	}
	if err := c.ctx.Err(); err != nil {
		return Chain[T]{ctx: c.ctx, res: rop.Fail[T](err)}, true
	}
	return c, false
}

// Then composes functions that already return rop.Result[T, error]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T, error]) Chain[T] {
	if next, stop := c.stopped(); stop {
		return next
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.MustUnwrap())}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if next, stop := c.stopped(); stop {
		return next
	}
	return Chain[T]{ctx: c.ctx, res: solo.Of(try(c.ctx, c.res.MustUnwrap()))}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if next, stop := c.stopped(); stop {
		return next
	}
	return Chain[T]{ctx: c.ctx, res: rop.Success(onSuccess(c.ctx, c.res.MustUnwrap()))}
}

// RepeatUntil runs onSuccess at least once and keeps going while until
// holds for the new value.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[T, error],
	until func(ctx context.Context, t T) bool) Chain[T] {

	limit := core.GetLoopMaxCount(c.ctx, 0)
	for i := 0; ; i++ {
		if next, stop := c.stopped(); stop {
			return next
		}
		if limit > 0 && i >= limit {
			return c.failLimit(limit)
		}

		c = c.Then(onSuccess)

		if c.res.IsErr() || !until(c.ctx, c.res.MustUnwrap()) {
			return c
		}
	}
}

// While runs onSuccess for as long as while holds for the current value.
func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[T, error],
	while func(ctx context.Context, t T) bool) Chain[T] {

	limit := core.GetLoopMaxCount(c.ctx, 0)
	for i := 0; ; i++ {
		if next, stop := c.stopped(); stop {
			return next
		}
		if !while(c.ctx, c.res.MustUnwrap()) {
			return c
		}
		if limit > 0 && i >= limit {
			return c.failLimit(limit)
		}
		c = c.Then(onSuccess)
	}
}

func (c Chain[T]) failLimit(limit int) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: rop.Fail[T](fmt.Errorf("%w: %d", ErrLoopLimit, limit))}
}

// Or returns the first successful chain among c and alternatives, or the
// first failure if none succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// if all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return Chain[T]{ctx: c.ctx, res: last.res}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if err, failed := c.res.GetErr(); failed {
		if onFailure != nil {
			onFailure(c.ctx, err)
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.MustUnwrap())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(err error) T { return onFailure(c.ctx, err) })
}
