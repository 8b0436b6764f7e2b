package chain

import (
	"context"

	"github.com/ib-77/adt3/pkg/result"
)

type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Success[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes functions that already return result.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, t T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: result.Success[T, E](onSuccess(c.ctx, c.res.Value()))}
}

// MapErr transforms the error value, leaving a success untouched
func (c Chain[T, E]) MapErr(onError func(ctx context.Context, e E) E) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: result.Error[T](onError(c.ctx, c.res.ErrValue()))}
}

// Recover composes functions that turn an error into a new result,
// leaving a success untouched
func (c Chain[T, E]) Recover(onError func(ctx context.Context, e E) result.Result[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onError(c.ctx, c.res.ErrValue())}
}

// Tee triggers a side effect for a success without changing the result
func (c Chain[T, E]) Tee(onSuccess func(ctx context.Context, t T)) Chain[T, E] {
	if c.res.IsOk() && onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// DoubleTee triggers side effects for success/error without changing the result
func (c Chain[T, E]) DoubleTee(onSuccess func(ctx context.Context, t T),
	onError func(ctx context.Context, e E)) Chain[T, E] {

	if c.res.IsErr() {
		if onError != nil {
			onError(c.ctx, c.res.ErrValue())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(ctx context.Context, t T) result.Result[T, E],
	until func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsErr() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(ctx context.Context, t T) result.Result[T, E],
	while func(ctx context.Context, t T) bool) Chain[T, E] {

	for c.res.IsOk() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value via the matching handler
func (c Chain[T, E]) Finally(
	onSuccess func(ctx context.Context, t T) T,
	onError func(ctx context.Context, e E) T,
) T {
	if c.res.IsOk() {
		return onSuccess(c.ctx, c.res.Value())
	}
	return onError(c.ctx, c.res.ErrValue())
}

// Try composes functions that return (T, error) — like repo calls
func Try[T any](c Chain[T, error], try func(ctx context.Context, t T) (T, error)) Chain[T, error] {
	if c.res.IsErr() {
		return c
	}

	u, err := try(c.ctx, c.res.Value())
	if err != nil {
		return Chain[T, error]{ctx: c.ctx, res: result.Error[T](err)}
	}
	return Chain[T, error]{ctx: c.ctx, res: result.Success[T, error](u)}
}
