package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/adt3/pkg/maybe"
)

// Result holds either a success value of type T or an error value of type E.
// Exactly one variant is populated and it never changes after construction;
// combinators always build a new Result. E is unconstrained and need not
// implement error.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	errVal    E
	isOk      bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Error[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		errVal:    e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// errorFrom carries a failure across a success-type boundary, keeping the
// identity and creation time of the original result.
func errorFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		errVal:    from.errVal,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// successFrom carries a success across an error-type boundary, keeping the
// identity and creation time of the original result.
func successFrom[T, In, Out any](from Result[T, In]) Result[T, Out] {
	return Result[T, Out]{
		value:     from.value,
		isOk:      true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Value returns the success value, or the zero value for an Error.
func (r Result[T, E]) Value() T {
	return r.value
}

// ErrValue returns the error value, or the zero value for a Success.
func (r Result[T, E]) ErrValue() E {
	return r.errVal
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the success value or panics with *UnwrapError. For an Error
// the panic's cause is the held error value itself when it implements error,
// otherwise an *ErrorWrapper around it. An optional message replaces the
// default one.
func (r Result[T, E]) Unwrap(msg ...string) T {
	if r.isOk {
		return r.value
	}

	s := defaultUnwrapMsg
	if len(msg) > 0 {
		s = msg[0]
	}
	panic(&UnwrapError{Msg: s, cause: asError(r.errVal)})
}

// UnwrapOr returns the success value, or fallback for an Error.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value, or the computed fallback for an Error.
func (r Result[T, E]) UnwrapOrElse(fallback func() T) T {
	if r.isOk {
		return r.value
	}
	return fallback()
}

// UnwrapErr returns the error value or panics with *UnwrapError.
// An optional message replaces the default one.
func (r Result[T, E]) UnwrapErr(msg ...string) E {
	if !r.isOk {
		return r.errVal
	}

	s := defaultUnwrapErrMsg
	if len(msg) > 0 {
		s = msg[0]
	}
	panic(&UnwrapError{Msg: s})
}

// Ok projects the success variant into a Maybe: Something for Success,
// Nothing for Error.
func (r Result[T, E]) Ok() maybe.Maybe[T] {
	if r.isOk {
		return maybe.Something(r.value)
	}
	return maybe.Nothing[T]()
}

// Err projects the error variant into a Maybe: Something for Error,
// Nothing for Success.
func (r Result[T, E]) Err() maybe.Maybe[E] {
	if !r.isOk {
		return maybe.Something(r.errVal)
	}
	return maybe.Nothing[E]()
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.errVal)
}
