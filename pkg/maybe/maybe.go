package maybe

import "fmt"

// EmptyMaybeError is raised (via panic) when unwrapping Nothing.
type EmptyMaybeError struct {
	Msg string
}

func (e *EmptyMaybeError) Error() string {
	return e.Msg
}

const defaultUnwrapMsg = "attempted to unwrap Nothing"

// Maybe holds either a present value (Something) or no value (Nothing).
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	some  bool
}

func Something[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, some: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsSomething() bool {
	return m.some
}

func (m Maybe[T]) IsNothing() bool {
	return !m.some
}

// Get returns the held value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.some
}

// GetOr returns the held value, or fallback for Nothing.
func (m Maybe[T]) GetOr(fallback T) T {
	if m.some {
		return m.value
	}
	return fallback
}

// Unwrap returns the held value or panics with *EmptyMaybeError.
// An optional message replaces the default one.
func (m Maybe[T]) Unwrap(msg ...string) T {
	if m.some {
		return m.value
	}

	s := defaultUnwrapMsg
	if len(msg) > 0 {
		s = msg[0]
	}
	panic(&EmptyMaybeError{Msg: s})
}

func (m Maybe[T]) String() string {
	if m.some {
		return fmt.Sprintf("Something(%v)", m.value)
	}
	return "Nothing"
}

// Map transforms the held value, or returns Nothing unchanged.
func Map[In, Out any](m Maybe[In], f func(In) Out) Maybe[Out] {
	if m.some {
		return Something(f(m.value))
	}
	return Nothing[Out]()
}

// MapOr transforms the held value, or wraps the fallback for Nothing.
func MapOr[In, Out any](m Maybe[In], f func(In) Out, fallback Out) Maybe[Out] {
	if m.some {
		return Something(f(m.value))
	}
	return Something(fallback)
}

// MapOrElse transforms the held value, or wraps the computed fallback for Nothing.
func MapOrElse[In, Out any](m Maybe[In], f func(In) Out, fallback func() Out) Maybe[Out] {
	if m.some {
		return Something(f(m.value))
	}
	return Something(fallback())
}
