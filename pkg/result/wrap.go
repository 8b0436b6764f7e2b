package result

import "errors"

// Adapters between the Result convention and the two native Go failure
// conventions: the (value, error) pair and panicking with an error value.

// From converts a (value, error) pair into a Result: a non-nil error wins.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Error[T](err)
	}
	return Success[T, error](v)
}

// Try chains a (value, error) returning function on the success value, or
// returns the Error unchanged.
func Try[In, Out any](r Result[In, error], f func(In) (Out, error)) Result[Out, error] {
	if !r.isOk {
		return errorFrom[In, Out](r)
	}

	out, err := f(r.value)
	if err != nil {
		return Error[Out](err)
	}
	return Success[Out, error](out)
}

// WrapResult adapts a computation that panics with error values to return a
// Result instead. Normal completion yields Success. A panic carrying an error
// that matches the catch set (per errors.Is) yields Error; an empty catch set
// matches every error. Non-matching errors and non-error panics keep
// unwinding.
func WrapResult[T any](catch ...error) func(f func() T) func() Result[T, error] {
	return func(f func() T) func() Result[T, error] {
		return func() (res Result[T, error]) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				err, ok := rec.(error)
				if !ok || !caught(err, catch) {
					panic(rec)
				}
				res = Error[T](err)
			}()

			return Success[T, error](f())
		}
	}
}

// UnwrapResult is the inverse of WrapResult: it adapts a Result-returning
// computation to the panicking convention. Success yields the held value; an
// Error re-raises its value when it implements error, otherwise raises it
// wrapped in *ErrorWrapper.
func UnwrapResult[T, E any](f func() Result[T, E]) func() T {
	return func() T {
		r := f()
		if r.isOk {
			return r.value
		}
		panic(asError(r.errVal))
	}
}

func caught(err error, catch []error) bool {
	if len(catch) == 0 {
		return true
	}
	for _, target := range catch {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
