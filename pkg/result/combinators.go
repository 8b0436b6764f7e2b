package result

// Package-level combinators. Go methods cannot introduce type parameters,
// so every transformation that changes T or E lives here as a free function,
// with the input result as the first argument.

// Map transforms the success value, or returns the Error unchanged
// (f is not invoked for an Error).
func Map[In, Out, E any](r Result[In, E], f func(In) Out) Result[Out, E] {
	if r.isOk {
		return Success[Out, E](f(r.value))
	}
	return errorFrom[In, Out](r)
}

// MapErr transforms the error value, or returns the Success unchanged
// (f is not invoked for a Success).
func MapErr[T, In, Out any](r Result[T, In], f func(In) Out) Result[T, Out] {
	if !r.isOk {
		return Error[T](f(r.errVal))
	}
	return successFrom[T, In, Out](r)
}

// MapOr transforms the success value, or returns fallback for an Error.
func MapOr[In, Out, E any](r Result[In, E], fallback Out, f func(In) Out) Out {
	if r.isOk {
		return f(r.value)
	}
	return fallback
}

// MapOrElse transforms the success value, or returns the computed fallback
// for an Error.
func MapOrElse[In, Out, E any](r Result[In, E], fallback func() Out, f func(In) Out) Out {
	if r.isOk {
		return f(r.value)
	}
	return fallback()
}

// AndThen chains a result-returning function on the success value, or returns
// the Error unchanged (f is not invoked for an Error).
func AndThen[In, Out, E any](r Result[In, E], f func(In) Result[Out, E]) Result[Out, E] {
	if r.isOk {
		return f(r.value)
	}
	return errorFrom[In, Out](r)
}

// OrElse chains a result-returning function on the error value, or returns
// the Success unchanged (f is not invoked for a Success).
func OrElse[T, In, Out any](r Result[T, In], f func(In) Result[T, Out]) Result[T, Out] {
	if !r.isOk {
		return f(r.errVal)
	}
	return successFrom[T, In, Out](r)
}
