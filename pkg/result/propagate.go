package result

// propagation is the non-local exit signal raised by Propagate on an Error.
// It carries exactly one error payload up the stack and must be absorbed by
// exactly one Stop boundary. It implements error so that an escaped signal
// fail-fasts with a message naming the missing boundary.
type propagation struct {
	err any
}

func (p *propagation) Error() string {
	return "uncaught propagation, did you forget to wrap the function with result.Stop?"
}

// Propagate returns the success value, or short-circuits out of the calling
// function by raising a propagation signal carrying the error value. The
// signal unwinds intervening frames untouched until the nearest enclosing
// Stop boundary converts it back into an Error.
//
// Call sites read linearly, as if every step succeeds:
//
//	func total() result.Result[int, error] {
//		return result.Stop[int, error](func() int {
//			a := load("a").Propagate()
//			b := load("b").Propagate()
//			return a + b
//		})
//	}
func (r Result[T, E]) Propagate() T {
	if r.isOk {
		return r.value
	}
	panic(&propagation{err: r.errVal})
}

// Stop runs f as a propagation boundary. Normal completion yields
// Success(f()). A propagation signal raised below f whose payload is an E is
// intercepted here and returned as Error; one carrying a different payload
// type keeps unwinding so an outer boundary can absorb it. Every other panic
// passes through unaltered.
func Stop[T, E any](f func() T) (res Result[T, E]) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		p, ok := rec.(*propagation)
		if !ok {
			panic(rec)
		}

		e, ok := p.err.(E)
		if !ok {
			panic(rec)
		}
		res = Error[T](e)
	}()

	return Success[T, E](f())
}
