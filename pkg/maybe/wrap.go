package maybe

// From converts a comma-ok pair into a Maybe.
func From[T any](v T, ok bool) Maybe[T] {
	if ok {
		return Something(v)
	}
	return Nothing[T]()
}

// FromPtr converts a nilable pointer into a Maybe holding the pointed-to value.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Something(*p)
}

// ToPtr is the inverse of FromPtr: Nothing becomes nil.
func ToPtr[T any](m Maybe[T]) *T {
	if m.some {
		v := m.value
		return &v
	}
	return nil
}

// WrapPtr adapts a pointer-returning function to return a Maybe instead.
func WrapPtr[T any](f func() *T) func() Maybe[T] {
	return func() Maybe[T] {
		return FromPtr(f())
	}
}

// UnwrapPtr adapts a Maybe-returning function back to the pointer convention.
func UnwrapPtr[T any](f func() Maybe[T]) func() *T {
	return func() *T {
		return ToPtr(f())
	}
}
