package result

import "fmt"

const (
	defaultUnwrapMsg    = "attempted to unwrap an Error"
	defaultUnwrapErrMsg = "attempted to unwrap the error from a Success"
)

// UnwrapError reports unwrapping the wrong variant: Unwrap on an Error or
// UnwrapErr on a Success. It is distinguishable from domain errors carried
// as E, so a caller can tell a logic defect from a failed computation.
type UnwrapError struct {
	Msg   string
	cause error
}

func (e *UnwrapError) Error() string {
	if e.cause != nil {
		return e.Msg + ": " + e.cause.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying error value, when the unwrapped Error held
// one (possibly via *ErrorWrapper).
func (e *UnwrapError) Unwrap() error {
	return e.cause
}

// ErrorWrapper adapts an error payload that does not implement error to the
// error interface, so it can travel as a panic value or an error cause.
type ErrorWrapper struct {
	Value any
}

func (e *ErrorWrapper) Error() string {
	return fmt.Sprintf("wrapped error value: %v", e.Value)
}

// asError returns v itself when it implements error, otherwise an
// *ErrorWrapper around it.
func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &ErrorWrapper{Value: v}
}
