package outcome

import (
	"context"
	"errors"
	"reflect"
)

// Argument-validation errors. Combinators panic with these when a required
// continuation, producer or fallback argument is nil. A misuse of the API is
// a programmer error and is never folded into a Fail outcome.
var (
	ErrNilContinuation = errors.New("outcome: nil continuation")
	ErrNilProducer     = errors.New("outcome: nil fallback producer")
	ErrNilFallback     = errors.New("outcome: nil fallback value")
	ErrNilValue        = errors.New("outcome: nil value")
)

// IsNil reports whether i is nil, including a typed nil wrapped in a
// non-nil interface (nil pointer, func, map, slice, chan or interface).
// Values of non-nilable kinds are never nil.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
