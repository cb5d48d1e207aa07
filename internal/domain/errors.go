package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotFound          = errors.New("not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrStatusUnchanged   = errors.New("order already has this status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// ValidationError describes one malformed customer field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors collects every ValidationError in err keyed by field.
func FieldErrors(err error) map[string]string {
	result := map[string]string{}
	collectFieldErrors(err, result)
	return result
}

func collectFieldErrors(err error, into map[string]string) {
	if err == nil {
		return
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			collectFieldErrors(e, into)
		}
		return
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		if _, exists := into[ve.Field]; !exists {
			into[ve.Field] = ve.Message
		}
	}
}

// PersistenceError is a failed storage call. The cart is left untouched.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	return "persistence: " + e.Message
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
