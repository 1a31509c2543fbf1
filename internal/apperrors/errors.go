package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds returned by the service layer. Handlers branch on these
// with errors.Is rather than matching message text.
var (
	ErrNotFound          = errors.New("not found")
	ErrOrderClosed       = errors.New("order is closed")
	ErrAlreadyBilled     = errors.New("order is already billed")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrNoItems           = errors.New("order has no items")
	ErrBillNotFound      = errors.New("bill not found")
	ErrStorage           = errors.New("storage error")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Storage wraps a raw storage failure so it can be detected with
// errors.Is(err, ErrStorage) without leaking the driver error type.
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
