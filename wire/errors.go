package wire

import (
	"errors"
	"fmt"
)

// ErrInvalidBool is returned when a bool is encoded as anything but 0 or 1.
var ErrInvalidBool = errors.New("wire: invalid bool encoding")

// MismatchError reports a field whose decoded value differs from the value
// it is declared to equal.
type MismatchError struct {
	Field string
	Got   any
	Want  any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("wire: field %s: got %v, want %v", e.Field, e.Got, e.Want)
}

// Check returns a *MismatchError when got != want.
func Check[T comparable](field string, got, want T) error {
	if got != want {
		return &MismatchError{Field: field, Got: got, Want: want}
	}
	return nil
}
