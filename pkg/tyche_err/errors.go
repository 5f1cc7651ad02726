// pkg/tyche_err/errors.go

package tyche_err

import (
	"errors"
)

// UserError marks an error as expected and recoverable by the user: bad flag
// values, unknown preset names, empty custom sets. These are reported without
// stack traces and exit with the validation code.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}
