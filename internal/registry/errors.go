package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling across transports.
var (
	ErrToolNotFound  = errors.New("tool not found")
	ErrUserCancelled = errors.New("user cancelled")
)

// ValidationError reports input that does not satisfy a tool's
// declared schema. It is raised before the wrapped operation runs.
type ValidationError struct {
	Tool string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %v", e.Tool, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
