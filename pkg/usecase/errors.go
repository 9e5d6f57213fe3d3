package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = errors.New("validation failed")
)

// Validation reasons returned to clients
const (
	ReasonDateAndTypeRequired = "date and type required"
	ReasonDateRequired        = "date required"
	ReasonInvalidDate         = "date must be YYYY-MM-DD"
	ReasonInvalidType         = "unknown action type"
	ReasonInvalidCount        = "count must be at least 1"
	ReasonCountTooLarge       = "count exceeds the daily maximum"
)

// ValidationError reports unusable input. Reason is safe to show to clients.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
