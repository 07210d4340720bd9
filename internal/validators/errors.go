package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidStoreHours    = errors.New("invalid store hours")
)

// MissingFieldError names the required location field that was absent.
// It matches ErrMissingRequiredField with errors.Is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return ErrMissingRequiredField.Error() + ": " + e.Field
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
