package error

import "errors"

// User-record domain errors. Storage read failures are recovered locally by
// falling back to defaults, so only settings-boundary validation surfaces to
// callers.
var (
	// ErrInvalidAppearance is returned when the appearance is not system, light or dark.
	ErrInvalidAppearance = errors.New("invalid appearance")

	// ErrInvalidUserName is returned when the user name is empty.
	ErrInvalidUserName = errors.New("invalid user name")

	// ErrInvalidCustomTime is returned when the custom check-in time is not HH:MM.
	ErrInvalidCustomTime = errors.New("invalid custom check-in time")
)

// RecordErrorCode defines error codes for user-record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAppearance RecordErrorCode = "REC-010001"
	ErrCodeInvalidUserName   RecordErrorCode = "REC-010002"
	ErrCodeInvalidCustomTime RecordErrorCode = "REC-010003"
	ErrCodeMissingFields     RecordErrorCode = "REC-010004"
)

// RecordError represents a user-record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
