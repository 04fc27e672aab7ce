// Package error defines domain-specific errors for the Grove application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the record.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalName is returned when the goal name is empty.
	ErrInvalidGoalName = errors.New("invalid goal name")

	// ErrInvalidGoalType is returned when the goal type is not one of the known variants.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidTargetAmount is returned when a save-by-date target is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidLimitAmount is returned when a budget-cap limit is zero or negative.
	ErrInvalidLimitAmount = errors.New("invalid limit amount")

	// ErrInvalidBudgetPeriod is returned when the budget period is neither week nor month.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidEntryAmount is returned when a logged purchase or saving is zero or negative.
	ErrInvalidEntryAmount = errors.New("invalid entry amount")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalName     GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalType     GoalErrorCode = "GOL-010003"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010004"
	ErrCodeInvalidLimitAmount  GoalErrorCode = "GOL-010005"
	ErrCodeInvalidBudgetPeriod GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010007"
	ErrCodeInvalidEntryAmount  GoalErrorCode = "GOL-010008"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
