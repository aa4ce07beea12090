package cli

import (
	"fmt"

	"tasklist/internal/errors"
	"tasklist/internal/validation"
)

// ErrorHandler provides centralized error handling for commands
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := validation.AsValidationError(err); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

// IsInputClosed checks if input ended before the session finished
func (eh *ErrorHandler) IsInputClosed(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeInputClosed)
}

// ShouldLog reports whether err deserves a log line in addition to the
// message shown to the user
func (eh *ErrorHandler) ShouldLog(err error) bool {
	return errors.ShouldLogError(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
