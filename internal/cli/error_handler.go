package cli

import (
	"fmt"
	"io"
	"os"

	"worklog/internal/errors"
	"worklog/internal/validation"
)

// ErrorHandler provides centralized error handling for command
// handlers. User-level problems (bad input, missing entries, empty
// store) are printed and absorbed so the process exits cleanly;
// storage failures propagate and are fatal.
type ErrorHandler struct {
	out io.Writer
}

// NewErrorHandler creates a new error handler printing to stderr
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{out: os.Stderr}
}

// Handle reports the error for the given operation. Returns nil after
// printing a user-facing message for user errors; returns the wrapped
// error for system errors so the caller can fail.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		fmt.Fprintf(eh.out, "cannot %s: %s\n", operation, validationErr.GetUserFriendlyMessage())
		return nil
	}

	if appErr, ok := errors.AsAppError(err); ok && !errors.ShouldLogError(appErr) {
		fmt.Fprintf(eh.out, "cannot %s: %s\n", operation, errors.GetUserMessage(err))
		return nil
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// IsUserError checks whether an error would be absorbed by Handle
func (eh *ErrorHandler) IsUserError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	if appErr, ok := errors.AsAppError(err); ok {
		return !errors.ShouldLogError(appErr)
	}
	return false
}
