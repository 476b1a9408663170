package cli

import (
	stderrors "errors"
	"fmt"

	"task-manager/internal/errors"
	"task-manager/internal/validation"
)

// Exit codes reported by tm
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// ErrorHandler turns service errors into messages and exit codes for the terminal
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// CommandError carries a user-facing message while keeping the cause
// reachable through errors.As
type CommandError struct {
	Operation string
	Message   string
	Err       error
}

func (e *CommandError) Error() string {
	if e.Operation == "" {
		return e.Message
	}
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Handle prefixes the user-facing message with the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	var already *CommandError
	if stderrors.As(err, &already) {
		return err
	}
	return &CommandError{Operation: operation, Message: eh.message(err), Err: err}
}

// HandleSimple returns the user-facing message without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Message: eh.message(err), Err: err}
}

func (eh *ErrorHandler) message(err error) string {
	if errors.IsAppError(err) {
		return errors.GetUserMessage(err)
	}
	var verr *validation.ValidationError
	if stderrors.As(err, &verr) {
		return verr.GetUserFriendlyMessage()
	}
	return err.Error()
}

// ExitCode maps an error to the process exit status
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case eh.IsValidationError(err), errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		return ExitUsage
	case eh.IsNotFoundError(err):
		return ExitNotFound
	default:
		return ExitFailure
	}
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	var verr *validation.ValidationError
	return stderrors.As(err, &verr) || errors.IsValidation(err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
