package errors

import (
	"errors"
	"fmt"

	"bank-account-cli/internal/models"
)

// Input-layer failures raised by the console reader
var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInputUnavailable = errors.New("input unavailable")
)

// AppError carries a stable code, the message shown to the user and the cause
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// ErrorOption is a functional option for configuring an AppError
type ErrorOption func(*AppError)

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(e *AppError) {
		e.Message = message
	}
}

// WithCause attaches the underlying error
func WithCause(err error) ErrorOption {
	return func(e *AppError) {
		e.Err = err
	}
}

// New creates an AppError with the default message for code
func New(code ErrorCode, opts ...ErrorOption) *AppError {
	e := &AppError{
		Code:    code,
		Message: GetErrorMessage(code),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// String returns a log-friendly representation including the code
func (e *AppError) String() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Classify maps known errors to their code. Unknown errors map to SystemUnexpectedError.
func Classify(err error) ErrorCode {
	var appErr *AppError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, models.ErrNegativeAmount):
		return AccountNegativeAmount
	case errors.Is(err, models.ErrInsufficientFunds):
		return AccountInsufficientFunds
	case errors.Is(err, models.ErrAccountClosed):
		return AccountClosed
	case errors.Is(err, models.ErrNoAccount):
		return AccountNotOpened
	case errors.Is(err, models.ErrAccountAlreadyOpen):
		return AccountAlreadyOpened
	case errors.Is(err, models.ErrInvalidAccountNumber):
		return AccountInvalidNumber
	case errors.Is(err, ErrInvalidAmount):
		return InputInvalidAmount
	case errors.Is(err, ErrInputUnavailable):
		return InputUnavailable
	default:
		return SystemUnexpectedError
	}
}

// FromError converts err into an AppError, keeping err as the cause.
// An existing AppError in the chain is returned as is; unclassified errors
// keep their own message.
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	code := Classify(err)
	if code == SystemUnexpectedError {
		return New(code, WithCause(err), WithMessage(err.Error()))
	}
	return New(code, WithCause(err))
}
