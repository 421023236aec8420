package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies application errors.
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Wizard errors
	ErrCodeInvalidStep     ErrorCode = "INVALID_STEP"
	ErrCodeSessionNotFound ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeTooManyImages   ErrorCode = "TOO_MANY_IMAGES"
	ErrCodeImageRequired   ErrorCode = "IMAGE_REQUIRED"

	// Storage errors
	ErrCodeConflict ErrorCode = "CONFLICT"
	ErrCodeIO       ErrorCode = "IO_ERROR"
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// AppError carries a code alongside the user-facing message.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError returns the AppError wrapped anywhere in err's chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given application error code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Durable store errors
	ErrRoomExists = errors.New("room number already exists")

	// Sample dataset errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrStaffNotFound    = errors.New("staff member not found")

	// Wizard errors
	ErrSessionNotFound = errors.New("wizard session not found")
	ErrImageIndex      = errors.New("image index out of range")
)
