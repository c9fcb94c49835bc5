package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine readable kind of an AppError
type ErrorCode string

const (
	// Booking errors
	ErrCodeMissingBookingFields ErrorCode = "MISSING_BOOKING_FIELDS"
	ErrCodeBookingNotFound      ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeInvalidDateRange     ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidRate          ErrorCode = "INVALID_RATE"
	ErrCodePriceOutOfRange      ErrorCode = "PRICE_OUT_OF_RANGE"
	ErrCodeAlreadyCancelled     ErrorCode = "ALREADY_CANCELLED"
	ErrCodeCheckInPassed        ErrorCode = "CHECK_IN_PASSED"
	ErrCodeRoomUnavailable      ErrorCode = "ROOM_UNAVAILABLE"

	// Catalog errors
	ErrCodeRoomNotFound  ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeHotelNotFound ErrorCode = "HOTEL_NOT_FOUND"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// User errors
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists         ErrorCode = "USER_EXISTS"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// AppError is the error type returned by services
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

// Is reports whether target is an AppError with the same code, so
// errors.Is(err, ErrRoomNotFound) holds for any wrapped room-not-found error.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is or wraps an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError extracts the AppError from err
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err carries the given code
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

// DBError wraps a storage failure
func DBError(op string, err error) *AppError {
	return NewAppError(ErrCodeDBError, op, err)
}

var (
	// Booking errors
	ErrMissingBookingFields = NewAppError(ErrCodeMissingBookingFields, "missing required booking fields", nil)
	ErrBookingNotFound      = NewAppError(ErrCodeBookingNotFound, "booking not found", nil)
	ErrInvalidDateRange     = NewAppError(ErrCodeInvalidDateRange, "booking must be for at least one night", nil)
	ErrInvalidRate          = NewAppError(ErrCodeInvalidRate, "nightly rate must be positive", nil)
	ErrPriceOutOfRange      = NewAppError(ErrCodePriceOutOfRange, "stay price is too large", nil)
	ErrAlreadyCancelled     = NewAppError(ErrCodeAlreadyCancelled, "this booking has already been cancelled", nil)
	ErrCheckInPassed        = NewAppError(ErrCodeCheckInPassed, "cannot cancel after check-in date has passed", nil)
	ErrRoomUnavailable      = NewAppError(ErrCodeRoomUnavailable, "room is already booked for these dates", nil)

	// Catalog errors
	ErrRoomNotFound  = NewAppError(ErrCodeRoomNotFound, "room not found", nil)
	ErrHotelNotFound = NewAppError(ErrCodeHotelNotFound, "hotel not found", nil)
	ErrInvalidStatus = NewAppError(ErrCodeInvalidStatus, "invalid status", nil)

	// User errors
	ErrUserNotFound       = NewAppError(ErrCodeUserNotFound, "user not found", nil)
	ErrUserExists         = NewAppError(ErrCodeUserExists, "User with this email already exists", nil)
	ErrInvalidCredentials = NewAppError(ErrCodeInvalidCredentials, "invalid email or password", nil)
	ErrForbidden          = NewAppError(ErrCodeForbidden, "access denied", nil)
)
