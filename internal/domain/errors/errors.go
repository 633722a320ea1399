package errors

import (
	"net/http"

	"townscoffee/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so a sentinel
// still matches after WithMessage or WithDetails produced a copy.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message and keeps the business code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Validation errors. The message of a validation failure is replaced by the
// validator's own message via WithMessage.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"invalid email address",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD",
		"invalid password",
		"",
	)

	ErrInvalidNationalID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_NATIONAL_ID",
		"invalid national id",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"invalid phone number",
		"",
	)

	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"invalid argument",
		"",
	)

	ErrInvalidTownID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOWN_ID",
		"invalid town id",
		"",
	)
)

// Not-found errors
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrTownNotFound = NewBaseError(
		http.StatusNotFound,
		"TOWN_NOT_FOUND",
		"town not found",
		"",
	)

	ErrCoffeeNotFound = NewBaseError(
		http.StatusNotFound,
		"COFFEE_NOT_FOUND",
		"coffee not found",
		"",
	)

	ErrFarmerNotFound = NewBaseError(
		http.StatusNotFound,
		"FARMER_NOT_FOUND",
		"coffee farmer not found",
		"",
	)
)

// Identity provider errors. The provider's own message travels in Details.
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrUserDisabled = NewBaseError(
		http.StatusForbidden,
		"USER_DISABLED",
		"this account has been disabled",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"too many attempts, try again later",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_IN_USE",
		"this email is already registered",
		"",
	)

	ErrIdentityProvider = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_ERROR",
		"identity provider request failed",
		"",
	)

	ErrSignOutFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGN_OUT_FAILED",
		"failed to close the session",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)
)

// Persistence and consistency errors
var (
	ErrPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"failed to access the data store",
		"",
	)

	ErrProfilePersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_PERSISTENCE_FAILED",
		"failed to save the user profile",
		"",
	)

	ErrAccountRollbackFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_ROLLBACK_FAILED",
		"failed to remove the account after a profile save failure",
		"",
	)
)

// Farmer application errors
var (
	ErrFarmerApplicationExists = NewBaseError(
		http.StatusConflict,
		"FARMER_APPLICATION_EXISTS",
		"this user already has a coffee farmer profile",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"the application cannot move to the requested status",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a data store failure, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a data store related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "data store execution failed").Error()
}

// Unwrap exposes the underlying store error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return ErrPersistenceFailed.ErrorCode()
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return ErrPersistenceFailed.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Is lets errors.Is(err, ErrPersistenceFailed) match store failures.
func (e *DatabaseExecuteError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == ErrPersistenceFailed.errorCode
}
