package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an application error class.
type ErrorCode string

// AppError is the application error type carried across service and handler
// boundaries. HTTPCode is the transport mapping, never serialized.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is and As wrap the stdlib so callers need only this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Resources
	ErrUserNotFound     = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrArtisanNotFound  = New(CodeArtisanNotFound, "Artisan not found", http.StatusNotFound)
	ErrReviewNotFound   = New(CodeReviewNotFound, "Review not found", http.StatusNotFound)
	ErrReportNotFound   = New(CodeReportNotFound, "Report not found", http.StatusNotFound)
	ErrCategoryNotFound = New(CodeCategoryNotFound, "Category not found", http.StatusNotFound)
	ErrStateNotFound    = New(CodeStateNotFound, "State not found", http.StatusNotFound)
	ErrCityNotFound     = New(CodeCityNotFound, "City not found", http.StatusNotFound)

	// Business rules
	ErrDuplicateReview    = New(CodeDuplicateReview, "You have already reviewed this artisan", http.StatusConflict)
	ErrDuplicateReport    = New(CodeDuplicateReport, "You have already reported this review", http.StatusConflict)
	ErrNotEligible        = New(CodeNotEligible, "Operation not allowed for this user or artisan", http.StatusForbidden)
	ErrUsernameTaken      = New(CodeUsernameTaken, "Username already taken", http.StatusConflict)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "Email already exists", http.StatusConflict)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// System
	ErrServiceUnavailable = New(CodeServiceUnavailable, "Service temporarily unavailable", http.StatusServiceUnavailable)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// Unavailable marks a store transport failure. Surfaced as-is, never retried:
// a retried write could break the duplicate-prevention constraints if the
// first attempt actually landed.
func Unavailable(err error) *AppError {
	return ErrServiceUnavailable.WithError(err)
}
