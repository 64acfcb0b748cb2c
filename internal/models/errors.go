package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// Error codes returned by the core. Every rejected operation maps to exactly
// one of these so callers can branch on the reason.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidOperation   = "INVALID_OPERATION"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyConnected   = "ALREADY_CONNECTED"
	CodeRequestAlreadySent = "REQUEST_ALREADY_SENT"
	CodePreviouslyRejected = "PREVIOUSLY_REJECTED"
	CodeGateRejected       = "GATE_REJECTED"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the AppError code for err, or empty string if err is not
// an AppError.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInvalidOperationError(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidOperation,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewAlreadyConnectedError() *AppError {
	return &AppError{
		Code:    CodeAlreadyConnected,
		Message: "You are already connected with this user",
	}
}

func NewRequestAlreadySentError(message string) *AppError {
	return &AppError{
		Code:    CodeRequestAlreadySent,
		Message: message,
	}
}

func NewPreviouslyRejectedError() *AppError {
	return &AppError{
		Code:    CodePreviouslyRejected,
		Message: "A previous request between you and this user was rejected",
	}
}

func NewGateRejectedError(message string) *AppError {
	return &AppError{
		Code:    CodeGateRejected,
		Message: message,
	}
}

// NewInternalError wraps an unexpected store or infrastructure failure.
// The core never retries these; the caller decides.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}

// StatusForError maps an AppError code to the HTTP status a handler should
// respond with.
func StatusForError(err error) int {
	switch ErrorCode(err) {
	case CodeValidation, CodeInvalidOperation:
		return fiber.StatusBadRequest
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeAlreadyConnected, CodeRequestAlreadySent, CodePreviouslyRejected, CodeGateRejected:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
