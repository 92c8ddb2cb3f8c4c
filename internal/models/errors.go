// Package models contains data structures for the application's domain models.
package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the service layer. Handlers map these to HTTP
// statuses; services never touch HTTP concerns directly.
const (
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidParent     = "INVALID_PARENT"
	CodeForbidden         = "FORBIDDEN"
	CodeInvalidAttachment = "INVALID_ATTACHMENT"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// Envelope is the uniform response shape every endpoint returns: a success
// flag, a human-readable message, and an optional payload.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

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

// Predefined error constructors

func NewUnauthenticatedError() *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: "Authentication required",
	}
}

func NewUserNotFoundError() *AppError {
	return &AppError{
		Code:    CodeUserNotFound,
		Message: "User no longer exists",
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewInvalidParentError(parentID interface{}) *AppError {
	return &AppError{
		Code:    CodeInvalidParent,
		Message: fmt.Sprintf("Parent comment with ID %v not found", parentID),
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewInvalidAttachmentError() *AppError {
	return &AppError{
		Code:    CodeInvalidAttachment,
		Message: "An image must belong to exactly one owner",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// ErrorCode returns the AppError code carried by err, or CodeInternal for
// unclassified errors.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus returns the HTTP status an error maps to. Unclassified errors
// (including raw persistence failures) map to 500.
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeUnauthenticated, CodeUserNotFound:
		return fiber.StatusUnauthorized
	case CodeNotFound, CodeInvalidParent:
		return fiber.StatusNotFound
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeInvalidAttachment, CodeValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithData writes a success envelope with the given payload.
func RespondWithData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Data:    data,
	})
}

// RespondWithError writes a failure envelope, deriving the status from the
// error's code.
func RespondWithError(c *fiber.Ctx, err error) error {
	message := err.Error()
	var appErr *AppError
	if errors.As(err, &appErr) {
		// Wrapped causes stay out of responses; they are for logs only.
		message = appErr.Message
	}
	return c.Status(HTTPStatus(err)).JSON(Envelope{
		Success: false,
		Message: message,
	})
}

// RespondWithStatusError writes a failure envelope with an explicit status,
// for cases (body parsing, route params) where no AppError code applies.
func RespondWithStatusError(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: err.Error(),
	})
}
