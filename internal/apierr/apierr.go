// Package apierr defines the status-coded error taxonomy shared by every
// service. Each error carries an HTTP status, a machine-readable code and a
// human message; the central Fiber error handler renders them as JSON.
package apierr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeAuthRequired   = "AUTH_REQUIRED"
	CodeAuthInvalid    = "AUTH_INVALID"
	CodeForbidden      = "FORBIDDEN"
	CodeValidation     = "VALIDATION"
	CodeNotFound       = "NOT_FOUND"
	CodeDuplicate      = "DUPLICATE"
	CodeCategoryInUse  = "CATEGORY_IN_USE"
	CodeEmailTaken     = "AUTH_EMAIL_TAKEN"
	CodeSimulated500   = "SIMULATED_500"
	CodeStoreUnhealthy = "MOCK_DB_MISSING"
)

type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func AuthRequired() *Error {
	return New(fiber.StatusUnauthorized, CodeAuthRequired, "You must be logged in.")
}

func AuthInvalid() *Error {
	return New(fiber.StatusUnauthorized, CodeAuthInvalid, "Invalid email or password.")
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "You do not have permission to do that."
	}
	return New(fiber.StatusForbidden, CodeForbidden, message)
}

func Validation(message string) *Error {
	return New(fiber.StatusBadRequest, CodeValidation, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, CodeNotFound, message)
}

func Duplicate(message string) *Error {
	return New(fiber.StatusConflict, CodeDuplicate, message)
}

func CategoryInUse() *Error {
	return New(fiber.StatusConflict, CodeCategoryInUse, "This category is used by existing recipes.")
}

func EmailTaken() *Error {
	return New(fiber.StatusConflict, CodeEmailTaken, "This email is already registered.")
}

func Simulated() *Error {
	return New(fiber.StatusInternalServerError, CodeSimulated500, "Simulated server error.")
}

func StoreUnavailable() *Error {
	return New(fiber.StatusInternalServerError, CodeStoreUnhealthy, "Demo data is unavailable.")
}

// From unwraps err into an *Error when it is one.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
