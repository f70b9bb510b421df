// Package response defines the unified API envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// SuccessResponse unified success envelope
type SuccessResponse struct {
	Status  string `json:"status"` // Always "success"
	Data    any    `json:"data"`
	Message string `json:"message"` // User-friendly message
}

// ErrorResponse unified error envelope
type ErrorResponse struct {
	Status string      `json:"status"` // Always "error"
	Errors []ErrorItem `json:"errors"`
}

// ErrorItem detailed error information
type ErrorItem struct {
	Type    string `json:"type"`              // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error description
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_CREDENTIALS"
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, SuccessResponse{
		Status:  statusSuccess,
		Data:    data,
		Message: message,
	})
}

// Error error response with a single error item
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Status: statusError,
		Errors: []ErrorItem{
			{
				Type:    message,
				Details: details,
				Code:    errorCode,
			},
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
