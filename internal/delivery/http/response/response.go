package response

import (
	"net/http"

	deliverycontext "rxconsole/internal/delivery/context"
	domainerrors "rxconsole/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool                    `json:"success"`
	Code    int                     `json:"code"`    // HTTP status code
	Message string                  `json:"message"` // User-friendly message
	Data    any                     `json:"data,omitempty"`
	Error   *domainerrors.ErrorInfo `json:"error,omitempty"`

	RequestID string `json:"requestId,omitempty"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,

		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},

		RequestID: deliverycontext.GetRequestID(c),
	})
}

// AppError renders an AppError; data carries the view state that goes with it, if any
func AppError(c echo.Context, appErr domainerrors.AppError, data any) error {
	info := domainerrors.NewErrorInfo(appErr)
	if appErr.HTTPCode() >= http.StatusInternalServerError && appErr.HTTPCode() != http.StatusBadGateway {
		info.Details = ""
	}

	return c.JSON(appErr.HTTPCode(), Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Data:    data,
		Error:   info,

		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
