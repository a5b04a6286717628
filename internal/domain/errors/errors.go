package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"rxconsole/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
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
	return e.message
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

// Message returns the user-friendly error message
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

// Is matches errors by business code so WithDetails copies still satisfy errors.Is
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrSessionMissing = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_MISSING",
		"Please sign in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"The provided token is not a valid bearer token",
		"",
	)

	// Table-related errors
	ErrResourceNotFound = NewBaseError(
		http.StatusNotFound,
		"RESOURCE_NOT_FOUND",
		"Unknown resource",
		"",
	)

	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"Record is not on the current page",
		"",
	)

	ErrInvalidPage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAGE",
		"Page must be 1 or greater",
		"",
	)

	ErrInvalidFilter = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"Unsupported filter value",
		"",
	)

	ErrInvalidDialogMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DIALOG_MODE",
		"Unsupported dialog mode",
		"",
	)

	ErrDialogNotOpen = NewBaseError(
		http.StatusConflict,
		"DIALOG_NOT_OPEN",
		"The dialog is no longer open",
		"",
	)

	ErrUnsupportedFormat = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FORMAT",
		"Unsupported export format",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification is not on the current page",
		"",
	)

	ErrConfirmationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFIRMATION_NOT_FOUND",
		"Nothing is waiting for confirmation",
		"",
	)

	ErrEmptySelection = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_SELECTION",
		"Select at least one notification",
		"",
	)

	// General errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request body",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError is a local, field-scoped form error; it never reaches the network
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from field -> message pairs
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Please correct the highlighted fields"
}

// Details returns the field errors in a stable order
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.fields[name])
	}

	return strings.Join(parts, "; ")
}

// Fields returns the inline message for each invalid field
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}

// RemoteFetchError puts a list view into its error state with a retry affordance
type RemoteFetchError struct {
	label         string
	serverMessage string
	err           error
}

// NewRemoteFetchError creates a fetch error for the given entity label
func NewRemoteFetchError(label, serverMessage string, err error) *RemoteFetchError {
	return &RemoteFetchError{label: label, serverMessage: serverMessage, err: err}
}

// Error implements the error interface
func (e *RemoteFetchError) Error() string {
	return wrapText(e.err, fmt.Sprintf("fetch %s", e.label))
}

// Unwrap returns the transport or API error
func (e *RemoteFetchError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *RemoteFetchError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteFetchError) ErrorCode() string {
	return "REMOTE_FETCH_FAILED"
}

// Message returns the server message when present
func (e *RemoteFetchError) Message() string {
	if e.serverMessage != "" {
		return e.serverMessage
	}

	return fmt.Sprintf("Failed to load %s", e.label)
}

// Details returns detailed error information
func (e *RemoteFetchError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// RemoteMutationError is surfaced as a transient notice; prior UI state is preserved
type RemoteMutationError struct {
	action        string
	label         string
	serverMessage string
	err           error
}

// NewRemoteMutationError creates a mutation error for an action such as "create" or "delete"
func NewRemoteMutationError(action, label, serverMessage string, err error) *RemoteMutationError {
	return &RemoteMutationError{action: action, label: label, serverMessage: serverMessage, err: err}
}

// Error implements the error interface
func (e *RemoteMutationError) Error() string {
	return wrapText(e.err, fmt.Sprintf("%s %s", e.action, e.label))
}

// Unwrap returns the transport or API error
func (e *RemoteMutationError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *RemoteMutationError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteMutationError) ErrorCode() string {
	return "REMOTE_MUTATION_FAILED"
}

// Message returns the server message when present, else "Failed to <action> <label>"
func (e *RemoteMutationError) Message() string {
	if e.serverMessage != "" {
		return e.serverMessage
	}

	return fmt.Sprintf("Failed to %s %s", e.action, e.label)
}

// Details returns detailed error information
func (e *RemoteMutationError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// SocketConnectionError is logged and recovered by reconnection, never shown to the operator
type SocketConnectionError struct {
	attempt int
	err     error
}

// NewSocketConnectionError creates a socket error for a dial or read failure
func NewSocketConnectionError(attempt int, err error) *SocketConnectionError {
	return &SocketConnectionError{attempt: attempt, err: err}
}

// Error implements the error interface
func (e *SocketConnectionError) Error() string {
	return wrapText(e.err, fmt.Sprintf("socket connection attempt %d", e.attempt))
}

// Unwrap returns the transport error
func (e *SocketConnectionError) Unwrap() error {
	return e.err
}

// Attempt returns the reconnection attempt that failed
func (e *SocketConnectionError) Attempt() int {
	return e.attempt
}

// HTTPCode returns the HTTP status code
func (e *SocketConnectionError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *SocketConnectionError) ErrorCode() string {
	return "SOCKET_CONNECTION_FAILED"
}

// Message returns the user-friendly error message
func (e *SocketConnectionError) Message() string {
	return "Live updates are temporarily unavailable"
}

// Details returns detailed error information
func (e *SocketConnectionError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

func wrapText(err error, message string) string {
	if err == nil {
		return message
	}

	return errors.Wrap(err, message).Error()
}
