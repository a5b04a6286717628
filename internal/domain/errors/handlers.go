package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string            `json:"code"`              // Business error code, e.g., "VALIDATION_FAILED"
	Details string            `json:"details,omitempty"` // Detailed error information (optional)
	Fields  map[string]string `json:"fields,omitempty"`  // Inline field messages for validation errors
}

// NewErrorInfo builds the error block for an AppError
func NewErrorInfo(appErr AppError) *ErrorInfo {
	info := &ErrorInfo{
		Code:    appErr.ErrorCode(),
		Details: appErr.Details(),
	}

	if v, ok := appErr.(*ValidationError); ok {
		info.Fields = v.Fields()
	}

	return info
}
