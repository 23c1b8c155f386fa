package handlers

// Error Codes
const (
	ErrCodeInvalidDate      = "invalid_date"
	ErrCodeInvalidTime      = "invalid_time"
	ErrCodeQueryFailed      = "query_failed"
	ErrCodeReloadFailed     = "reload_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnknown          = "unknown_error"
)

// Success Codes
const (
	SuccessCodeReloadRequested = "reload_requested"
)

// ErrorMessages maps error codes to user-friendly messages
var ErrorMessages = map[string]string{
	ErrCodeInvalidDate:      "Please enter a valid date.",
	ErrCodeInvalidTime:      "Please enter a valid time.",
	ErrCodeQueryFailed:      "Could not answer the query. Please try again.",
	ErrCodeReloadFailed:     "Failed to reload the catalog. Please try again.",
	ErrCodeMethodNotAllowed: "Method not allowed.",
	ErrCodeUnknown:          "An unexpected error occurred.",
}

// SuccessMessages maps success codes to user-friendly messages
var SuccessMessages = map[string]string{
	SuccessCodeReloadRequested: "Catalog reload requested.",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code string) string {
	if msg, ok := ErrorMessages[code]; ok {
		return msg
	}
	return ErrorMessages[ErrCodeUnknown]
}

// GetSuccessMessage returns the message for a given success code
func GetSuccessMessage(code string) string {
	if msg, ok := SuccessMessages[code]; ok {
		return msg
	}
	return ""
}
