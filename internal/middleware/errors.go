package middleware

import "time"

// Error codes returned by middleware responses.
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

// Messages paired with the codes above.
const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
)

// errorBody builds the same error envelope the API handlers return, so
// clients see one shape regardless of which layer rejected the request.
func errorBody(code, message string) map[string]interface{} {
	return map[string]interface{}{
		"error":     code,
		"message":   message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
}
