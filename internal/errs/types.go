// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldError for invalid input, HTTPError for API responses)
// so the client receives consistent error bodies.
//
//   - Every error reaching the client is serialized as ErrorResponse.
//   - Field-level validation errors travel in ErrorResponse.Errors.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "draw_date", "error": "must be a YYYY-MM-DD date" }
type FieldError struct {
	// Field is the JSON field name the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "USER_REQUIRED").
//   - Message: message sent to the client under "error".
//   - Status: HTTP status code.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors"`
}

// Error returns the client-facing message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Response converts e into the JSON body written to the client.
func (e *HTTPError) Response() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Errors: e.Errors,
	}
}

// ErrorResponse is the JSON body of every non-2xx response.
//
//	{"error": "User not found"}
//	{"error": "Validation failed", "errors": [{"field": "email", "error": "is required"}]}
type ErrorResponse struct {
	Error  string       `json:"error"`
	Errors []FieldError `json:"errors,omitempty"`
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
