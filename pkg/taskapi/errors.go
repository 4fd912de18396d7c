package taskapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// FieldError describes a single field-level violation reported by the
// server, typically on validation failures.
type FieldError struct {
	Field   string `json:"field"   yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// APIError is the single error shape every caller sees for a failed
// request, regardless of whether the failure was a network error, a
// timeout, or an HTTP error response. It is synthesized exclusively by
// Normalize.
type APIError struct {
	Status    string       `json:"status"              yaml:"status"`
	Code      string       `json:"code"                yaml:"code"`
	Message   string       `json:"message"             yaml:"message"`
	Details   []FieldError `json:"details,omitempty"   yaml:"details,omitempty"`
	Timestamp string       `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// CodeUnknown is used when no HTTP status is available (network failure,
// timeout before any response).
const CodeUnknown = "UNKNOWN"

// genericNetworkError is the transport message treated as carrying no
// useful information; anything else from the transport is surfaced as-is.
const genericNetworkError = "Network Error"

// errorBody is the set of fields the server conventionally includes in
// error responses. Detail takes precedence over Message; non-string detail
// values (e.g. structured validation output) are ignored here and only
// surfaced through Details.
type errorBody struct {
	Detail    json.RawMessage `json:"detail"`
	Message   string          `json:"message"`
	Details   []FieldError    `json:"details"`
	Timestamp string          `json:"timestamp"`
}

// Normalize builds the one APIError for a failed request.
//
// Message resolution order: a string "detail" field in the body, then a
// string "message" field, then a non-generic transport error message, then
// "Error: <status>" (or "Error: Network error" when no status exists).
// Code is the status code as a string, or "UNKNOWN" when absent.
func Normalize(statusCode int, body []byte, transportErr error) *APIError {
	apiErr := &APIError{
		Status: "error",
		Code:   CodeUnknown,
	}

	if statusCode > 0 {
		apiErr.Code = strconv.Itoa(statusCode)
	}

	var parsed errorBody
	if len(body) > 0 {
		// Tolerate non-JSON bodies; the fallback message still applies.
		_ = json.Unmarshal(body, &parsed)
	}

	apiErr.Details = parsed.Details
	apiErr.Timestamp = parsed.Timestamp
	apiErr.Message = resolveMessage(statusCode, &parsed, transportErr)

	return apiErr
}

func resolveMessage(statusCode int, parsed *errorBody, transportErr error) string {
	if len(parsed.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(parsed.Detail, &detail); err == nil && detail != "" {
			return detail
		}
	}

	if parsed.Message != "" {
		return parsed.Message
	}

	if transportErr != nil {
		if msg := transportErr.Error(); msg != "" && msg != genericNetworkError {
			return msg
		}
	}

	if statusCode > 0 {
		return fmt.Sprintf("Error: %d", statusCode)
	}

	return "Error: Network error"
}

// IsUnauthorized reports whether the error is a 401 API error.
func IsUnauthorized(err error) bool {
	return hasCode(err, strconv.Itoa(http.StatusUnauthorized))
}

// IsNotFound reports whether the error is a 404 API error.
func IsNotFound(err error) bool {
	return hasCode(err, strconv.Itoa(http.StatusNotFound))
}

// IsValidation reports whether the error is a 422 API error or carries
// field-level details.
func IsValidation(err error) bool {
	apiErr := &APIError{}
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Code == strconv.Itoa(http.StatusUnprocessableEntity) || len(apiErr.Details) > 0
}

func hasCode(err error, code string) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	return false
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoSessionToken      = errors.New("no session token available")
)
