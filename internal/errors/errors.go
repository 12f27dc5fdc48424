// Package errors provides custom error types for the generative language
// API client.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Sentinel errors for common cases
var (
	ErrMissingAPIKey        = errors.New("api key not set")
	ErrEmptyHistory         = errors.New("conversation history is empty")
	ErrClientNotInitialized = errors.New("client not initialized")
	ErrInvalidResponse      = errors.New("invalid response format")
	ErrNoContent            = errors.New("no content in response")
)

// AuthError represents a rejected API key (HTTP 401/403)
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed: check your API key"
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

// Is allows comparison with other auth errors
func (e *AuthError) Is(target error) bool {
	_, ok := target.(*AuthError)
	return ok
}

// NewAuthError creates a new AuthError
func NewAuthError(statusCode int, message string) *AuthError {
	return &AuthError{StatusCode: statusCode, Message: message}
}

// APIError represents an API request failure
type APIError struct {
	StatusCode   int
	Status       string // RPC status string from the error body, e.g. INVALID_ARGUMENT
	Message      string
	Endpoint     string
	ResponseBody string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// NewAPIErrorWithBody creates an APIError carrying the raw response body
// for diagnostics
func NewAPIErrorWithBody(statusCode int, endpoint, message, body string) *APIError {
	return &APIError{
		StatusCode:   statusCode,
		Endpoint:     endpoint,
		Message:      message,
		ResponseBody: body,
	}
}

// TimeoutError represents a request timeout
type TimeoutError struct {
	Endpoint string
	Err      error
}

func (e *TimeoutError) Error() string {
	if e.Endpoint == "" {
		return "request timed out"
	}
	return fmt.Sprintf("request timed out at %s", e.Endpoint)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a new TimeoutError
func NewTimeoutError(endpoint string, err error) *TimeoutError {
	return &TimeoutError{Endpoint: endpoint, Err: err}
}

// NetworkError represents a transport-level failure before any HTTP status
// was received
type NetworkError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// NewNetworkErrorWithEndpoint creates a NetworkError that records the endpoint
func NewNetworkErrorWithEndpoint(op, endpoint string, err error) *NetworkError {
	return &NetworkError{Op: op, Endpoint: endpoint, Err: err}
}

// UsageLimitError represents a usage limit exceeded error (HTTP 429)
type UsageLimitError struct {
	ModelID string
	Message string
}

func (e *UsageLimitError) Error() string {
	if e.Message == "" {
		if e.ModelID != "" {
			return fmt.Sprintf("usage limit exceeded for %s", e.ModelID)
		}
		return "usage limit exceeded"
	}
	return fmt.Sprintf("usage limit exceeded: %s", e.Message)
}

// NewUsageLimitError creates a new UsageLimitError
func NewUsageLimitError(modelID, message string) *UsageLimitError {
	return &UsageLimitError{ModelID: modelID, Message: message}
}

// BlockedError represents a reply withheld by the API's safety filters
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	if e.Reason == "" {
		return "response blocked"
	}
	return fmt.Sprintf("response blocked: %s", e.Reason)
}

// NewBlockedError creates a new BlockedError
func NewBlockedError(reason string) *BlockedError {
	return &BlockedError{Reason: reason}
}

// ParseError represents a response parsing error
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidResponse {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// FromStatus maps a non-200 HTTP response to the appropriate error type.
// message and status come from the decoded error body when available;
// body is the raw response for diagnostics.
func FromStatus(statusCode int, endpoint, modelID, status, message, body string) error {
	switch statusCode {
	case 401, 403:
		return NewAuthError(statusCode, message)
	case 429:
		return NewUsageLimitError(modelID, message)
	default:
		err := NewAPIErrorWithBody(statusCode, endpoint, message, body)
		err.Status = status
		return err
	}
}

// IsAuthError reports whether err indicates a rejected or missing API key
func IsAuthError(err error) bool {
	if errors.Is(err, ErrMissingAPIKey) {
		return true
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsRateLimitError reports whether err indicates quota exhaustion
func IsRateLimitError(err error) bool {
	var limitErr *UsageLimitError
	if errors.As(err, &limitErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429
	}
	return false
}

// IsTimeoutError reports whether err indicates a timed-out request
func IsTimeoutError(err error) bool {
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsNetworkError reports whether err indicates a transport-level failure
func IsNetworkError(err error) bool {
	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsBlockedError reports whether err indicates a safety block
func IsBlockedError(err error) bool {
	var blockedErr *BlockedError
	return errors.As(err, &blockedErr)
}

// GetHTTPStatus returns the HTTP status embedded in err, or 0
func GetHTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.StatusCode
	}
	var limitErr *UsageLimitError
	if errors.As(err, &limitErr) {
		return 429
	}
	return 0
}

// GetErrorCode returns the RPC status string embedded in err, or ""
func GetErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return ""
}

// GetEndpoint returns the endpoint recorded in err, or ""
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return timeoutErr.Endpoint
	}
	var networkErr *NetworkError
	if errors.As(err, &networkErr) {
		return networkErr.Endpoint
	}
	return ""
}

// GetResponseBody returns the raw response body recorded in err, or ""
func GetResponseBody(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ResponseBody
	}
	return ""
}
