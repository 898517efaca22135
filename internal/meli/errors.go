package meli

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is an upstream marketplace failure: the API answered with a
// status >= 400 after the one-shot refresh-retry had its chance. The raw
// response body is preserved in Details for the caller.
type APIError struct {
	StatusCode int
	Category   string
	Message    string
	Details    json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketplace API error (status %d): %s: %s", e.StatusCode, e.Category, e.Message)
	}
	return fmt.Sprintf("marketplace API error (status %d): %s", e.StatusCode, e.Category)
}

// NotFoundError reports a resource missing from the credential store,
// most commonly a shop with no stored marketplace credential.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// RefreshFailedError reports that a 401 could not be recovered: either the
// token refresh itself failed, or the replayed call was rejected again.
type RefreshFailedError struct {
	OwnerID int64
	Err     error
}

func (e *RefreshFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token refresh failed for user %d: %v", e.OwnerID, e.Err)
	}
	return fmt.Sprintf("token refresh failed for user %d", e.OwnerID)
}

func (e *RefreshFailedError) Unwrap() error { return e.Err }

// DecodeError reports an upstream body that was not valid JSON. It carries
// the raw HTTP status so callers can tell a mangled 200 from a mangled 500.
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding marketplace response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError reports a network-level failure before any response was
// received. Never retried at this layer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("marketplace request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports malformed or missing caller input, detected
// before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// statusCategory maps an upstream HTTP status to a human-readable category.
func statusCategory(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "invalid data"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "validation error"
	default:
		return "server error"
	}
}

// newAPIError builds an APIError from an upstream response, lifting the
// message field out of the body when one is present.
func newAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &envelope)

	msg := envelope.Message
	if msg == "" {
		msg = envelope.Error
	}

	return &APIError{
		StatusCode: status,
		Category:   statusCategory(status),
		Message:    msg,
		Details:    json.RawMessage(body),
	}
}
