package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks failures with no server response: timeouts,
	// refused connections, cancelled requests.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks responses that report the authorization as
	// expired or invalid. Match with errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-2xx server response. Detail carries the human-readable
// cause from the response body when the server provided one.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

func (e *Error) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Detail extracts the server-provided failure text from err, or "" when
// the error carries none (network failures, decode errors).
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// envelope is the uniform response wrapper: every successful body carries
// the operation payload under "data".
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// errorDetail pulls the human-readable cause out of an error body. The
// server uses "detail" for request failures and "message" in the envelope;
// a structured (non-string) detail is treated as absent.
func errorDetail(body []byte) string {
	var eb struct {
		Detail  any    `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if s, ok := eb.Detail.(string); ok && s != "" {
		return s
	}
	return eb.Message
}
