package infrastructure

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Gateway status errors. A *StatusError unwraps to one of these.
var (
	ErrAuthentication      = errors.New("authentication failed")
	ErrAuthorization       = errors.New("authorization failed")
	ErrUnprocessableEntity = errors.New("unprocessable entity")
	ErrUpgradeRequired     = errors.New("client upgrade required")
	ErrRateLimited         = errors.New("rate limit exceeded")
	ErrServer              = errors.New("gateway server error")
	ErrServiceUnavailable  = errors.New("gateway unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected gateway status")
)

// StatusError is a non-2xx response from the gateway
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status %d)", e.Unwrap(), e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Unwrap(), e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthentication
	case http.StatusForbidden:
		return ErrAuthorization
	case http.StatusUnprocessableEntity:
		return ErrUnprocessableEntity
	case http.StatusUpgradeRequired:
		return ErrUpgradeRequired
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusInternalServerError:
		return ErrServer
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}

type gatewayErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newStatusError(statusCode int, body []byte) *StatusError {
	var parsed gatewayErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return &StatusError{StatusCode: statusCode, Message: parsed.Error.Message}
	}
	return &StatusError{StatusCode: statusCode}
}
