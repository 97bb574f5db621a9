package goShop

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FailureKind is the classification of a failed remote call. It is derived
// purely from the HTTP status code, never from body structure.
//
//	Docs: docs/failures.md
type FailureKind uint8

const (
	// FailureUnknown is an exported constant or variable used by the storefront client.
	FailureUnknown FailureKind = iota
	// FailureUnauthorized is an exported constant or variable used by the storefront client.
	FailureUnauthorized
	// FailureForbidden is an exported constant or variable used by the storefront client.
	FailureForbidden
	// FailureNotFound is an exported constant or variable used by the storefront client.
	FailureNotFound
	// FailureValidation is an exported constant or variable used by the storefront client.
	FailureValidation
)

// String describes the string operation and its observable behavior.
func (k FailureKind) String() string {
	switch k {
	case FailureUnauthorized:
		return "unauthorized"
	case FailureForbidden:
		return "forbidden"
	case FailureNotFound:
		return "not_found"
	case FailureValidation:
		return "validation"
	default:
		return "unknown"
	}
}

const genericValidationMessage = "invalid request"

// APIError is the classified outcome of a failed remote call. It is
// constructed per failure and never stored; callers branch on Kind (or use
// errors.Is against the package sentinels) to decide between inline display
// and a login gate.
type APIError struct {
	Kind    FailureKind
	Status  int
	Message string
}

// Error describes the error operation and its observable behavior.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api failure: %s (status %d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("api failure: %s (status %d): %s", e.Kind, e.Status, e.Message)
}

// Is maps each classified kind onto the matching package sentinel so that
// errors.Is(err, ErrUnauthorized) works without unwrapping APIError by hand.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == FailureUnauthorized
	case ErrForbidden:
		return e.Kind == FailureForbidden
	case ErrNotFound:
		return e.Kind == FailureNotFound
	case ErrValidation:
		return e.Kind == FailureValidation
	default:
		return false
	}
}

// errorEnvelope is the upstream error body shape
// {timestamp, status, error, message, path}. Only message is consumed.
type errorEnvelope struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// Classify turns a failed response status and raw body into an [APIError].
//
// The mapping is a pure function of the status code: 401→Unauthorized,
// 403→Forbidden, 404→NotFound, 400→Validation, anything else→Unknown.
// The body is inspected only to extract a message string when one is
// present; a 400 with no decodable message carries a generic fallback.
func Classify(status int, body []byte) *APIError {
	msg := extractMessage(body)

	var kind FailureKind
	switch status {
	case http.StatusUnauthorized:
		kind = FailureUnauthorized
	case http.StatusForbidden:
		kind = FailureForbidden
	case http.StatusNotFound:
		kind = FailureNotFound
	case http.StatusBadRequest:
		kind = FailureValidation
		if msg == "" {
			msg = genericValidationMessage
		}
	default:
		kind = FailureUnknown
	}

	return &APIError{
		Kind:    kind,
		Status:  status,
		Message: msg,
	}
}

func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
