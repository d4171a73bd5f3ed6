package domain

import (
	"errors"
	"fmt"
)

// BackendErrorKind classifies a generative-backend failure so callers can
// branch on a tag instead of matching human-readable error text.
type BackendErrorKind int

const (
	BackendErrorUnknown BackendErrorKind = iota
	// BackendErrorRateLimited means the backend rejected the call for quota
	// reasons and the same call may succeed after a cooldown.
	BackendErrorRateLimited
	// BackendErrorEmptyResponse means the backend answered but produced no
	// usable content.
	BackendErrorEmptyResponse
	// BackendErrorSchemaViolation means the backend's payload could not be
	// decoded into the expected schema.
	BackendErrorSchemaViolation
	// BackendErrorUnsupportedLanguage is a programmer error: a language code
	// outside the fixed en/es/ja set reached an asset adapter.
	BackendErrorUnsupportedLanguage
)

func (k BackendErrorKind) String() string {
	switch k {
	case BackendErrorRateLimited:
		return "rate_limited"
	case BackendErrorEmptyResponse:
		return "empty_response"
	case BackendErrorSchemaViolation:
		return "schema_violation"
	case BackendErrorUnsupportedLanguage:
		return "unsupported_language"
	}
	return "unknown"
}

// BackendError wraps a failure from a generative backend with its
// classification, the pipeline stage it surfaced in, and, for schema
// violations, the offending payload fragment for diagnosis.
type BackendError struct {
	Kind     BackendErrorKind
	Stage    string
	Fragment string
	Err      error
}

func (e *BackendError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Stage, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Fragment != "" {
		msg += fmt.Sprintf(" (fragment: %q)", e.Fragment)
	}
	return msg
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func NewBackendError(kind BackendErrorKind, stage string, err error) *BackendError {
	return &BackendError{Kind: kind, Stage: stage, Err: err}
}

func NewSchemaViolation(stage string, fragment string, err error) *BackendError {
	return &BackendError{Kind: BackendErrorSchemaViolation, Stage: stage, Fragment: fragment, Err: err}
}

func IsRateLimited(err error) bool {
	return hasKind(err, BackendErrorRateLimited)
}

func IsEmptyResponse(err error) bool {
	return hasKind(err, BackendErrorEmptyResponse)
}

func IsSchemaViolation(err error) bool {
	return hasKind(err, BackendErrorSchemaViolation)
}

func IsUnsupportedLanguage(err error) bool {
	return hasKind(err, BackendErrorUnsupportedLanguage)
}

func hasKind(err error, kind BackendErrorKind) bool {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Kind == kind
	}
	return false
}
