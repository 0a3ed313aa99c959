package aipipeline

import (
	"errors"
	"fmt"
)

// Kind classifies why a pipeline stage failed. Every kind is recoverable by the
// fallback synthesizer; callers switch on the kind instead of reading messages.
type Kind string

const (
	KindConfigurationMissing  Kind = "configuration_missing"
	KindRemoteUnavailable     Kind = "remote_unavailable"
	KindEmptyResponse         Kind = "empty_response"
	KindExtractionFailure     Kind = "extraction_failure"
	KindReconciliationFailure Kind = "reconciliation_failure"
)

// Extraction failure reasons.
const (
	ReasonNoBracesFound = "no_braces_found"
	ReasonParseError    = "parse_error"
	ReasonEmptyResponse = "empty_response"
)

type Error struct {
	Kind   Kind
	Reason string
	// Detail carries diagnostics such as a prefix of the raw model text.
	// It is for logs only and must never reach an HTTP client.
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Reason != "" {
		msg += "(" + e.Reason + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind, and by reason when the target sets one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

var (
	ErrConfigurationMissing  = &Error{Kind: KindConfigurationMissing}
	ErrRemoteUnavailable     = &Error{Kind: KindRemoteUnavailable}
	ErrEmptyResponse         = &Error{Kind: KindEmptyResponse}
	ErrExtractionFailure     = &Error{Kind: KindExtractionFailure}
	ErrReconciliationFailure = &Error{Kind: KindReconciliationFailure}
)

// KindOf returns the kind carried by err, or "" when err is not a pipeline error.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

func reconciliationError(format string, args ...any) *Error {
	return &Error{Kind: KindReconciliationFailure, Err: fmt.Errorf(format, args...)}
}
