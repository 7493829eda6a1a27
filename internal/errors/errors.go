// Package errors provides error types and handling for relayctl.
// Every failure that can abort a run is an *OpsError carrying a Kind;
// the orchestrator short-circuits on the first one it sees.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an OpsError for programmatic handling.
type Kind string

// Error kinds. Each maps to one failure class of the deployment engine.
const (
	// KindPrerequisite: missing ambient auth or account context. Not
	// retryable without operator action.
	KindPrerequisite Kind = "PREREQUISITE"
	// KindCompliance: a HARD compliance rule failed. Fatal until the
	// configuration or live cloud state changes.
	KindCompliance Kind = "COMPLIANCE"
	// KindReconciliation: a create or delete action failed. Fatal for the
	// current run, safely retryable by re-invocation.
	KindReconciliation Kind = "RECONCILIATION"
	// KindMissingState: a phase precondition key is absent from the state
	// store, meaning phases were run out of order.
	KindMissingState Kind = "MISSING_STATE"
)

// OpsError represents a run-aborting error with an associated kind.
type OpsError struct {
	// Kind is the failure class
	Kind Kind
	// Message is an operator-facing description
	Message string
	// Cause is the underlying error (for error wrapping)
	Cause error
}

// Error implements the error interface.
func (e *OpsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping.
func (e *OpsError) Unwrap() error {
	return e.Cause
}

// Is allows errors.Is to match OpsErrors by kind.
func (e *OpsError) Is(target error) bool {
	if t, ok := target.(*OpsError); ok {
		return e.Kind == t.Kind
	}
	return false
}

// NewPrerequisite creates a prerequisite error.
func NewPrerequisite(message string, cause error) *OpsError {
	return &OpsError{Kind: KindPrerequisite, Message: message, Cause: cause}
}

// NewCompliance creates a compliance error.
func NewCompliance(message string, cause error) *OpsError {
	return &OpsError{Kind: KindCompliance, Message: message, Cause: cause}
}

// NewReconciliation creates a reconciliation error for the named resource.
func NewReconciliation(resource, message string, cause error) *OpsError {
	return &OpsError{
		Kind:    KindReconciliation,
		Message: fmt.Sprintf("%s: %s", resource, message),
		Cause:   cause,
	}
}

// NewMissingState creates a missing-state error naming the absent key and
// the phase whose completion would have produced it.
func NewMissingState(key, producedBy string) *OpsError {
	return &OpsError{
		Kind:    KindMissingState,
		Message: fmt.Sprintf("state key %q not found; run phase %s first", key, producedBy),
	}
}

// KindOf extracts the kind from an error.
// Returns the empty kind if the error is not an OpsError.
func KindOf(err error) Kind {
	var opsErr *OpsError
	if errors.As(err, &opsErr) {
		return opsErr.Kind
	}
	return ""
}

// IsKind reports whether err is an OpsError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
