package services

import (
	"errors"
	"fmt"

	"github.com/clubhouse/clubhouse-api/internal/db"
)

// Sentinel errors for the engine's failure taxonomy. Handlers map these to
// HTTP status codes; callers must not retry InvalidTransition blindly.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrSignatureInvalid = errors.New("webhook signature invalid")
)

// InvalidTransitionError is returned when a requested status change is not in
// the subscription transition table. The caller must re-read current state
// before retrying.
type InvalidTransitionError struct {
	From db.SubscriptionStatus
	To   db.SubscriptionStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid subscription transition from %s to %s", e.From, e.To)
}

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}

// ProviderError wraps a failed call to the remote payment processor with
// enough context for manual intervention.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
