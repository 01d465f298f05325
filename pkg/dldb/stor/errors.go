package stor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a StorError so callers (in particular the webapi
// layer) can map it to a response without matching on message text.
type ErrorKind int

const (
	ErrKindNotFound ErrorKind = iota
	ErrKindValidation
	ErrKindConflict
	ErrKindPermissionDenied
)

// StorError is a business-rule failure. Operations return it before any
// mutation happens, or from inside a transaction that then rolls back, so a
// StorError always means zero side effects.
type StorError struct {
	Kind    ErrorKind
	Message string
}

func (e *StorError) Error() string {
	return e.Message
}

// Fixed-message failures from the negotiation state machine.
var (
	ErrSelfTransfer         = &StorError{Kind: ErrKindConflict, Message: "team already owns this player"}
	ErrPlayerUnowned        = &StorError{Kind: ErrKindConflict, Message: "player is not owned by any team"}
	ErrNegotiationConflict  = &StorError{Kind: ErrKindConflict, Message: "team already has an open negotiation for this player"}
	ErrBelowMarketValue     = &StorError{Kind: ErrKindConflict, Message: "offer is below the player's market value"}
	ErrInsufficientFunds    = &StorError{Kind: ErrKindConflict, Message: "team does not have enough budget"}
	ErrOfferNotPending      = &StorError{Kind: ErrKindConflict, Message: "offer is no longer pending"}
	ErrCounterNotHigher     = &StorError{Kind: ErrKindConflict, Message: "counter-offer must be higher than the previous offer"}
	ErrNegotiationExhausted = &StorError{Kind: ErrKindConflict, Message: "negotiation has reached its offer limit"}
	ErrNoReleaseClause      = &StorError{Kind: ErrKindConflict, Message: "player has no release clause"}
)

func newNotFoundError(format string, args ...interface{}) *StorError {
	return &StorError{Kind: ErrKindNotFound, Message: fmt.Sprintf(format, args...)}
}

func newValidationError(format string, args ...interface{}) *StorError {
	return &StorError{Kind: ErrKindValidation, Message: fmt.Sprintf(format, args...)}
}

func newPermissionError(format string, args ...interface{}) *StorError {
	return &StorError{Kind: ErrKindPermissionDenied, Message: fmt.Sprintf(format, args...)}
}

// AsStorError unwraps err looking for a StorError.
func AsStorError(err error) (*StorError, bool) {
	var serr *StorError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}

// KindOfError returns the kind for a StorError and ok=false for anything
// else (db failures, lock timeouts and the like).
func KindOfError(err error) (ErrorKind, bool) {
	if serr, ok := AsStorError(err); ok {
		return serr.Kind, true
	}
	return 0, false
}
