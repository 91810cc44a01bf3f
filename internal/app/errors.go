package app

import (
	"errors"
	"fmt"

	"retroflow/internal/domain"
)

// Error classes. Every error returned by Service wraps exactly one of these.
var (
	ErrValidation             = errors.New("validation error")
	ErrInsufficientVoteBudget = errors.New("insufficient vote budget")
	ErrIllegalPhaseTransition = errors.New("illegal phase transition")
	ErrNotHost                = errors.New("actor is not session host")
	ErrStaleReference         = errors.New("stale reference")
)

var (
	ErrUnknownParticipant   = fmt.Errorf("%w: participant not found", ErrValidation)
	ErrParticipantMismatch  = fmt.Errorf("%w: participant does not match connection", ErrValidation)
	ErrPhaseLocked          = fmt.Errorf("%w: operation not allowed in current phase", ErrValidation)
	ErrNotAuthor            = fmt.Errorf("%w: only the author may change a response", ErrValidation)
	ErrInvalidContent       = fmt.Errorf("%w: content is empty or too long", ErrValidation)
	ErrInvalidCategory      = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrInvalidPosition      = fmt.Errorf("%w: position is not finite", ErrValidation)
	ErrTooFewResponses      = fmt.Errorf("%w: a group needs at least %d responses", ErrValidation, MinResponsesPerGroup)
	ErrNotGrouped           = fmt.Errorf("%w: response is not grouped", ErrValidation)
	ErrAlreadyIndividual    = fmt.Errorf("%w: response is the only member of its group", ErrValidation)
	ErrSelfConnection       = fmt.Errorf("%w: a response cannot be connected to itself", ErrValidation)
	ErrDuplicateConnection  = fmt.Errorf("%w: responses are already connected", ErrValidation)
	ErrNotConnected         = fmt.Errorf("%w: responses are not connected", ErrValidation)
	ErrVoteOutOfRange       = fmt.Errorf("%w: vote count out of range", ErrValidation)
	ErrInvalidTimer         = fmt.Errorf("%w: timer duration must not be negative", ErrValidation)
	ErrPresentationInactive = fmt.Errorf("%w: presentation is not active", ErrValidation)
	ErrNothingToPresent     = fmt.Errorf("%w: no ranked items to present", ErrValidation)
	ErrIndexOutOfRange      = fmt.Errorf("%w: item index out of range", ErrValidation)
)

// ErrorClass tells the transport how to surface a rejected intent.
type ErrorClass int

const (
	// ClassNone means the error is not one of ours.
	ClassNone ErrorClass = iota
	// ClassValidation errors are reported to the actor only.
	ClassValidation
	// ClassBudget errors are reported to the actor only.
	ClassBudget
	// ClassSilent errors are dropped without any message.
	ClassSilent
	// ClassStale errors are reported to the actor with a fresh snapshot.
	ClassStale
)

// Classify maps an error returned by Service to its class.
func Classify(err error) ErrorClass {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, ErrInsufficientVoteBudget):
		return ClassBudget
	case errors.Is(err, ErrIllegalPhaseTransition), errors.Is(err, ErrNotHost):
		return ClassSilent
	case errors.Is(err, ErrStaleReference):
		return ClassStale
	case errors.Is(err, ErrValidation):
		return ClassValidation
	default:
		return ClassNone
	}
}

// Code returns the wire code reported to clients for this class.
func (c ErrorClass) Code() string {
	switch c {
	case ClassValidation:
		return "validation_error"
	case ClassBudget:
		return "insufficient_vote_budget"
	case ClassStale:
		return "stale_reference"
	case ClassSilent:
		return "ignored"
	default:
		return "internal_error"
	}
}

// missing reports an unknown id as stale when it existed earlier in the
// session, and as a validation error otherwise.
func missing(board *domain.Board, kind, id string) error {
	if board.WasRemoved(id) {
		return fmt.Errorf("%w: %s %s no longer exists", ErrStaleReference, kind, id)
	}
	return fmt.Errorf("%w: %s %q not found", ErrValidation, kind, id)
}
