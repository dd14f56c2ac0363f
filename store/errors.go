package store

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the core wraps exactly one of
// them, callers classify with errors.Is.
var (
	ErrValidation        = errors.New("invalid parameters")
	ErrNotFound          = errors.New("not found")
	ErrUnauthorized      = errors.New("not authorized")
	ErrInvalidTransition = errors.New("invalid state transition")
)

var (
	ErrAccountNotFound = fmt.Errorf("%w: account not found", ErrNotFound)
	ErrAccountTaken    = fmt.Errorf("%w: account has been registered", ErrValidation)

	ErrRequestNotFound      = fmt.Errorf("%w: help request not found", ErrNotFound)
	ErrRequestNotOpen       = fmt.Errorf("%w: help request is not open", ErrInvalidTransition)
	ErrRequestExpired       = fmt.Errorf("%w: help request has expired", ErrInvalidTransition)
	ErrSelfAcceptance       = fmt.Errorf("%w: cannot accept your own help request", ErrInvalidTransition)
	ErrRequestNotInProgress = fmt.Errorf("%w: help request is not in progress", ErrInvalidTransition)
	ErrRequestNotCompleted  = fmt.Errorf("%w: only completed requests can be rated", ErrInvalidTransition)
	ErrRequestAlreadyRated  = fmt.Errorf("%w: help request has already been rated", ErrInvalidTransition)
	ErrConcurrentUpdate     = fmt.Errorf("%w: help request was changed by another request", ErrInvalidTransition)
	ErrNotRequester         = fmt.Errorf("%w: only the requester can do this", ErrUnauthorized)
	ErrNotInvolved          = fmt.Errorf("%w: not involved in this help request", ErrUnauthorized)

	ErrChatNotFound         = fmt.Errorf("%w: chat not found", ErrNotFound)
	ErrNotParticipant       = fmt.Errorf("%w: not a participant of this chat", ErrUnauthorized)
	ErrInvalidParticipants  = fmt.Errorf("%w: a chat needs at least two distinct participants", ErrValidation)
	ErrOtherUserNotInvolved = fmt.Errorf("%w: other user is not involved in this help request", ErrUnauthorized)

	// ErrHelpNotUpdated is returned by conditional writes that matched no record
	ErrHelpNotUpdated = errors.New("help request not updated")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
