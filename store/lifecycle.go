package store

import (
	"time"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// The help request state machine:
//
//	open -> in-progress -> completed
//	open -> cancelled
//
// completed and cancelled are terminal. Each check mirrors the filter of the
// matching conditional write, so a write that matches nothing can be
// explained by running the check again on a fresh copy.

func checkAccept(h *schema.HelpRequest, helper string, now time.Time) error {
	if h.Status != schema.HELP_OPEN {
		return ErrRequestNotOpen
	}
	if h.IsExpired(now) {
		return ErrRequestExpired
	}
	if h.Requester == helper {
		return ErrSelfAcceptance
	}
	return nil
}

func checkComplete(h *schema.HelpRequest, actor string) error {
	if h.Status != schema.HELP_IN_PROGRESS {
		return ErrRequestNotInProgress
	}
	if !h.IsInvolved(actor) {
		return ErrNotInvolved
	}
	return nil
}

func checkCancel(h *schema.HelpRequest, actor string) error {
	if h.Requester != actor {
		return ErrNotRequester
	}
	if h.Status != schema.HELP_OPEN {
		return ErrRequestNotOpen
	}
	return nil
}

func checkEdit(h *schema.HelpRequest, actor string) error {
	return checkCancel(h, actor)
}

func checkRate(h *schema.HelpRequest, actor string) error {
	if h.Requester != actor {
		return ErrNotRequester
	}
	if h.Status != schema.HELP_COMPLETED {
		return ErrRequestNotCompleted
	}
	if h.Rating != nil && h.Rating.Score != 0 {
		return ErrRequestAlreadyRated
	}
	return nil
}
