package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/helpnet-api/schema"
)

func openHelp(now time.Time) *schema.HelpRequest {
	return &schema.HelpRequest{
		Requester: "requester",
		Status:    schema.HELP_OPEN,
		CreatedAt: now,
		ExpiresAt: now.Add(schema.HelpRequestLifetime),
	}
}

func TestCheckAccept(t *testing.T) {
	now := time.Now()

	assert.NoError(t, checkAccept(openHelp(now), "helper", now))

	h := openHelp(now)
	assert.Equal(t, ErrSelfAcceptance, checkAccept(h, "requester", now))

	h = openHelp(now)
	h.Status = schema.HELP_IN_PROGRESS
	assert.Equal(t, ErrRequestNotOpen, checkAccept(h, "helper", now))

	h = openHelp(now)
	h.Status = schema.HELP_CANCELLED
	assert.Equal(t, ErrRequestNotOpen, checkAccept(h, "helper", now))

	h = openHelp(now)
	assert.Equal(t, ErrRequestExpired, checkAccept(h, "helper", h.ExpiresAt))
	assert.Equal(t, ErrRequestExpired, checkAccept(h, "helper", h.ExpiresAt.Add(time.Minute)))
}

func TestCheckComplete(t *testing.T) {
	now := time.Now()

	h := openHelp(now)
	assert.Equal(t, ErrRequestNotInProgress, checkComplete(h, "requester"))

	h.Status = schema.HELP_IN_PROGRESS
	h.Helper = "helper"
	assert.NoError(t, checkComplete(h, "requester"))
	assert.NoError(t, checkComplete(h, "helper"))
	assert.Equal(t, ErrNotInvolved, checkComplete(h, "stranger"))

	h.Status = schema.HELP_COMPLETED
	assert.Equal(t, ErrRequestNotInProgress, checkComplete(h, "helper"))
}

func TestCheckCancel(t *testing.T) {
	now := time.Now()

	h := openHelp(now)
	assert.NoError(t, checkCancel(h, "requester"))
	assert.Equal(t, ErrNotRequester, checkCancel(h, "helper"))

	h.Status = schema.HELP_IN_PROGRESS
	assert.Equal(t, ErrRequestNotOpen, checkCancel(h, "requester"))
}

func TestCheckRate(t *testing.T) {
	now := time.Now()

	h := openHelp(now)
	h.Helper = "helper"
	h.Status = schema.HELP_IN_PROGRESS
	assert.Equal(t, ErrRequestNotCompleted, checkRate(h, "requester"))

	h.Status = schema.HELP_COMPLETED
	assert.Equal(t, ErrNotRequester, checkRate(h, "helper"))
	assert.NoError(t, checkRate(h, "requester"))

	h.Rating = &schema.HelpRating{Score: 4}
	assert.Equal(t, ErrRequestAlreadyRated, checkRate(h, "requester"))
}

func TestErrorCategories(t *testing.T) {
	assert.ErrorIs(t, ErrSelfAcceptance, ErrInvalidTransition)
	assert.ErrorIs(t, ErrRequestExpired, ErrInvalidTransition)
	assert.ErrorIs(t, ErrRequestAlreadyRated, ErrInvalidTransition)
	assert.ErrorIs(t, ErrNotParticipant, ErrUnauthorized)
	assert.ErrorIs(t, ErrNotRequester, ErrUnauthorized)
	assert.ErrorIs(t, ErrChatNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrInvalidParticipants, ErrValidation)
}
