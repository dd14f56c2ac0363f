package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bitmark-inc/helpnet-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "the account has been registered",
		1101: "account not found",

		1200: "help request not found",
		1201: "help request is not open",
		1202: "help request has expired",
		1203: "cannot accept your own help request",
		1204: "help request is not in progress",
		1205: "only completed requests can be rated",
		1206: "help request has already been rated",
		1207: "help request was changed by another request",
		1208: "only the requester can do this",
		1209: "not involved in this help request",

		1300: "chat not found",
		1301: "not a participant of this chat",
		1302: "other user is not involved in this help request",
		1303: "a chat needs at least two distinct participants",

		1400: "too many messages, please slow down",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotFound      = errorJSON(1200)
	errorRequestNotOpen       = errorJSON(1201)
	errorRequestExpired       = errorJSON(1202)
	errorSelfAcceptance       = errorJSON(1203)
	errorRequestNotInProgress = errorJSON(1204)
	errorRequestNotCompleted  = errorJSON(1205)
	errorRequestAlreadyRated  = errorJSON(1206)
	errorConcurrentUpdate     = errorJSON(1207)
	errorNotRequester         = errorJSON(1208)
	errorNotInvolved          = errorJSON(1209)

	errorChatNotFound         = errorJSON(1300)
	errorNotParticipant       = errorJSON(1301)
	errorOtherUserNotInvolved = errorJSON(1302)
	errorInvalidParticipants  = errorJSON(1303)

	errorTooManyMessages = errorJSON(1400)
)

// storeErrors maps the errors of the core to a status and an error object
var storeErrors = map[error]struct {
	status int
	resp   ErrorResponse
}{
	store.ErrAccountTaken:    {http.StatusBadRequest, errorAccountTaken},
	store.ErrAccountNotFound: {http.StatusNotFound, errorAccountNotFound},

	store.ErrRequestNotFound:      {http.StatusNotFound, errorRequestNotFound},
	store.ErrRequestNotOpen:       {http.StatusBadRequest, errorRequestNotOpen},
	store.ErrRequestExpired:       {http.StatusBadRequest, errorRequestExpired},
	store.ErrSelfAcceptance:       {http.StatusBadRequest, errorSelfAcceptance},
	store.ErrRequestNotInProgress: {http.StatusBadRequest, errorRequestNotInProgress},
	store.ErrRequestNotCompleted:  {http.StatusBadRequest, errorRequestNotCompleted},
	store.ErrRequestAlreadyRated:  {http.StatusBadRequest, errorRequestAlreadyRated},
	store.ErrConcurrentUpdate:     {http.StatusBadRequest, errorConcurrentUpdate},
	store.ErrNotRequester:         {http.StatusForbidden, errorNotRequester},
	store.ErrNotInvolved:          {http.StatusForbidden, errorNotInvolved},

	store.ErrChatNotFound:         {http.StatusNotFound, errorChatNotFound},
	store.ErrNotParticipant:       {http.StatusForbidden, errorNotParticipant},
	store.ErrOtherUserNotInvolved: {http.StatusForbidden, errorOtherUserNotInvolved},
	store.ErrInvalidParticipants:  {http.StatusBadRequest, errorInvalidParticipants},
}

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorMessageID is the id of the translated message of an error code
func errorMessageID(code int64) string {
	return fmt.Sprintf("error_%d", code)
}

// storeErrorResponse classifies an error returned by the core
func storeErrorResponse(err error) (int, ErrorResponse) {
	if e, ok := storeErrors[err]; ok {
		return e.status, e.resp
	}

	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{
			Code:    errorInvalidParameters.Code,
			Message: err.Error(),
		}
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, errorInvalidParameters
	case errors.Is(err, store.ErrUnauthorized):
		return http.StatusForbidden, errorInvalidParameters
	case errors.Is(err, store.ErrInvalidTransition):
		return http.StatusBadRequest, errorInvalidParameters
	}

	return http.StatusInternalServerError, errorInternalServer
}
