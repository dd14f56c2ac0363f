package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/helpnet-api/schema"
	"github.com/bitmark-inc/helpnet-api/store"
)

func TestStartChat(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)

	helpID := primitive.NewObjectID()
	chat := &schema.Chat{
		ID:           primitive.NewObjectID(),
		Participants: []string{"alice", "bob"},
		HelpRequest:  helpID,
		Active:       true,
	}

	core.EXPECT().StartChat("bob", helpID.Hex(), "alice").Return(chat, nil)
	core.EXPECT().AccountSummaries([]string{"alice", "bob"}).Return(map[string]schema.AccountSummary{}, nil)

	w := doRequest(t, s, "POST", "/api/chats", "bob", map[string]string{
		"help_request_id": helpID.Hex(),
		"other_user_id":   "alice",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	result := decodeResult(t, w)["result"].(map[string]interface{})
	assert.Equal(t, chat.ID.Hex(), result["id"])
	assert.Equal(t, helpID.Hex(), result["help_request"])
}

func TestStartChatOtherNotInvolved(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().StartChat("bob", "5eb4a8d2b8c1f2a1e4e9c001", "mallory").Return(nil, store.ErrOtherUserNotInvolved)

	w := doRequest(t, s, "POST", "/api/chats", "bob", map[string]string{
		"help_request_id": "5eb4a8d2b8c1f2a1e4e9c001",
		"other_user_id":   "mallory",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1302), decodeError(t, w).Code)
}

func TestChatDetailNotParticipant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetChat("5eb4a8d2b8c1f2a1e4e9c001", "mallory").Return(nil, store.ErrNotParticipant)

	w := doRequest(t, s, "GET", "/api/chats/5eb4a8d2b8c1f2a1e4e9c001", "mallory", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1301), decodeError(t, w).Code)
}

func TestChatDetailNotFoundLocalized(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetChat("unknown", "alice").Return(nil, store.ErrChatNotFound)

	w := doRequest(t, s, "GET", "/api/chats/unknown", "alice", nil, "Accept-Language", "zh-TW")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// without a loaded bundle the standard message is kept
	resp := decodeError(t, w)
	assert.Equal(t, int64(1300), resp.Code)
	assert.Equal(t, "chat not found", resp.Message)
}

func TestSendMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, &stubLimiter{allow: true})

	chatID := primitive.NewObjectID()
	draft := schema.MessageDraft{
		Content: "on my way",
		Type:    schema.MESSAGE_TEXT,
	}
	message := &schema.Message{
		ID:      primitive.NewObjectID(),
		Sender:  "bob",
		Content: draft.Content,
		Type:    schema.MESSAGE_TEXT,
	}
	chat := &schema.Chat{
		ID:           chatID,
		Participants: []string{"alice", "bob"},
		Messages:     []schema.Message{*message},
		UnreadCount:  map[string]int{"alice": 1, "bob": 0},
		Active:       true,
	}

	core.EXPECT().SendMessage(chatID.Hex(), "bob", draft).Return(chat, message, nil)
	core.EXPECT().AccountSummaries([]string{"alice", "bob"}).Return(map[string]schema.AccountSummary{}, nil)

	w := doRequest(t, s, "POST", "/api/chats/"+chatID.Hex()+"/messages", "bob", draft)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			Chat struct {
				UnreadCount map[string]int `json:"unread_count"`
			} `json:"chat"`
			Message schema.Message `json:"message"`
		} `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Result.Chat.UnreadCount["alice"])
	assert.Equal(t, "on my way", resp.Result.Message.Content)
}

func TestMarkChatRead(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().MarkChatRead("5eb4a8d2b8c1f2a1e4e9c001", "alice").Return(&schema.Chat{}, nil)

	w := doRequest(t, s, "POST", "/api/chats/5eb4a8d2b8c1f2a1e4e9c001/read", "alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":"OK"}`, w.Body.String())
}

func TestDeactivateChat(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().DeactivateChat("5eb4a8d2b8c1f2a1e4e9c001", "alice").Return(nil)

	w := doRequest(t, s, "DELETE", "/api/chats/5eb4a8d2b8c1f2a1e4e9c001", "alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
