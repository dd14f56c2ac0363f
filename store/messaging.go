package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// StartChat opens, or returns, the chat between two people involved in a
// help request. It also recreates the chat of an accepted request when the
// accept could not.
func (s *AutonomyStore) StartChat(accountID, helpID, otherID string) (*schema.Chat, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, err
	}
	if err := validateAccountID(otherID); err != nil {
		return nil, err
	}
	if otherID == accountID {
		return nil, ErrInvalidParticipants
	}

	help, err := s.mongo.GetHelpRequest(id)
	if err != nil {
		return nil, err
	}
	if !help.IsInvolved(accountID) {
		return nil, ErrNotInvolved
	}
	if !help.IsInvolved(otherID) {
		return nil, ErrOtherUserNotInvolved
	}

	return s.mongo.FindOrCreateChat([]string{accountID, otherID}, help.ID, s.now())
}

// participantChat loads an active chat the account belongs to
func (s *AutonomyStore) participantChat(chatID, accountID string) (*schema.Chat, error) {
	id, err := parseChatID(chatID)
	if err != nil {
		return nil, err
	}

	chat, err := s.mongo.GetChat(id)
	if err != nil {
		return nil, err
	}
	if !chat.IsParticipant(accountID) {
		return nil, ErrNotParticipant
	}
	if !chat.Active {
		return nil, ErrChatNotFound
	}
	return chat, nil
}

// GetChat returns a chat with its messages and marks them read for the caller
func (s *AutonomyStore) GetChat(chatID, accountID string) (*schema.Chat, error) {
	chat, err := s.participantChat(chatID, accountID)
	if err != nil {
		return nil, err
	}
	return s.mongo.MarkChatRead(chat.ID, accountID, s.now())
}

// GetHelpChat returns the chat of a help request for the caller, or nil when
// there is none yet
func (s *AutonomyStore) GetHelpChat(helpID, accountID string) (*schema.Chat, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, err
	}

	help, err := s.mongo.GetHelpRequest(id)
	if err != nil {
		return nil, err
	}
	if !help.IsInvolved(accountID) {
		return nil, ErrNotInvolved
	}

	chat, err := s.mongo.FindHelpRequestChat(id, accountID)
	if err == ErrChatNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s.mongo.MarkChatRead(chat.ID, accountID, s.now())
}

// SendMessage appends a message to a chat. The unread counter of every other
// participant goes up by one.
func (s *AutonomyStore) SendMessage(chatID, sender string, draft schema.MessageDraft) (*schema.Chat, *schema.Message, error) {
	draft, err := normalizeMessageDraft(draft)
	if err != nil {
		return nil, nil, err
	}

	chat, err := s.participantChat(chatID, sender)
	if err != nil {
		return nil, nil, err
	}

	message := schema.Message{
		ID:          primitive.NewObjectID(),
		Sender:      sender,
		Content:     draft.Content,
		Type:        draft.Type,
		Attachments: draft.Attachments,
		CreatedAt:   s.now(),
	}

	updated, err := s.mongo.AppendChatMessage(chat, message)
	if err != nil {
		return nil, nil, err
	}
	return updated, &message, nil
}

// MarkChatRead marks the messages of others as read for the caller
func (s *AutonomyStore) MarkChatRead(chatID, accountID string) (*schema.Chat, error) {
	chat, err := s.participantChat(chatID, accountID)
	if err != nil {
		return nil, err
	}
	return s.mongo.MarkChatRead(chat.ID, accountID, s.now())
}

// ListChats returns the active chats of an account, most recent first
func (s *AutonomyStore) ListChats(accountID string) ([]schema.Chat, error) {
	return s.mongo.AccountChats(accountID)
}

// UnreadCount sums the unread counters of an account over its active chats
func (s *AutonomyStore) UnreadCount(accountID string) (int, error) {
	chats, err := s.mongo.AccountChats(accountID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range chats {
		total += c.UnreadFor(accountID)
	}
	return total, nil
}

// DeactivateChat hides a chat for all of its participants
func (s *AutonomyStore) DeactivateChat(chatID, accountID string) error {
	chat, err := s.participantChat(chatID, accountID)
	if err != nil {
		return err
	}
	return s.mongo.DeactivateChat(chat.ID, accountID, s.now())
}
