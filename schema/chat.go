package schema

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChatCollection = "chats"

	MaxMessageLength = 1000
)

const (
	MESSAGE_TEXT  = "text"
	MESSAGE_IMAGE = "image"
	MESSAGE_FILE  = "file"
)

var MessageTypes = []string{MESSAGE_TEXT, MESSAGE_IMAGE, MESSAGE_FILE}

// Chat is a conversation scoped to one help request and a fixed participant set.
// UnreadCount is keyed by participant id and only ever changed by per-key
// $inc and $set updates.
type Chat struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Participants   []string           `json:"participants" bson:"participants"`
	ParticipantKey string             `json:"-" bson:"participant_key"`
	HelpRequest    primitive.ObjectID `json:"help_request" bson:"help_request"`
	Messages       []Message          `json:"messages" bson:"messages"`
	LastMessage    *LastMessage       `json:"last_message,omitempty" bson:"last_message,omitempty"`
	UnreadCount    map[string]int     `json:"unread_count" bson:"unread_count"`
	Active         bool               `json:"active" bson:"active"`
	LastActivityAt time.Time          `json:"last_activity_at" bson:"last_activity_at"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

type Message struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Sender      string             `json:"sender" bson:"sender"`
	Content     string             `json:"content" bson:"content"`
	Type        string             `json:"message_type" bson:"type"`
	Attachments []Attachment       `json:"attachments" bson:"attachments"`
	IsRead      bool               `json:"is_read" bson:"is_read"`
	ReadAt      *time.Time         `json:"read_at,omitempty" bson:"read_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

type Attachment struct {
	URL      string `json:"url" bson:"url"`
	Filename string `json:"filename" bson:"filename"`
	FileType string `json:"file_type" bson:"file_type"`
}

type LastMessage struct {
	Content   string    `json:"content" bson:"content"`
	Sender    string    `json:"sender" bson:"sender"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// MessageDraft carries the caller supplied fields of a new message
type MessageDraft struct {
	Content     string       `json:"content"`
	Type        string       `json:"message_type"`
	Attachments []Attachment `json:"attachments"`
}

// IsParticipant reports whether the account belongs to the chat
func (c *Chat) IsParticipant(accountID string) bool {
	for _, p := range c.Participants {
		if p == accountID {
			return true
		}
	}
	return false
}

// UnreadFor returns the unread counter of a participant
func (c *Chat) UnreadFor(accountID string) int {
	if c.UnreadCount == nil {
		return 0
	}
	return c.UnreadCount[accountID]
}

// NormalizeParticipants removes duplicates and empty ids and sorts the rest,
// so that the same set always yields the same slice.
func NormalizeParticipants(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	sort.Strings(result)
	return result
}

// ParticipantKey is the order independent identity of a participant set.
// Every id is prefixed with its length, so ids containing the separator
// cannot produce the key of another set.
func ParticipantKey(ids []string) string {
	parts := NormalizeParticipants(ids)
	for i, id := range parts {
		parts[i] = strconv.Itoa(len(id)) + ":" + id
	}
	return strings.Join(parts, "|")
}

func IsMessageType(v string) bool {
	return contains(MessageTypes, v)
}
