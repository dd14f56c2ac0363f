package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// autonomy main datastore
type AutonomyCore interface {
	Ping() error

	// Account
	CreateAccount(id, name, role string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	UpdateAccountProfile(id string, name, avatar *string) (*schema.Account, error)
	TopHelpers(limit int) ([]schema.Account, error)
	AccountSummaries(ids []string) (map[string]schema.AccountSummary, error)
	AccountStats(id string) (*schema.HelpStats, error)
	SearchAccounts(filter schema.AccountFilter) (*schema.AccountPage, error)
	Notifications(id string, center *schema.Location) (*schema.Notifications, error)

	// Help
	RequestHelp(requester string, draft schema.HelpDraft) (*schema.HelpRequest, error)
	GetHelp(helpID string) (*schema.HelpRequest, error)
	ListHelps(filter schema.HelpFilter) (*schema.HelpPage, error)
	NearbyHelps(query schema.NearbyQuery) (*schema.HelpPage, error)
	UserHelps(filter schema.UserHelpFilter) (*schema.HelpPage, error)
	UpdateHelp(helpID, actor string, changes schema.HelpChanges) (*schema.HelpRequest, error)
	AcceptHelp(helpID, helper string) (*schema.HelpRequest, *schema.Chat, error)
	CompleteHelp(helpID, actor string) (*schema.HelpRequest, error)
	CancelHelp(helpID, actor string) (*schema.HelpRequest, error)
	RateHelp(helpID, actor string, score int, feedback string) (*schema.HelpRequest, error)

	// Chat
	StartChat(accountID, helpID, otherID string) (*schema.Chat, error)
	GetChat(chatID, accountID string) (*schema.Chat, error)
	GetHelpChat(helpID, accountID string) (*schema.Chat, error)
	SendMessage(chatID, sender string, draft schema.MessageDraft) (*schema.Chat, *schema.Message, error)
	MarkChatRead(chatID, accountID string) (*schema.Chat, error)
	ListChats(accountID string) ([]schema.Chat, error)
	UnreadCount(accountID string) (int, error)
	DeactivateChat(chatID, accountID string) error
}

// AutonomyStore is an implementation of AutonomyCore
type AutonomyStore struct {
	accounts AccountStore
	mongo    MongoStore
	clock    func() time.Time
}

func NewAutonomyStore(accounts AccountStore, mongo MongoStore) *AutonomyStore {
	return &AutonomyStore{
		accounts: accounts,
		mongo:    mongo,
		clock:    defaultClock,
	}
}

// mongodb keeps milliseconds only
func defaultClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *AutonomyStore) now() time.Time {
	if s.clock == nil {
		return defaultClock()
	}
	return s.clock()
}

// Ping is to check the storage health status
func (s *AutonomyStore) Ping() error {
	if err := s.accounts.Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}

func parseHelpID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrRequestNotFound
	}
	return oid, nil
}

func parseChatID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrChatNotFound
	}
	return oid, nil
}
