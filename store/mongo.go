package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/helpnet-api/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	HelpRequestStore
	ChatStore
	Closer
	Pinger
}

// HelpRequestStore - help request records and their conditional transitions.
// Every transition is a single conditional update that returns
// ErrHelpNotUpdated when the record no longer satisfies the precondition.
type HelpRequestStore interface {
	InsertHelpRequest(help *schema.HelpRequest) error
	GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error)
	EditHelpRequest(id primitive.ObjectID, actor string, changes schema.HelpChanges, now time.Time) (*schema.HelpRequest, error)
	AcceptHelpRequest(id primitive.ObjectID, helper string, now time.Time) (*schema.HelpRequest, error)
	CompleteHelpRequest(id primitive.ObjectID, actor string, now time.Time) (*schema.HelpRequest, error)
	CancelHelpRequest(id primitive.ObjectID, actor string, now time.Time) (*schema.HelpRequest, error)
	RateHelpRequest(id primitive.ObjectID, actor string, rating schema.HelpRating) (*schema.HelpRequest, error)

	ListHelpRequests(filter schema.HelpFilter, now time.Time) ([]schema.HelpRequest, int64, error)
	NearbyHelpRequests(query schema.NearbyQuery, now time.Time) ([]schema.HelpRequest, int64, error)
	AccountHelpRequests(filter schema.UserHelpFilter) ([]schema.HelpRequest, int64, error)
	RecentHelpRequests(accountID string, statuses []string, limit int64) ([]schema.HelpRequest, error)
	HelpStatusCounts(role, accountID string) (map[string]int64, error)
	HelperRating(helper string) (schema.AccountRating, error)
}

// ChatStore - chats and their embedded messages
type ChatStore interface {
	FindOrCreateChat(participants []string, helpID primitive.ObjectID, now time.Time) (*schema.Chat, error)
	GetChat(id primitive.ObjectID) (*schema.Chat, error)
	FindHelpRequestChat(helpID primitive.ObjectID, accountID string) (*schema.Chat, error)
	AppendChatMessage(chat *schema.Chat, message schema.Message) (*schema.Chat, error)
	MarkChatRead(id primitive.ObjectID, accountID string, now time.Time) (*schema.Chat, error)
	DeactivateChat(id primitive.ObjectID, accountID string, now time.Time) error
	AccountChats(accountID string) ([]schema.Chat, error)
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}
