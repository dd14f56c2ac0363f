package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/helpnet-api/schema"
)

func activeChatFilter(key string, helpID primitive.ObjectID) bson.M {
	return bson.M{
		"participant_key": key,
		"help_request":    helpID,
		"active":          true,
	}
}

// FindOrCreateChat returns the active chat of the participant set for a help
// request, creating it when missing. Concurrent callers race on the
// chat_identity unique index; the losers retry and read the winner.
func (m *mongoDB) FindOrCreateChat(participants []string, helpID primitive.ObjectID, now time.Time) (*schema.Chat, error) {
	participants = schema.NormalizeParticipants(participants)
	if len(participants) < 2 {
		return nil, ErrInvalidParticipants
	}

	filter := activeChatFilter(schema.ParticipantKey(participants), helpID)

	unread := bson.M{}
	for _, p := range participants {
		unread[p] = 0
	}

	// fields of the filter are copied into the inserted document by mongodb
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":              primitive.NewObjectID(),
			"participants":     participants,
			"messages":         bson.A{},
			"unread_count":     unread,
			"last_activity_at": now,
			"created_at":       now,
			"updated_at":       now,
		},
	}

	c := m.collection(schema.ChatCollection)

	err := retryOnDuplicateKey(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()

		_, err := c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		return err
	}, defaultMaxRetries)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("upsert chat")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var chat schema.Chat
	if err := c.FindOne(ctx, filter).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			// deactivated right after the upsert
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// GetChat finds a chat by id, active or not
func (m *mongoDB) GetChat(id primitive.ObjectID) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var chat schema.Chat
	if err := m.collection(schema.ChatCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// FindHelpRequestChat finds the active chat of a help request that contains
// the account
func (m *mongoDB) FindHelpRequestChat(helpID primitive.ObjectID, accountID string) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"help_request": helpID,
		"participants": accountID,
		"active":       true,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "last_activity_at", Value: -1}})

	var chat schema.Chat
	if err := m.collection(schema.ChatCollection).FindOne(ctx, query, opts).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// AppendChatMessage pushes a message into an active chat and bumps the
// unread counter of every participant except the sender in the same update
func (m *mongoDB) AppendChatMessage(chat *schema.Chat, message schema.Message) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}

	inc := bson.M{}
	for _, p := range chat.Participants {
		if p != message.Sender {
			inc[fmt.Sprintf("unread_count.%s", p)] = 1
		}
	}

	filter := bson.M{
		"_id":          chat.ID,
		"active":       true,
		"participants": message.Sender,
	}
	update := bson.M{
		"$push": bson.M{"messages": message},
		"$set": bson.M{
			"last_message": schema.LastMessage{
				Content:   message.Content,
				Sender:    message.Sender,
				Timestamp: message.CreatedAt,
			},
			"last_activity_at": message.CreatedAt,
			"updated_at":       message.CreatedAt,
		},
	}
	if len(inc) > 0 {
		update["$inc"] = inc
	}

	var updated schema.Chat
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := m.collection(schema.ChatCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("append chat message")
		return nil, err
	}
	return &updated, nil
}

// MarkChatRead marks every unread message sent by others as read and resets
// the unread counter of the account. Calling it again changes nothing.
func (m *mongoDB) MarkChatRead(id primitive.ObjectID, accountID string, now time.Time) (*schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":          id,
		"participants": accountID,
	}
	update := bson.M{
		"$set": bson.M{
			"messages.$[m].is_read":                     true,
			"messages.$[m].read_at":                     now,
			fmt.Sprintf("unread_count.%s", accountID): 0,
		},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{
					"m.sender":  bson.M{"$ne": accountID},
					"m.is_read": false,
				},
			},
		})

	var chat schema.Chat
	if err := m.collection(schema.ChatCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChatNotFound
		}
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("mark chat read")
		return nil, err
	}
	return &chat, nil
}

// DeactivateChat hides a chat from its participants. Messages are kept.
func (m *mongoDB) DeactivateChat(id primitive.ObjectID, accountID string, now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.ChatCollection).UpdateOne(ctx,
		bson.M{"_id": id, "participants": accountID},
		bson.M{"$set": bson.M{"active": false, "updated_at": now}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrChatNotFound
	}
	return nil
}

// AccountChats lists the active chats of an account, most recently active first
func (m *mongoDB) AccountChats(accountID string) ([]schema.Chat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"participants": accountID,
		"active":       true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "last_activity_at", Value: -1}})

	cursor, err := m.collection(schema.ChatCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	chats := make([]schema.Chat, 0)
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}
