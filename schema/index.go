package schema

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const indexTimeout = 30 * time.Second

type MongoDBIndexer struct {
	Database *mongo.Database
}

func NewMongoDBIndexer(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	ctx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	defer cancel()

	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(ctx, index)
	return err
}

// IndexAll creates every index the stores rely on. The chat identity index
// is what makes chat creation converge under concurrent callers, so the
// server refuses to start without it.
func (m *MongoDBIndexer) IndexAll() error {
	if err := m.IndexHelpRequestCollection(); err != nil {
		return err
	}
	return m.IndexChatCollection()
}

func (m *MongoDBIndexer) IndexHelpRequestCollection() error {
	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "category", Value: 1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "urgency", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "helper", Value: 1},
			{Key: "rating.score", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexChatCollection() error {
	if err := m.createIndex(ChatCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "participant_key", Value: 1},
			{Key: "help_request", Value: 1},
		},
		Options: options.Index().
			SetName("chat_identity").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"active": true}),
	}); err != nil {
		return err
	}

	if err := m.createIndex(ChatCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "participants", Value: 1},
			{Key: "last_activity_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ChatCollection, mongo.IndexModel{
		Keys: bson.M{
			"help_request": 1,
		},
	})
}
