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

// InsertHelpRequest stores a new help request and assigns its id
func (m *mongoDB) InsertHelpRequest(help *schema.HelpRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if help.ID.IsZero() {
		help.ID = primitive.NewObjectID()
	}

	if _, err := m.collection(schema.HelpRequestCollection).InsertOne(ctx, help); err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("insert help request")
		return err
	}
	return nil
}

// GetHelpRequest finds a help request by id
func (m *mongoDB) GetHelpRequest(id primitive.ObjectID) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var help schema.HelpRequest
	if err := m.collection(schema.HelpRequestCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&help); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &help, nil
}

// updateHelpRequest applies update to the request only if it still matches
// cond. It returns ErrHelpNotUpdated when nothing matched.
func (m *mongoDB) updateHelpRequest(id primitive.ObjectID, cond bson.M, update bson.M) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	for k, v := range cond {
		filter[k] = v
	}

	var help schema.HelpRequest
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := m.collection(schema.HelpRequestCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&help); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrHelpNotUpdated
		}
		return nil, err
	}
	return &help, nil
}

// EditHelpRequest updates the editable fields of an open request owned by actor
func (m *mongoDB) EditHelpRequest(id primitive.ObjectID, actor string, changes schema.HelpChanges, now time.Time) (*schema.HelpRequest, error) {
	set := bson.M{"updated_at": now}
	if changes.Title != nil {
		set["title"] = *changes.Title
	}
	if changes.Description != nil {
		set["description"] = *changes.Description
	}
	if changes.Urgency != nil {
		set["urgency"] = *changes.Urgency
	}

	return m.updateHelpRequest(id, bson.M{
		"requester": actor,
		"status":    schema.HELP_OPEN,
	}, bson.M{"$set": set})
}

// AcceptHelpRequest sets the helper and moves an open, unexpired request
// to in-progress. A request could be accepted only when the helper is not
// the same as the requester.
func (m *mongoDB) AcceptHelpRequest(id primitive.ObjectID, helper string, now time.Time) (*schema.HelpRequest, error) {
	return m.updateHelpRequest(id, bson.M{
		"status":     schema.HELP_OPEN,
		"expires_at": bson.M{"$gt": now},
		"requester":  bson.M{"$ne": helper},
	}, bson.M{"$set": bson.M{
		"helper":     helper,
		"status":     schema.HELP_IN_PROGRESS,
		"updated_at": now,
	}})
}

// CompleteHelpRequest completes an in-progress request on behalf of its
// requester or helper
func (m *mongoDB) CompleteHelpRequest(id primitive.ObjectID, actor string, now time.Time) (*schema.HelpRequest, error) {
	return m.updateHelpRequest(id, bson.M{
		"status": schema.HELP_IN_PROGRESS,
		"$or": bson.A{
			bson.M{"requester": actor},
			bson.M{"helper": actor},
		},
	}, bson.M{"$set": bson.M{
		"status":       schema.HELP_COMPLETED,
		"completed_at": now,
		"updated_at":   now,
	}})
}

// CancelHelpRequest cancels an open request owned by actor
func (m *mongoDB) CancelHelpRequest(id primitive.ObjectID, actor string, now time.Time) (*schema.HelpRequest, error) {
	return m.updateHelpRequest(id, bson.M{
		"requester": actor,
		"status":    schema.HELP_OPEN,
	}, bson.M{"$set": bson.M{
		"status":     schema.HELP_CANCELLED,
		"updated_at": now,
	}})
}

// RateHelpRequest stores the rating of a completed request exactly once
func (m *mongoDB) RateHelpRequest(id primitive.ObjectID, actor string, rating schema.HelpRating) (*schema.HelpRequest, error) {
	return m.updateHelpRequest(id, bson.M{
		"requester":    actor,
		"status":       schema.HELP_COMPLETED,
		"rating.score": bson.M{"$exists": false},
	}, bson.M{"$set": bson.M{
		"rating":     rating,
		"updated_at": rating.CreatedAt,
	}})
}

// ListHelpRequests returns one page of requests matching the filter, newest
// first, along with the total number of matches. Open requests are only
// listed until they expire.
func (m *mongoDB) ListHelpRequests(filter schema.HelpFilter, now time.Time) ([]schema.HelpRequest, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"status": filter.Status}
	if filter.Status == schema.HELP_OPEN {
		query["expires_at"] = bson.M{"$gt": now}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Urgency != "" {
		query["urgency"] = filter.Urgency
	}
	if filter.Center != nil {
		query["location"] = withinRadius(*filter.Center, filter.Radius)
	}

	return m.findHelpRequestPage(ctx, query, filter.Pagination)
}

// NearbyHelpRequests returns open, unexpired requests within the max distance
// ordered from nearest to farthest
func (m *mongoDB) NearbyHelpRequests(q schema.NearbyQuery, now time.Time) ([]schema.HelpRequest, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := matchOpenAndUnexpired(now)
	if q.Category != "" {
		query["category"] = q.Category
	}
	if q.Urgency != "" {
		query["urgency"] = q.Urgency
	}

	pipeline := []bson.M{
		aggStageGeoProximity(q.MaxDistance, q.Center, query),
		aggStagePaginate(q.Pagination),
	}

	cursor, err := m.collection(schema.HelpRequestCollection).Aggregate(ctx, pipeline)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("query nearby help requests")
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var result paginatedHelpRequests
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return nil, 0, fmt.Errorf("decode nearby help requests with error: %s", err)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	if result.Items == nil {
		result.Items = []schema.HelpRequest{}
	}
	return result.Items, result.count(), nil
}

// AccountHelpRequests lists the requests an account asked for or helped with
func (m *mongoDB) AccountHelpRequests(filter schema.UserHelpFilter) ([]schema.HelpRequest, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{roleField(filter.Role): filter.AccountID}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	return m.findHelpRequestPage(ctx, query, filter.Pagination)
}

func (m *mongoDB) findHelpRequestPage(ctx context.Context, query bson.M, p schema.Pagination) ([]schema.HelpRequest, int64, error) {
	c := m.collection(schema.HelpRequestCollection)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).WithError(err).Error("query help requests")
		return nil, 0, err
	}

	helps := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &helps); err != nil {
		return nil, 0, err
	}

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	return helps, total, nil
}

// RecentHelpRequests returns the requests an account was last involved in.
// An empty statuses matches every status.
func (m *mongoDB) RecentHelpRequests(accountID string, statuses []string, limit int64) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"$or": bson.A{
		bson.M{"requester": accountID},
		bson.M{"helper": accountID},
	}}
	if len(statuses) > 0 {
		query["status"] = bson.M{"$in": statuses}
	}
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}).SetLimit(limit)

	cursor, err := m.collection(schema.HelpRequestCollection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	helps := make([]schema.HelpRequest, 0)
	if err := cursor.All(ctx, &helps); err != nil {
		return nil, err
	}
	return helps, nil
}

// HelpStatusCounts counts the requests of an account per status, either as
// requester or as helper
func (m *mongoDB) HelpStatusCounts(role, accountID string) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{roleField(role): accountID}},
		aggStageCountBy("status"),
	}

	cursor, err := m.collection(schema.HelpRequestCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var groups []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(groups))
	for _, g := range groups {
		counts[g.Status] = g.Count
	}
	return counts, nil
}

// HelperRating computes the mean score over every rated request of a helper.
// It scans all of them on each call.
func (m *mongoDB) HelperRating(helper string) (schema.AccountRating, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"helper":       helper,
			"rating.score": bson.M{"$exists": true},
		}},
		aggStageAverage("rating.score"),
	}

	cursor, err := m.collection(schema.HelpRequestCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return schema.AccountRating{}, err
	}

	var results []struct {
		Average float64 `bson:"average"`
		Count   int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return schema.AccountRating{}, err
	}

	if len(results) == 0 {
		return schema.AccountRating{}, nil
	}
	return schema.AccountRating{
		Average: results[0].Average,
		Count:   results[0].Count,
	}, nil
}

func roleField(role string) string {
	if role == schema.HELP_ROLE_HELPED {
		return "helper"
	}
	return "requester"
}
