package store

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/helpnet-api/schema"
	"github.com/bitmark-inc/helpnet-api/store/mocks"
)

var (
	nearHelpID      = primitive.NewObjectID()
	farHelpID       = primitive.NewObjectID()
	expiredHelpID   = primitive.NewObjectID()
	cancelledHelpID = primitive.NewObjectID()
	medicalHelpID   = primitive.NewObjectID()
	inProgressID    = primitive.NewObjectID()
	completedHelpID = primitive.NewObjectID()
	ratedHelpID     = primitive.NewObjectID()
)

// around Times Square
var testCenter = schema.Location{Latitude: 40.758, Longitude: -73.9855}

type HelpRequestTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	now          time.Time
}

func NewHelpRequestTestSuite(connURI, dbName string) *HelpRequestTestSuite {
	return &HelpRequestTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *HelpRequestTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.now = time.Now().UTC().Truncate(time.Millisecond)
}

func (s *HelpRequestTestSuite) SetupTest() {
	// every test starts from the same fixtures
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	if err := schema.NewMongoDBIndexer(s.mongoClient, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *HelpRequestTestSuite) TearDownSuite() {
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}

func (s *HelpRequestTestSuite) fixture(id primitive.ObjectID, status string, loc schema.Location, age time.Duration) schema.HelpRequest {
	created := s.now.Add(-age)
	h := schema.HelpRequest{
		ID:          id,
		Title:       "need groceries",
		Description: "could someone pick up bread and milk",
		Category:    "food",
		Urgency:     schema.URGENCY_MEDIUM,
		Requester:   "alice",
		Status:      status,
		Location:    schema.NewGeoPoint(loc),
		Images:      []schema.HelpImage{},
		Tags:        []string{},
		ExpiresAt:   created.Add(schema.HelpRequestLifetime),
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	if status == schema.HELP_IN_PROGRESS || status == schema.HELP_COMPLETED {
		h.Helper = "bob"
	}
	return h
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *HelpRequestTestSuite) LoadMongoDBFixtures() error {
	near := s.fixture(nearHelpID, schema.HELP_OPEN, schema.Location{Latitude: 40.7590, Longitude: -73.9845}, time.Hour)
	far := s.fixture(farHelpID, schema.HELP_OPEN, schema.Location{Latitude: 40.7484, Longitude: -73.9857}, 2*time.Hour)
	expired := s.fixture(expiredHelpID, schema.HELP_OPEN, testCenter, 8*24*time.Hour)
	cancelled := s.fixture(cancelledHelpID, schema.HELP_CANCELLED, testCenter, time.Hour)
	medical := s.fixture(medicalHelpID, schema.HELP_OPEN, schema.Location{Latitude: 40.7600, Longitude: -73.9840}, 3*time.Hour)
	medical.Category = "medical"
	medical.Urgency = schema.URGENCY_HIGH
	inProgress := s.fixture(inProgressID, schema.HELP_IN_PROGRESS, testCenter, time.Hour)
	completed := s.fixture(completedHelpID, schema.HELP_COMPLETED, testCenter, time.Hour)
	rated := s.fixture(ratedHelpID, schema.HELP_COMPLETED, testCenter, time.Hour)
	rated.Rating = &schema.HelpRating{Score: 4, Feedback: "thanks", CreatedAt: s.now}

	docs := []interface{}{near, far, expired, cancelled, medical, inProgress, completed, rated}
	_, err := s.testDatabase.Collection(schema.HelpRequestCollection).InsertMany(context.Background(), docs)
	return err
}

// CleanMongoDB drop the whole test mongodb
func (s *HelpRequestTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *HelpRequestTestSuite) TestInsertAndGetHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	h := s.fixture(primitive.NilObjectID, schema.HELP_OPEN, testCenter, 0)
	s.NoError(store.InsertHelpRequest(&h))
	s.False(h.ID.IsZero())

	found, err := store.GetHelpRequest(h.ID)
	s.NoError(err)
	s.Equal(h.Title, found.Title)
	s.Equal(h.ExpiresAt, found.ExpiresAt)
	s.Equal("", found.Helper)

	_, err = store.GetHelpRequest(primitive.NewObjectID())
	s.Equal(ErrRequestNotFound, err)
}

func (s *HelpRequestTestSuite) TestNearbyHelpRequests() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	helps, total, err := store.NearbyHelpRequests(schema.NearbyQuery{
		Center:      testCenter,
		MaxDistance: 5000,
		Pagination:  schema.Pagination{Page: 1, Limit: 20},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(helps, 3)

	s.Equal(nearHelpID, helps[0].ID)
	s.Equal(medicalHelpID, helps[1].ID)
	s.Equal(farHelpID, helps[2].ID)

	last := 0.0
	for _, h := range helps {
		s.Equal(schema.HELP_OPEN, h.Status)
		s.True(h.ExpiresAt.After(s.now))
		s.NotNil(h.Distance)
		s.True(*h.Distance >= last)
		last = *h.Distance
	}
}

func (s *HelpRequestTestSuite) TestNearbyHelpRequestsWithFilters() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	helps, total, err := store.NearbyHelpRequests(schema.NearbyQuery{
		Center:      testCenter,
		MaxDistance: 5000,
		Category:    "medical",
		Pagination:  schema.Pagination{Page: 1, Limit: 20},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(medicalHelpID, helps[0].ID)

	helps, total, err = store.NearbyHelpRequests(schema.NearbyQuery{
		Center:      testCenter,
		MaxDistance: 5000,
		Pagination:  schema.Pagination{Page: 2, Limit: 2},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(helps, 1)
	s.Equal(farHelpID, helps[0].ID)

	helps, total, err = store.NearbyHelpRequests(schema.NearbyQuery{
		Center:      schema.Location{Latitude: 25.033, Longitude: 121.5654},
		MaxDistance: 5000,
		Pagination:  schema.Pagination{Page: 1, Limit: 20},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(0), total)
	s.Len(helps, 0)
}

func (s *HelpRequestTestSuite) TestListHelpRequests() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	helps, total, err := store.ListHelpRequests(schema.HelpFilter{
		Status:     schema.HELP_OPEN,
		Pagination: schema.Pagination{Page: 1, Limit: 20},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(3), total)
	// newest first
	s.Equal(nearHelpID, helps[0].ID)
	s.Equal(farHelpID, helps[1].ID)
	s.Equal(medicalHelpID, helps[2].ID)

	helps, total, err = store.ListHelpRequests(schema.HelpFilter{
		Status:     schema.HELP_OPEN,
		Urgency:    schema.URGENCY_HIGH,
		Pagination: schema.Pagination{Page: 1, Limit: 20},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(medicalHelpID, helps[0].ID)

	center := testCenter
	_, total, err = store.ListHelpRequests(schema.HelpFilter{
		Status:     schema.HELP_OPEN,
		Center:     &center,
		Radius:     500,
		Pagination: schema.Pagination{Page: 1, Limit: 20},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(2), total)

	helps, total, err = store.ListHelpRequests(schema.HelpFilter{
		Status:     schema.HELP_CANCELLED,
		Pagination: schema.Pagination{Page: 1, Limit: 20},
	}, s.now)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(cancelledHelpID, helps[0].ID)
}

func (s *HelpRequestTestSuite) TestAcceptHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.AcceptHelpRequest(nearHelpID, "alice", s.now)
	s.Equal(ErrHelpNotUpdated, err)

	_, err = store.AcceptHelpRequest(expiredHelpID, "bob", s.now)
	s.Equal(ErrHelpNotUpdated, err)

	help, err := store.AcceptHelpRequest(nearHelpID, "bob", s.now)
	s.NoError(err)
	s.Equal(schema.HELP_IN_PROGRESS, help.Status)
	s.Equal("bob", help.Helper)
	s.Equal(s.now, help.UpdatedAt)

	_, err = store.AcceptHelpRequest(nearHelpID, "carol", s.now)
	s.Equal(ErrHelpNotUpdated, err)

	found, err := store.GetHelpRequest(nearHelpID)
	s.NoError(err)
	s.Equal("bob", found.Helper)
}

func (s *HelpRequestTestSuite) TestCompleteHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.CompleteHelpRequest(inProgressID, "carol", s.now)
	s.Equal(ErrHelpNotUpdated, err)

	_, err = store.CompleteHelpRequest(nearHelpID, "alice", s.now)
	s.Equal(ErrHelpNotUpdated, err)

	help, err := store.CompleteHelpRequest(inProgressID, "bob", s.now)
	s.NoError(err)
	s.Equal(schema.HELP_COMPLETED, help.Status)
	s.NotNil(help.CompletedAt)
	s.Equal(s.now, *help.CompletedAt)
}

func (s *HelpRequestTestSuite) TestCancelAndEditHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	title := "need groceries today"
	help, err := store.EditHelpRequest(nearHelpID, "alice", schema.HelpChanges{Title: &title}, s.now)
	s.NoError(err)
	s.Equal(title, help.Title)
	s.Equal("could someone pick up bread and milk", help.Description)

	_, err = store.CancelHelpRequest(nearHelpID, "bob", s.now)
	s.Equal(ErrHelpNotUpdated, err)

	help, err = store.CancelHelpRequest(nearHelpID, "alice", s.now)
	s.NoError(err)
	s.Equal(schema.HELP_CANCELLED, help.Status)

	_, err = store.EditHelpRequest(nearHelpID, "alice", schema.HelpChanges{Title: &title}, s.now)
	s.Equal(ErrHelpNotUpdated, err)

	_, err = store.CancelHelpRequest(inProgressID, "alice", s.now)
	s.Equal(ErrHelpNotUpdated, err)
}

func (s *HelpRequestTestSuite) TestRateHelpRequest() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	rating := schema.HelpRating{Score: 5, Feedback: "great", CreatedAt: s.now}

	_, err := store.RateHelpRequest(completedHelpID, "bob", rating)
	s.Equal(ErrHelpNotUpdated, err)

	_, err = store.RateHelpRequest(ratedHelpID, "alice", rating)
	s.Equal(ErrHelpNotUpdated, err)

	_, err = store.RateHelpRequest(inProgressID, "alice", rating)
	s.Equal(ErrHelpNotUpdated, err)

	help, err := store.RateHelpRequest(completedHelpID, "alice", rating)
	s.NoError(err)
	s.Equal(rating, *help.Rating)

	_, err = store.RateHelpRequest(completedHelpID, "alice", rating)
	s.Equal(ErrHelpNotUpdated, err)

	r, err := store.HelperRating("bob")
	s.NoError(err)
	s.Equal(4.5, r.Average)
	s.Equal(int64(2), r.Count)

	r, err = store.HelperRating("nobody")
	s.NoError(err)
	s.Equal(schema.AccountRating{}, r)
}

func (s *HelpRequestTestSuite) TestAccountHelpRequests() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	helps, total, err := store.AccountHelpRequests(schema.UserHelpFilter{
		AccountID:  "bob",
		Role:       schema.HELP_ROLE_HELPED,
		Pagination: schema.Pagination{Page: 1, Limit: 20},
	})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(helps, 3)

	_, total, err = store.AccountHelpRequests(schema.UserHelpFilter{
		AccountID:  "alice",
		Role:       schema.HELP_ROLE_REQUESTED,
		Status:     schema.HELP_OPEN,
		Pagination: schema.Pagination{Page: 1, Limit: 20},
	})
	s.NoError(err)
	s.Equal(int64(4), total)

	counts, err := store.HelpStatusCounts(schema.HELP_ROLE_REQUESTED, "alice")
	s.NoError(err)
	s.Equal(map[string]int64{
		schema.HELP_OPEN:        4,
		schema.HELP_CANCELLED:   1,
		schema.HELP_IN_PROGRESS: 1,
		schema.HELP_COMPLETED:   2,
	}, counts)

	recent, err := store.RecentHelpRequests("bob", nil, 2)
	s.NoError(err)
	s.Len(recent, 2)

	recent, err = store.RecentHelpRequests("bob", []string{schema.HELP_COMPLETED}, 10)
	s.NoError(err)
	s.NotEmpty(recent)
	for _, h := range recent {
		s.Equal(schema.HELP_COMPLETED, h.Status)
	}
}

// TestHelpLifecycle walks one request from creation to rating through the core
func (s *HelpRequestTestSuite) TestHelpLifecycle() {
	ctl := gomock.NewController(s.T())
	defer ctl.Finish()

	accounts := mocks.NewMockAccountStore(ctl)
	core := NewAutonomyStore(accounts, NewMongoStore(s.mongoClient, s.testDBName))

	help, err := core.RequestHelp("alice", schema.HelpDraft{
		Title:       "need groceries",
		Description: "could someone pick up bread and milk",
		Category:    "food",
		Coordinates: []float64{-74.0, 40.7},
	})
	s.NoError(err)
	s.Equal(schema.HELP_OPEN, help.Status)

	accepted, chat, err := core.AcceptHelp(help.ID.Hex(), "bob")
	s.NoError(err)
	s.Equal(schema.HELP_IN_PROGRESS, accepted.Status)
	s.Equal("bob", accepted.Helper)
	s.NotNil(chat)
	s.Equal([]string{"alice", "bob"}, chat.Participants)

	_, _, err = core.SendMessage(chat.ID.Hex(), "bob", schema.MessageDraft{Content: "hi"})
	s.NoError(err)

	unread, err := core.UnreadCount("alice")
	s.NoError(err)
	s.Equal(1, unread)

	_, err = core.MarkChatRead(chat.ID.Hex(), "alice")
	s.NoError(err)

	unread, err = core.UnreadCount("alice")
	s.NoError(err)
	s.Equal(0, unread)

	completed, err := core.CompleteHelp(help.ID.Hex(), "alice")
	s.NoError(err)
	s.Equal(schema.HELP_COMPLETED, completed.Status)

	// bob already has one rating of 4 in the fixtures
	accounts.EXPECT().
		UpdateAccountRating("bob", schema.AccountRating{Average: 4.5, Count: 2}).
		Return(nil).
		Times(1)

	rated, err := core.RateHelp(help.ID.Hex(), "alice", 5, "great")
	s.NoError(err)
	s.Equal(5, rated.Rating.Score)

	_, err = core.RateHelp(help.ID.Hex(), "alice", 5, "again")
	s.Equal(ErrRequestAlreadyRated, err)

	count, err := s.testDatabase.Collection(schema.ChatCollection).CountDocuments(context.Background(), bson.M{
		"help_request": help.ID,
	})
	s.NoError(err)
	s.Equal(int64(1), count)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to s.Run
func TestHelpRequestTestSuite(t *testing.T) {
	suite.Run(t, NewHelpRequestTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-helpnet-help"))
}
