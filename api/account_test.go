package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/helpnet-api/schema"
	"github.com/bitmark-inc/helpnet-api/store"
)

func TestAccountRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().CreateAccount("alice", "Alice", schema.ROLE_HELPER).Return(&schema.Account{
		ID:   "alice",
		Name: "Alice",
		Role: schema.ROLE_HELPER,
	}, nil)

	w := doRequest(t, s, "POST", "/api/accounts", "alice", map[string]string{
		"name": "Alice",
		"role": schema.ROLE_HELPER,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	result := decodeResult(t, w)["result"].(map[string]interface{})
	assert.Equal(t, schema.ROLE_HELPER, result["role"])
}

func TestAccountRegisterTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().CreateAccount("alice", "Alice", "").Return(nil, store.ErrAccountTaken)

	w := doRequest(t, s, "POST", "/api/accounts", "alice", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1100), decodeError(t, w).Code)
}

func TestAccountUpdateProfile(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)

	avatar := "https://example.com/a.png"
	core.EXPECT().GetAccount("alice").Return(&schema.Account{ID: "alice"}, nil)
	core.EXPECT().UpdateAccountProfile("alice", nil, &avatar).Return(&schema.Account{
		ID:     "alice",
		Name:   "Alice",
		Avatar: avatar,
	}, nil)

	w := doRequest(t, s, "PATCH", "/api/accounts/me", "alice", map[string]string{"avatar": avatar})
	assert.Equal(t, http.StatusOK, w.Code)

	result := decodeResult(t, w)["result"].(map[string]interface{})
	assert.Equal(t, avatar, result["avatar"])
}

func TestAccountProfileReturnsSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetAccount("bob").Return(&schema.Account{
		ID:     "bob",
		Name:   "Bob",
		Role:   schema.ROLE_HELPER,
		Rating: schema.AccountRating{Average: 4.5, Count: 2},
	}, nil)

	w := doRequest(t, s, "GET", "/api/accounts/bob", "alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result map[string]interface{} `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bob", resp.Result["name"])
	assert.NotContains(t, resp.Result, "role")
	assert.Equal(t, 4.5, resp.Result["rating"].(map[string]interface{})["average"])
}

func TestAccountProfileNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetAccount("nobody").Return(nil, store.ErrAccountNotFound)

	w := doRequest(t, s, "GET", "/api/accounts/nobody", "alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1101), decodeError(t, w).Code)
}

func TestTopHelpers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().TopHelpers(3).Return([]schema.Account{
		{ID: "bob", Name: "Bob", Rating: schema.AccountRating{Average: 4.8, Count: 5}},
		{ID: "carol", Name: "Carol", Rating: schema.AccountRating{Average: 4.1, Count: 9}},
	}, nil)

	w := doRequest(t, s, "GET", "/api/accounts/top-helpers?limit=3", "alice", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result []schema.AccountSummary `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result, 2)
	assert.Equal(t, "bob", resp.Result[0].ID)
}

func TestAccountHelps(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetAccount("bob").Return(&schema.Account{ID: "bob"}, nil)
	core.EXPECT().UserHelps(schema.UserHelpFilter{
		AccountID:  "bob",
		Role:       schema.HELP_ROLE_HELPED,
		Status:     schema.HELP_COMPLETED,
		Pagination: schema.Pagination{Limit: 10},
	}).Return(&schema.HelpPage{
		Pagination: schema.Pagination{Page: 1, Limit: 10},
	}, nil)
	core.EXPECT().AccountSummaries(gomock.Any()).Return(map[string]schema.AccountSummary{}, nil)

	w := doRequest(t, s, "GET", "/api/accounts/me/requests?type=helped&status=completed&limit=10", "bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":[],"pagination":{"page":1,"limit":10,"total":0,"pages":0}}`, w.Body.String())
}

func TestAccountStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetAccount("bob").Return(&schema.Account{ID: "bob"}, nil)
	core.EXPECT().AccountStats("bob").Return(&schema.HelpStats{
		Requested: map[string]int64{schema.HELP_OPEN: 1},
	}, nil)

	w := doRequest(t, s, "GET", "/api/accounts/me/stats", "bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchAccounts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().SearchAccounts(schema.AccountFilter{
		Query:      "ali",
		Role:       schema.ROLE_HELPER,
		Pagination: schema.Pagination{Page: 2, Limit: 5},
	}).Return(&schema.AccountPage{
		Items:      []schema.AccountSummary{{ID: "alice", Name: "Alice"}},
		Pagination: schema.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
	}, nil)

	w := doRequest(t, s, "GET", "/api/accounts/search?q=ali&role=helper&page=2&limit=5", "bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result     []schema.AccountSummary `json:"result"`
		Pagination schema.Pagination       `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result, 1)
	assert.Equal(t, "alice", resp.Result[0].ID)
	assert.Equal(t, int64(6), resp.Pagination.Total)
}

func TestSearchAccountsInvalidRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().SearchAccounts(gomock.Any()).
		Return(nil, fmt.Errorf("%w: role must be seeker or helper", store.ErrValidation))

	w := doRequest(t, s, "GET", "/api/accounts/search?role=admin", "bob", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestAccountNotificationsFromGeoPosition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetAccount("bob").Return(&schema.Account{ID: "bob"}, nil)
	core.EXPECT().Notifications("bob", &schema.Location{Latitude: 40.758, Longitude: -73.9855}).
		Return(&schema.Notifications{
			NearbyRequests: []schema.HelpRequest{{Requester: "alice", Status: schema.HELP_OPEN}},
			MyRequests:     []schema.HelpRequest{},
			Count:          1,
		}, nil)
	core.EXPECT().AccountSummaries(gomock.Any()).Return(map[string]schema.AccountSummary{}, nil).Times(2)

	w := doRequest(t, s, "GET", "/api/accounts/me/notifications", "bob", nil, "Geo-Position", "40.758;-73.9855")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result struct {
			NearbyRequests []interface{} `json:"nearby_requests"`
			MyRequests     []interface{} `json:"my_requests"`
			Count          int           `json:"count"`
		} `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result.NearbyRequests, 1)
	assert.Empty(t, resp.Result.MyRequests)
	assert.Equal(t, 1, resp.Result.Count)
}

func TestAccountNotificationsWithoutLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, core, _ := newTestServer(ctl, nil)
	core.EXPECT().GetAccount("bob").Return(&schema.Account{ID: "bob"}, nil)
	core.EXPECT().Notifications("bob", nil).Return(&schema.Notifications{
		NearbyRequests: []schema.HelpRequest{},
		MyRequests:     []schema.HelpRequest{},
	}, nil)
	core.EXPECT().AccountSummaries(gomock.Any()).Return(map[string]schema.AccountSummary{}, nil).Times(2)

	w := doRequest(t, s, "GET", "/api/accounts/me/notifications", "bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
