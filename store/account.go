package store

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/helpnet-api/schema"
)

const (
	defaultTopHelpers = 10
	maxTopHelpers     = 50
	recentActivities  = 5
	notificationItems = 5
)

// CreateAccount is to register an account into the directory. Admins are
// never self registered.
func (s *AutonomyStore) CreateAccount(id, name, role string) (*schema.Account, error) {
	if err := validateAccountID(id); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	if role == "" {
		role = schema.ROLE_SEEKER
	}
	if role != schema.ROLE_SEEKER && role != schema.ROLE_HELPER {
		return nil, validationError("invalid role")
	}

	a := schema.Account{
		ID:   id,
		Name: name,
		Role: role,
	}
	if err := s.accounts.CreateAccount(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccount returns an account instance of a given id
func (s *AutonomyStore) GetAccount(id string) (*schema.Account, error) {
	return s.accounts.GetAccount(id)
}

// UpdateAccountProfile changes the name or the avatar of an account
func (s *AutonomyStore) UpdateAccountProfile(id string, name, avatar *string) (*schema.Account, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if err := validateName(trimmed); err != nil {
			return nil, err
		}
		name = &trimmed
	}
	return s.accounts.UpdateAccountProfile(id, name, avatar)
}

// TopHelpers returns the best rated helpers
func (s *AutonomyStore) TopHelpers(limit int) ([]schema.Account, error) {
	if limit == 0 {
		limit = defaultTopHelpers
	}
	if limit < 1 || limit > maxTopHelpers {
		return nil, validationError("limit must be between 1 and %d", maxTopHelpers)
	}
	return s.accounts.TopHelpers(limit)
}

// AccountSummaries looks up the public profile of every known id. Unknown ids
// are left out of the result.
func (s *AutonomyStore) AccountSummaries(ids []string) (map[string]schema.AccountSummary, error) {
	unique := schema.NormalizeParticipants(ids)

	summaries := make(map[string]schema.AccountSummary, len(unique))
	if len(unique) == 0 {
		return summaries, nil
	}

	accounts, err := s.accounts.GetAccounts(unique)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		summaries[a.ID] = a.Summary()
	}
	return summaries, nil
}

// AccountStats summarizes the requests an account made and helped with
func (s *AutonomyStore) AccountStats(id string) (*schema.HelpStats, error) {
	requested, err := s.mongo.HelpStatusCounts(schema.HELP_ROLE_REQUESTED, id)
	if err != nil {
		return nil, err
	}

	helped, err := s.mongo.HelpStatusCounts(schema.HELP_ROLE_HELPED, id)
	if err != nil {
		return nil, err
	}

	rating, err := s.mongo.HelperRating(id)
	if err != nil {
		return nil, err
	}
	rating.Average = math.Round(rating.Average*10) / 10

	recent, err := s.mongo.RecentHelpRequests(id, nil, recentActivities)
	if err != nil {
		return nil, err
	}

	return &schema.HelpStats{
		Requested:      withAllStatuses(requested),
		Helped:         withAllStatuses(helped),
		Rating:         rating,
		RecentActivity: recent,
	}, nil
}

func withAllStatuses(counts map[string]int64) map[string]int64 {
	result := make(map[string]int64, len(schema.HelpStatuses))
	for _, status := range schema.HelpStatuses {
		result[status] = counts[status]
	}
	return result
}

// SearchAccounts pages through the seekers and helpers whose name contains
// the query
func (s *AutonomyStore) SearchAccounts(filter schema.AccountFilter) (*schema.AccountPage, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if utf8.RuneCountInString(filter.Query) > maxNameLength {
		return nil, validationError("query must be at most %d characters", maxNameLength)
	}
	if filter.Role != "" && filter.Role != schema.ROLE_SEEKER && filter.Role != schema.ROLE_HELPER {
		return nil, validationError("role must be %s or %s", schema.ROLE_SEEKER, schema.ROLE_HELPER)
	}

	p, err := normalizePagination(filter.Pagination)
	if err != nil {
		return nil, err
	}
	filter.Pagination = p

	accounts, total, err := s.accounts.SearchAccounts(filter)
	if err != nil {
		return nil, err
	}

	items := make([]schema.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, a.Summary())
	}

	return &schema.AccountPage{
		Items:      items,
		Pagination: p.WithTotal(total),
	}, nil
}

// Notifications collects the open requests near center and the latest
// accepted or completed requests of the account. Accounts carry no location,
// so without a center only the account's own requests are listed.
func (s *AutonomyStore) Notifications(id string, center *schema.Location) (*schema.Notifications, error) {
	nearby := make([]schema.HelpRequest, 0)
	if center != nil {
		if err := validateCoordinates([]float64{center.Longitude, center.Latitude}); err != nil {
			return nil, err
		}

		helps, _, err := s.mongo.NearbyHelpRequests(schema.NearbyQuery{
			Center:      *center,
			MaxDistance: schema.DefaultSearchRadius,
			Pagination:  schema.Pagination{Page: 1, Limit: notificationItems},
		}, s.now())
		if err != nil {
			return nil, err
		}
		if helps != nil {
			nearby = helps
		}
	}

	mine, err := s.mongo.RecentHelpRequests(id,
		[]string{schema.HELP_IN_PROGRESS, schema.HELP_COMPLETED}, notificationItems)
	if err != nil {
		return nil, err
	}

	return &schema.Notifications{
		NearbyRequests: nearby,
		MyRequests:     mine,
		Count:          len(nearby) + len(mine),
	}, nil
}
