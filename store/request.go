package store

import (
	"strings"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/helpnet-api/schema"
	"github.com/bitmark-inc/helpnet-api/utils"
)

const storeLogPrefix = "store"

// RequestHelp creates an open help request that expires after
// schema.HelpRequestLifetime. Missing address fields are resolved from the
// coordinates when a geocoding client is set up.
func (s *AutonomyStore) RequestHelp(requester string, draft schema.HelpDraft) (*schema.HelpRequest, error) {
	if err := validateAccountID(requester); err != nil {
		return nil, err
	}

	draft, err := normalizeHelpDraft(draft)
	if err != nil {
		return nil, err
	}

	loc := schema.Location{
		Longitude: draft.Coordinates[0],
		Latitude:  draft.Coordinates[1],
	}

	address := schema.Address{
		Address: strings.TrimSpace(draft.Address),
		City:    strings.TrimSpace(draft.City),
		State:   strings.TrimSpace(draft.State),
		ZipCode: strings.TrimSpace(draft.ZipCode),
	}
	if address.Incomplete() && utils.GeoEnabled() {
		resolved, err := utils.AddressOf(loc)
		if err != nil {
			log.WithField("prefix", storeLogPrefix).WithError(err).Warn("fail to resolve address of help request")
		} else {
			address = address.Merge(resolved)
		}
	}

	now := s.now()
	help := &schema.HelpRequest{
		Title:             draft.Title,
		Description:       draft.Description,
		Category:          draft.Category,
		Urgency:           draft.Urgency,
		Requester:         requester,
		Status:            schema.HELP_OPEN,
		Location:          schema.NewGeoPoint(loc),
		Address:           address,
		Images:            draft.Images,
		Tags:              draft.Tags,
		ContactPreference: draft.ContactPreference,
		IsAnonymous:       draft.IsAnonymous,
		ExpiresAt:         now.Add(schema.HelpRequestLifetime),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.mongo.InsertHelpRequest(help); err != nil {
		return nil, err
	}
	return help, nil
}

// GetHelp returns a help request by id
func (s *AutonomyStore) GetHelp(helpID string) (*schema.HelpRequest, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, err
	}
	return s.mongo.GetHelpRequest(id)
}

// ListHelps returns a page of help requests. The status defaults to open.
func (s *AutonomyStore) ListHelps(filter schema.HelpFilter) (*schema.HelpPage, error) {
	if filter.Status == "" {
		filter.Status = schema.HELP_OPEN
	}
	if !schema.IsHelpStatus(filter.Status) {
		return nil, validationError("invalid status")
	}
	if filter.Category != "" && !schema.IsHelpCategory(filter.Category) {
		return nil, validationError("invalid category")
	}
	if filter.Urgency != "" && !schema.IsHelpUrgency(filter.Urgency) {
		return nil, validationError("invalid urgency level")
	}
	if filter.Center != nil {
		if err := validateCoordinates([]float64{filter.Center.Longitude, filter.Center.Latitude}); err != nil {
			return nil, err
		}
		if filter.Radius == 0 {
			filter.Radius = schema.DefaultSearchRadius
		}
		if filter.Radius < 0 {
			return nil, validationError("radius must be positive")
		}
	}

	p, err := normalizePagination(filter.Pagination)
	if err != nil {
		return nil, err
	}
	filter.Pagination = p

	helps, total, err := s.mongo.ListHelpRequests(filter, s.now())
	if err != nil {
		return nil, err
	}

	return &schema.HelpPage{
		Items:      helps,
		Pagination: p.WithTotal(total),
	}, nil
}

// NearbyHelps returns open, unexpired requests around a point, nearest first
func (s *AutonomyStore) NearbyHelps(q schema.NearbyQuery) (*schema.HelpPage, error) {
	if err := validateCoordinates([]float64{q.Center.Longitude, q.Center.Latitude}); err != nil {
		return nil, err
	}
	if q.MaxDistance <= 0 {
		return nil, validationError("max distance must be positive")
	}
	if q.Category != "" && !schema.IsHelpCategory(q.Category) {
		return nil, validationError("invalid category")
	}
	if q.Urgency != "" && !schema.IsHelpUrgency(q.Urgency) {
		return nil, validationError("invalid urgency level")
	}

	p, err := normalizePagination(q.Pagination)
	if err != nil {
		return nil, err
	}
	q.Pagination = p

	helps, total, err := s.mongo.NearbyHelpRequests(q, s.now())
	if err != nil {
		return nil, err
	}

	return &schema.HelpPage{
		Items:      helps,
		Pagination: p.WithTotal(total),
	}, nil
}

// UserHelps lists the requests an account asked for or helped with
func (s *AutonomyStore) UserHelps(filter schema.UserHelpFilter) (*schema.HelpPage, error) {
	if filter.Role == "" {
		filter.Role = schema.HELP_ROLE_REQUESTED
	}
	if filter.Role != schema.HELP_ROLE_REQUESTED && filter.Role != schema.HELP_ROLE_HELPED {
		return nil, validationError("type must be %s or %s", schema.HELP_ROLE_REQUESTED, schema.HELP_ROLE_HELPED)
	}
	if filter.Status != "" && !schema.IsHelpStatus(filter.Status) {
		return nil, validationError("invalid status")
	}

	p, err := normalizePagination(filter.Pagination)
	if err != nil {
		return nil, err
	}
	filter.Pagination = p

	helps, total, err := s.mongo.AccountHelpRequests(filter)
	if err != nil {
		return nil, err
	}

	return &schema.HelpPage{
		Items:      helps,
		Pagination: p.WithTotal(total),
	}, nil
}

// transition runs a conditional write guarded by check. When the write
// matches nothing, the record is read again to report why.
func (s *AutonomyStore) transition(
	id primitive.ObjectID,
	check func(*schema.HelpRequest) error,
	write func() (*schema.HelpRequest, error),
) (*schema.HelpRequest, error) {
	help, err := s.mongo.GetHelpRequest(id)
	if err != nil {
		return nil, err
	}
	if err := check(help); err != nil {
		return nil, err
	}

	updated, err := write()
	if err != ErrHelpNotUpdated {
		return updated, err
	}

	fresh, err := s.mongo.GetHelpRequest(id)
	if err != nil {
		return nil, err
	}
	if err := check(fresh); err != nil {
		return nil, err
	}
	return nil, ErrConcurrentUpdate
}

// UpdateHelp edits an open request on behalf of its requester
func (s *AutonomyStore) UpdateHelp(helpID, actor string, changes schema.HelpChanges) (*schema.HelpRequest, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, err
	}

	changes, err = normalizeHelpChanges(changes)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return s.transition(id,
		func(h *schema.HelpRequest) error { return checkEdit(h, actor) },
		func() (*schema.HelpRequest, error) { return s.mongo.EditHelpRequest(id, actor, changes, now) },
	)
}

// AcceptHelp assigns the helper and then opens the chat between requester
// and helper. The chat is a separate step: when it fails the accepted request
// is still returned and a later StartChat creates the missing chat.
func (s *AutonomyStore) AcceptHelp(helpID, helper string) (*schema.HelpRequest, *schema.Chat, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, nil, err
	}
	if err := validateAccountID(helper); err != nil {
		return nil, nil, err
	}

	now := s.now()
	help, err := s.transition(id,
		func(h *schema.HelpRequest) error { return checkAccept(h, helper, now) },
		func() (*schema.HelpRequest, error) { return s.mongo.AcceptHelpRequest(id, helper, now) },
	)
	if err != nil {
		return nil, nil, err
	}

	chat, err := s.mongo.FindOrCreateChat([]string{help.Requester, helper}, help.ID, now)
	if err != nil {
		log.WithField("prefix", storeLogPrefix).WithError(err).
			WithField("help_id", helpID).
			Error("fail to create chat for accepted help request")
		sentry.CaptureException(err)
		return help, nil, nil
	}

	return help, chat, nil
}

// CompleteHelp completes an in-progress request. Either side can complete it.
func (s *AutonomyStore) CompleteHelp(helpID, actor string) (*schema.HelpRequest, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return s.transition(id,
		func(h *schema.HelpRequest) error { return checkComplete(h, actor) },
		func() (*schema.HelpRequest, error) { return s.mongo.CompleteHelpRequest(id, actor, now) },
	)
}

// CancelHelp cancels an open request. Cancelled requests are kept.
func (s *AutonomyStore) CancelHelp(helpID, actor string) (*schema.HelpRequest, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return s.transition(id,
		func(h *schema.HelpRequest) error { return checkCancel(h, actor) },
		func() (*schema.HelpRequest, error) { return s.mongo.CancelHelpRequest(id, actor, now) },
	)
}

// RateHelp stores the requester's rating of a completed request and
// recomputes the rating of the helper. The score is only checked once the
// actor is known to be allowed to rate.
func (s *AutonomyStore) RateHelp(helpID, actor string, score int, feedback string) (*schema.HelpRequest, error) {
	id, err := parseHelpID(helpID)
	if err != nil {
		return nil, err
	}

	feedback = strings.TrimSpace(feedback)
	rating := schema.HelpRating{
		Score:     score,
		Feedback:  feedback,
		CreatedAt: s.now(),
	}

	help, err := s.transition(id,
		func(h *schema.HelpRequest) error {
			if err := checkRate(h, actor); err != nil {
				return err
			}
			return validateRating(score, feedback)
		},
		func() (*schema.HelpRequest, error) { return s.mongo.RateHelpRequest(id, actor, rating) },
	)
	if err != nil {
		return nil, err
	}

	if err := s.refreshHelperRating(help.Helper); err != nil {
		log.WithField("prefix", storeLogPrefix).WithError(err).
			WithField("helper", help.Helper).
			Error("fail to refresh helper rating")
		sentry.CaptureException(err)
	}

	return help, nil
}

// refreshHelperRating recomputes the rating of a helper from every rated
// request and writes it to the directory
func (s *AutonomyStore) refreshHelperRating(helper string) error {
	rating, err := s.mongo.HelperRating(helper)
	if err != nil {
		return err
	}
	return s.accounts.UpdateAccountRating(helper, rating)
}
