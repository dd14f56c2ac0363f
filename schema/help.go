package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	HelpRequestCollection = "help_requests"

	// HelpRequestLifetime is how long a request stays acceptable after creation
	HelpRequestLifetime = 7 * 24 * time.Hour
)

const (
	HELP_OPEN        = "open"
	HELP_IN_PROGRESS = "in-progress"
	HELP_COMPLETED   = "completed"
	HELP_CANCELLED   = "cancelled"
)

const (
	URGENCY_LOW    = "low"
	URGENCY_MEDIUM = "medium"
	URGENCY_HIGH   = "high"
)

const (
	CONTACT_CHAT  = "chat"
	CONTACT_PHONE = "phone"
	CONTACT_EMAIL = "email"
)

var (
	HelpCategories = []string{
		"food",
		"education",
		"medical",
		"elderly-care",
		"emergency",
		"transportation",
		"household",
		"other",
	}

	HelpUrgencies = []string{URGENCY_LOW, URGENCY_MEDIUM, URGENCY_HIGH}

	HelpStatuses = []string{HELP_OPEN, HELP_IN_PROGRESS, HELP_COMPLETED, HELP_CANCELLED}

	ContactPreferences = []string{CONTACT_CHAT, CONTACT_PHONE, CONTACT_EMAIL}
)

// HelpRequest is a unit of requested assistance. The helper is only set once
// the request leaves the open state through an accept.
type HelpRequest struct {
	ID                primitive.ObjectID `json:"id" bson:"_id"`
	Title             string             `json:"title" bson:"title"`
	Description       string             `json:"description" bson:"description"`
	Category          string             `json:"category" bson:"category"`
	Urgency           string             `json:"urgency" bson:"urgency"`
	Requester         string             `json:"requester" bson:"requester"`
	Helper            string             `json:"helper,omitempty" bson:"helper,omitempty"`
	Status            string             `json:"status" bson:"status"`
	Location          GeoJSON            `json:"location" bson:"location"`
	Address           Address            `json:"address" bson:"address"`
	Images            []HelpImage        `json:"images" bson:"images"`
	Tags              []string           `json:"tags" bson:"tags"`
	ContactPreference string             `json:"contact_preference" bson:"contact_preference"`
	IsAnonymous       bool               `json:"is_anonymous" bson:"is_anonymous"`
	ExpiresAt         time.Time          `json:"expires_at" bson:"expires_at"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Rating            *HelpRating        `json:"rating,omitempty" bson:"rating,omitempty"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`

	// Distance in meters from the query point, only present in proximity results
	Distance *float64 `json:"distance,omitempty" bson:"distance,omitempty"`
}

type HelpImage struct {
	URL     string `json:"url" bson:"url"`
	Caption string `json:"caption" bson:"caption"`
}

type HelpRating struct {
	Score     int       `json:"score" bson:"score"`
	Feedback  string    `json:"feedback" bson:"feedback"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// IsExpired reports whether the request can no longer be accepted at t
func (h *HelpRequest) IsExpired(t time.Time) bool {
	return !h.ExpiresAt.After(t)
}

// IsInvolved reports whether the account is the requester or the helper
func (h *HelpRequest) IsInvolved(accountID string) bool {
	return accountID != "" && (h.Requester == accountID || h.Helper == accountID)
}

// HelpDraft carries the caller supplied fields of a new help request
type HelpDraft struct {
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Category          string      `json:"category"`
	Urgency           string      `json:"urgency"`
	Coordinates       []float64   `json:"coordinates"`
	Address           string      `json:"address"`
	City              string      `json:"city"`
	State             string      `json:"state"`
	ZipCode           string      `json:"zip_code"`
	ContactPreference string      `json:"contact_preference"`
	IsAnonymous       bool        `json:"is_anonymous"`
	Tags              []string    `json:"tags"`
	Images            []HelpImage `json:"images"`
}

// HelpChanges lists the editable fields of an open request; nil means unchanged
type HelpChanges struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Urgency     *string `json:"urgency"`
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func IsHelpCategory(v string) bool {
	return contains(HelpCategories, v)
}

func IsHelpUrgency(v string) bool {
	return contains(HelpUrgencies, v)
}

func IsHelpStatus(v string) bool {
	return contains(HelpStatuses, v)
}

func IsContactPreference(v string) bool {
	return contains(ContactPreferences, v)
}
