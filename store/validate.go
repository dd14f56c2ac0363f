package store

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/helpnet-api/schema"
)

const (
	minTitleLength       = 5
	maxTitleLength       = 100
	minDescriptionLength = 10
	maxDescriptionLength = 1000
	maxFeedbackLength    = 500
	maxAccountIDLength   = 128
	maxTags              = 20
)

func lengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

// validateAccountID guards ids that end up as keys of the unread counter map
func validateAccountID(id string) error {
	if id == "" || len(id) > maxAccountIDLength {
		return validationError("invalid account id")
	}
	if strings.Contains(id, ".") || strings.HasPrefix(id, "$") {
		return validationError("account id must not contain '.' or start with '$'")
	}
	return nil
}

func validateTitle(title string) error {
	if !lengthBetween(title, minTitleLength, maxTitleLength) {
		return validationError("title must be between %d and %d characters", minTitleLength, maxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if !lengthBetween(description, minDescriptionLength, maxDescriptionLength) {
		return validationError("description must be between %d and %d characters", minDescriptionLength, maxDescriptionLength)
	}
	return nil
}

func validateUrgency(urgency string) error {
	if !schema.IsHelpUrgency(urgency) {
		return validationError("invalid urgency level")
	}
	return nil
}

// validateCoordinates accepts a [longitude, latitude] pair
func validateCoordinates(coordinates []float64) error {
	if len(coordinates) != 2 {
		return validationError("coordinates must be an array with 2 elements")
	}
	lng, lat := coordinates[0], coordinates[1]
	if math.IsNaN(lng) || math.IsNaN(lat) || lng < -180 || lng > 180 || lat < -90 || lat > 90 {
		return validationError("coordinates are out of range")
	}
	return nil
}

// normalizeHelpDraft trims the draft, applies defaults and validates it
func normalizeHelpDraft(d schema.HelpDraft) (schema.HelpDraft, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if d.Urgency == "" {
		d.Urgency = schema.URGENCY_MEDIUM
	}
	if d.ContactPreference == "" {
		d.ContactPreference = schema.CONTACT_CHAT
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if d.Images == nil {
		d.Images = []schema.HelpImage{}
	}

	if err := validateTitle(d.Title); err != nil {
		return d, err
	}
	if err := validateDescription(d.Description); err != nil {
		return d, err
	}
	if !schema.IsHelpCategory(d.Category) {
		return d, validationError("invalid category")
	}
	if err := validateUrgency(d.Urgency); err != nil {
		return d, err
	}
	if err := validateCoordinates(d.Coordinates); err != nil {
		return d, err
	}
	if !schema.IsContactPreference(d.ContactPreference) {
		return d, validationError("invalid contact preference")
	}
	if len(d.Tags) > maxTags {
		return d, validationError("at most %d tags are allowed", maxTags)
	}

	return d, nil
}

// normalizeHelpChanges trims and validates the editable fields that are set
func normalizeHelpChanges(c schema.HelpChanges) (schema.HelpChanges, error) {
	if c.Title != nil {
		title := strings.TrimSpace(*c.Title)
		if err := validateTitle(title); err != nil {
			return c, err
		}
		c.Title = &title
	}
	if c.Description != nil {
		description := strings.TrimSpace(*c.Description)
		if err := validateDescription(description); err != nil {
			return c, err
		}
		c.Description = &description
	}
	if c.Urgency != nil {
		if err := validateUrgency(*c.Urgency); err != nil {
			return c, err
		}
	}
	return c, nil
}

func validateRating(score int, feedback string) error {
	if score < 1 || score > 5 {
		return validationError("rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(feedback) > maxFeedbackLength {
		return validationError("feedback must be less than %d characters", maxFeedbackLength)
	}
	return nil
}

// normalizeMessageDraft trims the content, applies the default type and validates it
func normalizeMessageDraft(d schema.MessageDraft) (schema.MessageDraft, error) {
	d.Content = strings.TrimSpace(d.Content)
	if d.Type == "" {
		d.Type = schema.MESSAGE_TEXT
	}
	if d.Attachments == nil {
		d.Attachments = []schema.Attachment{}
	}

	if !lengthBetween(d.Content, 1, schema.MaxMessageLength) {
		return d, validationError("message must be between 1 and %d characters", schema.MaxMessageLength)
	}
	if !schema.IsMessageType(d.Type) {
		return d, validationError("invalid message type")
	}
	return d, nil
}

// normalizePagination applies the default page size and clamps the limit
func normalizePagination(p schema.Pagination) (schema.Pagination, error) {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = schema.DefaultPageLimit
	}
	if p.Page < 1 {
		return p, validationError("page must be at least 1")
	}
	if p.Limit < 1 || p.Limit > schema.MaxPageLimit {
		return p, validationError("limit must be between 1 and %d", schema.MaxPageLimit)
	}
	return p, nil
}

const maxNameLength = 50

func validateName(name string) error {
	if !lengthBetween(name, 1, maxNameLength) {
		return validationError("name must be between 1 and %d characters", maxNameLength)
	}
	return nil
}
