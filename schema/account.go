package schema

import (
	"time"
)

const (
	ROLE_SEEKER = "seeker"
	ROLE_HELPER = "helper"
	ROLE_ADMIN  = "admin"
)

var AccountRoles = []string{ROLE_SEEKER, ROLE_HELPER, ROLE_ADMIN}

// Account is the directory entry of a user. The rating is an aggregate owned by
// the rating recompute and never edited by the user.
type Account struct {
	ID        string        `json:"id" gorm:"primary_key"`
	Name      string        `json:"name"`
	Avatar    string        `json:"avatar"`
	Role      string        `json:"role" gorm:"not null;default:'seeker'"`
	Rating    AccountRating `json:"rating" gorm:"embedded;embedded_prefix:rating_"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type AccountRating struct {
	Average float64 `json:"average" gorm:"not null;default:0"`
	Count   int64   `json:"count" gorm:"not null;default:0"`
}

// AccountSummary is the public part of an account attached to requests and chats
type AccountSummary struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Avatar string        `json:"avatar"`
	Rating AccountRating `json:"rating"`
}

func (a Account) Summary() AccountSummary {
	return AccountSummary{
		ID:     a.ID,
		Name:   a.Name,
		Avatar: a.Avatar,
		Rating: a.Rating,
	}
}

func IsAccountRole(v string) bool {
	return contains(AccountRoles, v)
}
