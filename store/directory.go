package store

import (
	"strings"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// pq error code of unique_violation
const pqUniqueViolation = "23505"

// AccountStore - the user directory. It owns names, avatars and the
// aggregated helper rating.
type AccountStore interface {
	CreateAccount(account *schema.Account) error
	GetAccount(id string) (*schema.Account, error)
	GetAccounts(ids []string) ([]schema.Account, error)
	UpdateAccountProfile(id string, name, avatar *string) (*schema.Account, error)
	UpdateAccountRating(id string, rating schema.AccountRating) error
	TopHelpers(limit int) ([]schema.Account, error)
	SearchAccounts(filter schema.AccountFilter) ([]schema.Account, int64, error)
	Pinger
}

type ormAccountStore struct {
	ormDB *gorm.DB
}

// NewAccountStore - return the postgres backed user directory
func NewAccountStore(ormDB *gorm.DB) AccountStore {
	return &ormAccountStore{ormDB: ormDB}
}

func (s *ormAccountStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// CreateAccount is to register an account into the directory
func (s *ormAccountStore) CreateAccount(a *schema.Account) error {
	if err := s.ormDB.Create(a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return ErrAccountTaken
		}
		log.WithField("prefix", "store").WithError(err).Error("create account")
		return err
	}
	return nil
}

// GetAccount returns an account instance of a given id
func (s *ormAccountStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetAccounts returns the accounts among ids that exist, in no specific order
func (s *ormAccountStore) GetAccounts(ids []string) ([]schema.Account, error) {
	accounts := make([]schema.Account, 0, len(ids))
	if len(ids) == 0 {
		return accounts, nil
	}

	if err := s.ormDB.Where("id IN (?)", ids).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdateAccountProfile changes the name and avatar that are not nil
func (s *ormAccountStore) UpdateAccountProfile(id string, name, avatar *string) (*schema.Account, error) {
	fields := map[string]interface{}{}
	if name != nil {
		fields["name"] = strings.TrimSpace(*name)
	}
	if avatar != nil {
		fields["avatar"] = *avatar
	}

	if len(fields) > 0 {
		result := s.ormDB.Model(schema.Account{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrAccountNotFound
		}
	}

	return s.GetAccount(id)
}

// UpdateAccountRating overwrites the rating aggregate of an account
func (s *ormAccountStore) UpdateAccountRating(id string, rating schema.AccountRating) error {
	result := s.ormDB.Model(schema.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"rating_average": rating.Average,
		"rating_count":   rating.Count,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// TopHelpers returns the rated helpers with the best average rating
func (s *ormAccountStore) TopHelpers(limit int) ([]schema.Account, error) {
	var accounts []schema.Account
	err := s.ormDB.
		Where("role = ? AND rating_count > 0", schema.ROLE_HELPER).
		Order("rating_average DESC").
		Order("rating_count DESC").
		Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchAccounts finds accounts whose name contains the query, best rated
// first
func (s *ormAccountStore) SearchAccounts(filter schema.AccountFilter) ([]schema.Account, int64, error) {
	db := s.ormDB.Model(schema.Account{})
	if filter.Query != "" {
		db = db.Where("name ILIKE ?", "%"+likeEscaper.Replace(filter.Query)+"%")
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]schema.Account, 0)
	err := db.
		Order("rating_average DESC").
		Order("rating_count DESC").
		Offset(filter.Pagination.Skip()).
		Limit(filter.Pagination.Limit).
		Find(&accounts).Error
	if err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}
