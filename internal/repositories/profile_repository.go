package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"astroportal/internal/models/db_models"
)

type ProfileRepository interface {
	FindByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	Insert(ctx context.Context, profile *db_models.Profile) error
	Update(ctx context.Context, profile *db_models.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindByAccountId(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) Insert(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).Create(profile).Error
}

func (p *profileRepository) Update(ctx context.Context, profile *db_models.Profile) error {
	return p.db.WithContext(ctx).Save(profile).Error
}
