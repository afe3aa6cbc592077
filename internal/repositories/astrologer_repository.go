package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"astroportal/internal/models/db_models"
)

type AstrologerRepository interface {
	ListActive(ctx context.Context, page, pageSize int) ([]db_models.Astrologer, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Astrologer, error)
	FindPrice(ctx context.Context, astrologerID uuid.UUID, category db_models.HoroscopeType) (*db_models.AstrologerPrice, error)
	InsertReview(ctx context.Context, review *db_models.AstrologerReview) error
	HasCompletedOrder(ctx context.Context, astrologerID, accountID uuid.UUID) (bool, error)
	HasReviewBy(ctx context.Context, astrologerID, accountID uuid.UUID) (bool, error)
}

type astrologerRepository struct {
	db *gorm.DB
}

func NewAstrologerRepository(db *gorm.DB) AstrologerRepository {
	return &astrologerRepository{db: db}
}

func (a *astrologerRepository) ListActive(ctx context.Context, page, pageSize int) ([]db_models.Astrologer, error) {
	var astrologers []db_models.Astrologer
	err := a.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("rating_sum DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&astrologers).Error
	return astrologers, err
}

func (a *astrologerRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Astrologer, error) {
	var astrologer db_models.Astrologer
	err := a.db.WithContext(ctx).
		Preload("Prices").
		Preload("Availability").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(20)
		}).
		Preload("Reviews.Account").
		First(&astrologer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &astrologer, nil
}

func (a *astrologerRepository) FindPrice(ctx context.Context, astrologerID uuid.UUID, category db_models.HoroscopeType) (*db_models.AstrologerPrice, error) {
	var price db_models.AstrologerPrice
	err := a.db.WithContext(ctx).
		First(&price, "astrologer_id = ? AND category = ?", astrologerID, category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

// InsertReview adds the review and folds it into the rating aggregate
// in one transaction.
func (a *astrologerRepository) InsertReview(ctx context.Context, review *db_models.AstrologerReview) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.Astrologer{}).
			Where("id = ?", review.AstrologerID).
			Updates(map[string]interface{}{
				"rating_sum":   gorm.Expr("rating_sum + ?", review.Rating),
				"rating_count": gorm.Expr("rating_count + 1"),
			}).Error
	})
}

func (a *astrologerRepository) HasCompletedOrder(ctx context.Context, astrologerID, accountID uuid.UUID) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("astrologer_id = ? AND account_id = ? AND status = ?",
			astrologerID, accountID, db_models.OrderStatusCompleted).
		Count(&count).Error
	return count > 0, err
}

func (a *astrologerRepository) HasReviewBy(ctx context.Context, astrologerID, accountID uuid.UUID) (bool, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.AstrologerReview{}).
		Where("astrologer_id = ? AND account_id = ?", astrologerID, accountID).
		Count(&count).Error
	return count > 0, err
}
