package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"astroportal/internal/models/db_models"
	"astroportal/pkg/utils"
)

type OrderRepository interface {
	// CreateWithDebit inserts the pending order and debits the caller's
	// balance atomically. Returns ErrInsufficientCredits without writing
	// anything when the balance does not cover the cost.
	CreateWithDebit(ctx context.Context, order *db_models.Order) error

	FindById(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Order, error)

	// MarkProcessing performs the conditional pending -> processing
	// update. false means another caller won the race or the order was
	// not pending.
	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)

	// CancelWithRefund performs the conditional pending -> cancelled
	// update and refunds the held cost. false when the order was not
	// pending.
	CancelWithRefund(ctx context.Context, id, accountID uuid.UUID) (bool, error)

	// CompleteWithHoroscope inserts the horoscope and closes the order
	// (completed, completed_at, horoscope_id) in one transaction.
	CompleteWithHoroscope(ctx context.Context, orderID uuid.UUID, horoscope *db_models.Horoscope) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (o *orderRepository) CreateWithDebit(ctx context.Context, order *db_models.Order) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.CreditBalance{}).
			Where("account_id = ? AND credits >= ?", order.AccountID, order.Cost).
			Update("credits", gorm.Expr("credits - ?", order.Cost))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInsufficientCredits
		}
		return tx.Create(order).Error
	})
}

func (o *orderRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := o.db.WithContext(ctx).
		Preload("Astrologer").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (o *orderRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := o.db.WithContext(ctx).
		Preload("Astrologer").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	return orders, err
}

func (o *orderRepository) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	res := o.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ? AND status = ?", id, db_models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":     db_models.OrderStatusProcessing,
			"updated_at": time.Now().Unix(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (o *orderRepository) CancelWithRefund(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	var cancelled bool
	err := o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order db_models.Order
		if err := tx.First(&order, "id = ? AND account_id = ?", id, accountID).Error; err != nil {
			return err
		}

		res := tx.Model(&db_models.Order{}).
			Where("id = ? AND status = ?", id, db_models.OrderStatusPending).
			Updates(map[string]interface{}{
				"status":     db_models.OrderStatusCancelled,
				"updated_at": time.Now().Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		cancelled = true

		return tx.Model(&db_models.CreditBalance{}).
			Where("account_id = ?", accountID).
			Update("credits", gorm.Expr("credits + ?", order.Cost)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, utils.ErrOrderNotFound
		}
		return false, err
	}
	return cancelled, nil
}

func (o *orderRepository) CompleteWithHoroscope(ctx context.Context, orderID uuid.UUID, horoscope *db_models.Horoscope) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(horoscope).Error; err != nil {
			return err
		}
		now := time.Now().Unix()
		return tx.Model(&db_models.Order{}).
			Where("id = ? AND status = ?", orderID, db_models.OrderStatusProcessing).
			Updates(map[string]interface{}{
				"status":       db_models.OrderStatusCompleted,
				"completed_at": now,
				"updated_at":   now,
				"horoscope_id": horoscope.ID,
			}).Error
	})
}
