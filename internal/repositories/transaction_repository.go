package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"astroportal/internal/models/db_models"
)

type TransactionRepository interface {
	ListActivePacks(ctx context.Context) ([]db_models.CreditPack, error)
	FindPackByCode(ctx context.Context, code string) (*db_models.CreditPack, error)
	Insert(ctx context.Context, txn *db_models.Transaction) error
	UpdateStatus(ctx context.Context, txn *db_models.Transaction, status db_models.TransactionStatus) error
	UpdateMetadata(ctx context.Context, txn *db_models.Transaction, metadata []byte) error
	FindByProviderTxnId(ctx context.Context, providerTxnID string) (*db_models.Transaction, error)

	// MarkPaidWithCredits settles the transaction and grants the pack's
	// credits atomically. The conditional status filter keeps webhook
	// retries idempotent.
	MarkPaidWithCredits(ctx context.Context, txn *db_models.Transaction, credits int64) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (t *transactionRepository) ListActivePacks(ctx context.Context) ([]db_models.CreditPack, error) {
	var packs []db_models.CreditPack
	err := t.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price_minor ASC").
		Find(&packs).Error
	return packs, err
}

func (t *transactionRepository) FindPackByCode(ctx context.Context, code string) (*db_models.CreditPack, error) {
	var pack db_models.CreditPack
	err := t.db.WithContext(ctx).
		First(&pack, "code = ? AND is_active = TRUE", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pack, nil
}

func (t *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *transactionRepository) UpdateStatus(ctx context.Context, txn *db_models.Transaction, status db_models.TransactionStatus) error {
	return t.db.WithContext(ctx).Model(txn).Update("status", status).Error
}

func (t *transactionRepository) UpdateMetadata(ctx context.Context, txn *db_models.Transaction, metadata []byte) error {
	return t.db.WithContext(ctx).Model(txn).Update("metadata", metadata).Error
}

func (t *transactionRepository) FindByProviderTxnId(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).
		Preload("Pack").
		First(&txn, "provider_txn_id = ?", providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (t *transactionRepository) MarkPaidWithCredits(ctx context.Context, txn *db_models.Transaction, credits int64) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Transaction{}).
			Where("id = ? AND status = ?", txn.ID, db_models.TxnStatusPending).
			Updates(map[string]interface{}{
				"status":  db_models.TxnStatusPaid,
				"paid_at": time.Now().Unix(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// already settled by an earlier webhook delivery
			return nil
		}
		return tx.Model(&db_models.CreditBalance{}).
			Where("account_id = ?", txn.AccountID).
			Update("credits", gorm.Expr("credits + ?", credits)).Error
	})
}
