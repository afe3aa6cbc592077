package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "pending"
	TxnStatusPaid    TransactionStatus = "paid"
	TxnStatusFailed  TransactionStatus = "failed"
)

// CreditPack is a purchasable bundle of credits.
type CreditPack struct {
	BaseModel
	Code       string `gorm:"uniqueIndex"`
	Name       string
	Credits    int64
	PriceMinor int64
	Currency   string `gorm:"size:3"`
	IsActive   bool   `gorm:"default:true;index"`
}

// Transaction records one credit-pack purchase attempt. ProviderTxnID
// links the local row to the payment gateway order and carries the
// idempotency across webhook retries.
type Transaction struct {
	BaseModel
	AccountID   uuid.UUID         `gorm:"index"`
	PackID      uuid.UUID         `gorm:"index"`
	AmountMinor int64
	Currency    string            `gorm:"size:3"`
	Status      TransactionStatus `gorm:"index"`

	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"uniqueIndex"`

	PaidAt *int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account    `gorm:"foreignKey:AccountID"`
	Pack    CreditPack `gorm:"foreignKey:PackID"`
}
