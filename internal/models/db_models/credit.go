package db_models

import "github.com/google/uuid"

// CreditBalance is the single mutable credit counter per account.
// Debits (orders) and grants (answers, top-ups, refunds) always run in
// the same transaction as the row they pay for.
type CreditBalance struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`
	Credits   int64

	Account Account `gorm:"foreignKey:AccountID"`
}

// CreditQuestion is a profile question that rewards credits when
// answered. Catalog data, not user-mutable.
type CreditQuestion struct {
	BaseModel
	Question      string
	RewardCredits int64
	IsActive      bool `gorm:"default:true;index"`
}

type CreditAnswer struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"index:idx_answer_once,unique"`
	QuestionID uuid.UUID `gorm:"index:idx_answer_once,unique"`
	Answer     string

	Account  Account        `gorm:"foreignKey:AccountID"`
	Question CreditQuestion `gorm:"foreignKey:QuestionID"`
}
