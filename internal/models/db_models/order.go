package db_models

import "github.com/google/uuid"

type HoroscopeType string

const (
	HoroscopeDaily    HoroscopeType = "daily"
	HoroscopeWeekly   HoroscopeType = "weekly"
	HoroscopeMonthly  HoroscopeType = "monthly"
	HoroscopeYearly   HoroscopeType = "yearly"
	HoroscopeLifetime HoroscopeType = "lifetime"
)

func (t HoroscopeType) Valid() bool {
	switch t {
	case HoroscopeDaily, HoroscopeWeekly, HoroscopeMonthly, HoroscopeYearly, HoroscopeLifetime:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order tracks one horoscope request through
// pending -> processing -> completed, with cancelled reachable from
// pending only. Rows are never deleted.
type Order struct {
	BaseModel
	AccountID    uuid.UUID     `gorm:"index"`
	AstrologerID uuid.UUID     `gorm:"index"`
	Category     HoroscopeType `gorm:"index"`
	Status       OrderStatus   `gorm:"index"`

	// Credit cost captured at order time; the balance debit happens in
	// the same transaction as the insert.
	Cost int64

	Note string

	CompletedAt *int64
	HoroscopeID *uuid.UUID `gorm:"index"`

	Account    Account    `gorm:"foreignKey:AccountID"`
	Astrologer Astrologer `gorm:"foreignKey:AstrologerID"`
	Horoscope  *Horoscope `gorm:"foreignKey:HoroscopeID"`
}
