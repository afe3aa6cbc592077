package db_models

import "github.com/google/uuid"

// Horoscope is the generated artifact, created exactly once per
// completed order and immutable afterwards.
type Horoscope struct {
	BaseModel
	OrderID      uuid.UUID     `gorm:"uniqueIndex"`
	AccountID    uuid.UUID     `gorm:"index"`
	AstrologerID uuid.UUID     `gorm:"index"`
	Category     HoroscopeType `gorm:"index"`

	Title string
	// HTML-formatted body returned by the generation provider.
	Body string

	// Validity window, unix seconds. ValidTo is nil for the lifetime
	// category (open-ended).
	ValidFrom int64
	ValidTo   *int64

	Account    Account    `gorm:"foreignKey:AccountID"`
	Astrologer Astrologer `gorm:"foreignKey:AstrologerID"`
}
