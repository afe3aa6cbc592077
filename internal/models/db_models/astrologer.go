package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Astrologer struct {
	BaseModel
	DisplayName     string
	Bio             string
	ExperienceYears int
	Specialties     pq.StringArray `gorm:"type:text[]"`

	RatingSum   int64
	RatingCount int64

	IsActive bool `gorm:"default:true;index"`

	Prices       []AstrologerPrice        `gorm:"foreignKey:AstrologerID"`
	Availability []AstrologerAvailability `gorm:"foreignKey:AstrologerID"`
	Reviews      []AstrologerReview       `gorm:"foreignKey:AstrologerID"`
}

// AverageRating is the aggregate shown in the catalog; zero when unrated.
func (a *Astrologer) AverageRating() float64 {
	if a.RatingCount == 0 {
		return 0
	}
	return float64(a.RatingSum) / float64(a.RatingCount)
}

// AstrologerPrice is the credit cost of one horoscope category for one
// astrologer. One row per (astrologer, category).
type AstrologerPrice struct {
	BaseModel
	AstrologerID uuid.UUID     `gorm:"index:idx_astrologer_category,unique"`
	Category     HoroscopeType `gorm:"index:idx_astrologer_category,unique"`
	Credits      int64
}

type AstrologerAvailability struct {
	BaseModel
	AstrologerID uuid.UUID `gorm:"index"`
	// 0 = Sunday .. 6 = Saturday, times as "15:04"
	Weekday   int
	StartTime string
	EndTime   string
}

type AstrologerReview struct {
	BaseModel
	AstrologerID uuid.UUID `gorm:"index:idx_review_author,unique"`
	AccountID    uuid.UUID `gorm:"index:idx_review_author,unique"`
	Rating       int
	Comment      string

	Astrologer Astrologer `gorm:"foreignKey:AstrologerID"`
	Account    Account    `gorm:"foreignKey:AccountID"`
}
