package db_models

import "github.com/google/uuid"

type RelationshipStatus string

const (
	RelationshipSingle   RelationshipStatus = "single"
	RelationshipTaken    RelationshipStatus = "in_relationship"
	RelationshipMarried  RelationshipStatus = "married"
	RelationshipDivorced RelationshipStatus = "divorced"
	RelationshipWidowed  RelationshipStatus = "widowed"
)

type Profile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`

	FirstName string
	LastName  string

	// Birth data drives the zodiac sign; date is "2006-01-02",
	// time is "15:04" and optional.
	BirthDate  string
	BirthTime  string
	BirthPlace string

	CurrentLocation    string
	RelationshipStatus RelationshipStatus

	// Recomputed from BirthDate on every save; empty until a birth date
	// is known.
	ZodiacSign string `gorm:"index"`

	Account Account `gorm:"foreignKey:AccountID"`
}
