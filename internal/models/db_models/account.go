package db_models

type Account struct {
	BaseModel
	DisplayName  string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string

	Profile       *Profile       `gorm:"foreignKey:AccountID"`
	CreditBalance *CreditBalance `gorm:"foreignKey:AccountID"`
	Orders        []Order        `gorm:"foreignKey:AccountID"`
}
