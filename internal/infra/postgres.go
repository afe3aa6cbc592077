package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"astroportal/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.Astrologer{},
		&db_models.AstrologerPrice{},
		&db_models.AstrologerAvailability{},
		&db_models.AstrologerReview{},
		&db_models.CreditBalance{},
		&db_models.CreditQuestion{},
		&db_models.CreditAnswer{},
		&db_models.Order{},
		&db_models.Horoscope{},
		&db_models.CreditPack{},
		&db_models.Transaction{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
