package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"petcare-api/models"
)

func InitDB(cfg *AppConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Question{},
		&models.SimilarityRecord{},
		&models.ModerationQueueEntry{},
		&models.ModerationFeedback{},
	); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	return db
}
