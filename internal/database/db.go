package database

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"linkhub/internal/models"
)

// Open connects to the sqlite database at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Migrating database...")
	if err := db.AutoMigrate(&models.Resource{}, &models.Post{}); err != nil {
		return nil, err
	}

	return db, nil
}
