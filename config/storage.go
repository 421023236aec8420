package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-admin-backend/models"
)

var DB *gorm.DB

// ConnectStorage opens the durable key-value store file and migrates the
// single store_entries table.
func ConnectStorage() error {
	path := os.Getenv("DATA_PATH")
	if path == "" {
		path = "data/hotel.db"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		return fmt.Errorf("migrate storage: %w", err)
	}

	DB = db
	log.Printf("✅ Durable store ready at %s", path)
	return nil
}
