package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skevingreen/ims-server/internal/config"
	"github.com/skevingreen/ims-server/internal/models"
)

// Connect opens the Postgres connection pool. TranslateError is enabled so
// unique-index violations surface as gorm.ErrDuplicatedKey instead of raw
// driver errors.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}

	return db, nil
}

// Migrate creates the entity tables plus the counters table backing the id
// sequence.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Supplier{},
		&models.InventoryItem{},
		&models.Counter{},
	)
}
