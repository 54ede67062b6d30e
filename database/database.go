package database

import (
	"fmt"
	"strings"

	"github.com/junaidrashid-git/orbit-aether/config"
	"github.com/junaidrashid-git/orbit-aether/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
}

// OpenOrbit opens the embedded back-office store at path, creating the file
// when it does not exist. ":memory:" gives a private in-memory database.
func OpenOrbit(path string) (*gorm.DB, error) {
	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open orbit database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps an in-memory
	// database alive across requests.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// OpenAether connects to the storefront's postgres database.
func OpenAether(cfg config.AetherConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect aether database: %w", err)
	}
	return db, nil
}

// MigrateOrbit creates or updates every back-office table.
func MigrateOrbit(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Supplier{},
		&models.Order{},
		&models.Product{},
		&models.Task{},
		&models.TaskTag{},
	); err != nil {
		return fmt.Errorf("orbit migration failed: %w", err)
	}
	return nil
}

// MigrateAether creates or updates every storefront table.
func MigrateAether(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.StoreProduct{},
		&models.StoreOrder{},
		&models.StoreOrderItem{},
		&models.NewsletterSubscriber{},
	); err != nil {
		return fmt.Errorf("aether migration failed: %w", err)
	}
	return nil
}
