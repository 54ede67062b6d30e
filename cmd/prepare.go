package cmd

import (
	"fmt"

	"github.com/junaidrashid-git/orbit-aether/config"
	"github.com/junaidrashid-git/orbit-aether/database"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// prepareOrbit opens and migrates the back-office store and makes sure an
// administrator exists.
func prepareOrbit(cfg config.OrbitConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.OpenOrbit(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := database.MigrateOrbit(db); err != nil {
		return nil, err
	}

	created, err := database.SeedOrbitAdmin(db, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	if created {
		log.Info("seeded orbit administrator", zap.String("email", cfg.AdminEmail))
	}
	return db, nil
}

// prepareAether connects to the storefront store, migrates it and refreshes
// the catalog.
func prepareAether(cfg config.AetherConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.OpenAether(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.MigrateAether(db); err != nil {
		return nil, err
	}

	n, err := database.SeedCatalog(db)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	log.Info("catalog synchronised", zap.Int("products", n))
	return db, nil
}

func closeDB(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("failed to close database", zap.Error(err))
	}
}
