package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tara_na/internal/models"
)

// ConnectDB opens the Postgres connection described by cfg and migrates
// the transit schema.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode, cfg.DBTimezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// gen_random_uuid for the uuid column defaults
	db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto;")

	err = db.AutoMigrate(&models.Route{}, &models.Stop{}, &models.Announcement{}, &models.Report{})
	if err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}

	return db, nil
}
