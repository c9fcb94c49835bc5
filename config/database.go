package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// getDBConfigByEnv reads <ENV>_DB_* variables, falling back to DB_*
func getDBConfigByEnv(env string) (string, error) {
	prefix := strings.ToUpper(env) + "_"
	get := func(key, fallback string) string {
		if v := os.Getenv(prefix + key); v != "" {
			return v
		}
		return GetEnv(key, fallback)
	}

	host := get("DB_HOST", "")
	if host == "" {
		return "", fmt.Errorf("no database configured for environment %q: set %sDB_HOST or DB_HOST", env, prefix)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, get("DB_USER", "postgres"), get("DB_PASSWORD", ""), get("DB_NAME", "hotels"),
		get("DB_PORT", "5432"), get("DB_SSLMODE", "require")), nil
}

// ConnectDB opens Postgres and migrates the booking tables
func ConnectDB(dsn string, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	if err := store.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}
	log.Info("connected to postgres")
	return db, nil
}
