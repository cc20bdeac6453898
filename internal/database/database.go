package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aleksej-tulko/drf-foodgram/pkg/logger"
)

// NewPostgres connects to PostgreSQL with retry logic: the database
// container may still be starting when the backend comes up.
func NewPostgres(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 1; i <= 15; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					logger.Log.Info().Int("attempt", i).Msg("database connected")
					return db, nil
				}
			}
		}

		logger.Log.Warn().Int("attempt", i).Err(err).Msg("database connection failed")

		wait := time.Duration(1<<uint(i-1)) * time.Second
		if wait > 10*time.Second {
			wait = 10 * time.Second
		}
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("failed to connect to database after 15 attempts: %w", err)
}

// NewSQLite opens a file-backed (or :memory:) sqlite database. Used
// when USE_SQLITE is set and in tests.
func NewSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	return db, nil
}

// AutoMigrateTables creates or updates the schema for the given models.
func AutoMigrateTables(db *gorm.DB, models ...interface{}) error {
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model: %w", err)
		}
	}
	logger.Log.Info().Msg("database migrations completed")
	return nil
}
