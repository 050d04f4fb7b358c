package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-stockpilot/pkg/config"
)

const (
	maxConnectAttempts = 5
	initialRetryDelay  = 2 * time.Second
)

// Connect opens the Postgres connection with retry and exponential backoff.
// Repeated failure returns an error instead of exiting: the caller starts the
// server anyway and DB-gated routes answer 503 until connectivity returns.
func Connect(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
	}

	gormLogLevel := gormlogger.Warn
	if !cfg.IsProduction() {
		gormLogLevel = gormlogger.Info
	}

	var db *gorm.DB
	var err error
	delay := initialRetryDelay

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // pooled-proxy setups reject prepared statements
		}), &gorm.Config{
			Logger:      gormlogger.Default.LogMode(gormLogLevel),
			PrepareStmt: false,
		})
		if err == nil {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", maxConnectAttempts).
			Msg("database connection attempt failed")

		if attempt == maxConnectAttempts {
			return nil, fmt.Errorf("all %d database connection attempts failed: %w", maxConnectAttempts, err)
		}

		time.Sleep(delay)
		delay = delay * 3 / 2
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Msg("database connection established")
	return db, nil
}

// Ping runs a trivial query to verify connectivity.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
