// Package db opens the application database connection.
package db

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "recruit_backend/internal/feature/auth/domain/entity"
	enquiryentity "recruit_backend/internal/feature/enquiries/domain/entity"
	jobentity "recruit_backend/internal/feature/jobs/domain/entity"
)

// EnvKeyDatabaseURL is the environment variable holding the postgres DSN.
const EnvKeyDatabaseURL = "DATABASE_URL"

// OpenDB opens the postgres connection described by DATABASE_URL.
//
// The initial ping is advisory: an unreachable database is logged and the
// handle is returned anyway, so the process can come up degraded and report
// it through the health endpoint instead of crash-looping. A malformed DSN
// is a configuration error and still fatal.
func OpenDB() *gorm.DB {
	dsn := os.Getenv(EnvKeyDatabaseURL)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableAutomaticPing: true,
		TranslateError:       true,
	})
	if err != nil {
		log.Fatalf("invalid database configuration: %v", err)
	}

	if err := Ping(db, 5*time.Second); err != nil {
		slog.Warn("database unreachable at startup, continuing degraded", "error", err)
	} else if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&jobentity.Job{},
			&enquiryentity.Enquiry{},
		); err != nil {
			slog.Error("migration failed", "error", err)
		}
	}

	return db
}

// Ping checks connectivity within the given timeout.
func Ping(db *gorm.DB, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
