// Package db opens the PostgreSQL connection and applies pending migrations
// before handing a GORM handle to the rest of the application.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewGormDB opens the database, runs goose migrations from migrationsDir and
// wraps the connection in GORM. The GORM handle reuses the migrated
// connection pool rather than opening a second one.
func NewGormDB(dsn, migrationsDir string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db error: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db error: %w", err)
	}

	if err := goose.Up(sqlDB, migrationsDir); err != nil {
		return nil, fmt.Errorf("goose up error: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm open error: %w", err)
	}

	return gormDB, nil
}
