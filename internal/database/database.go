// Package database manages the GORM connection pool. The schema itself is
// assumed to pre-exist; cmd/migrate applies it out of band and the API
// server never creates tables.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Manager handles database connections.
type Manager struct {
	db *gorm.DB
}

// Connect opens a connection pool against the given DATABASE_URL. A failed
// connection is an error for the caller to decide on; the pool itself is
// sized for a small personal workload.
func Connect(databaseURL string) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  databaseURL,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// DB returns the underlying GORM database instance.
func (m *Manager) DB() *gorm.DB {
	return m.db
}
