// Package testutil opens a real Postgres for integration tests. Tests using
// it are skipped unless TEST_DATABASE_URL is set.
package testutil

import (
	"context"
	"os"
	"testing"

	"go-warehouse-ws/internal/schema"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenPostgres connects to TEST_DATABASE_URL or skips the test.
func OpenPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping Postgres integration test")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Bootstrapped returns a connection with the schema initialized and every
// entity table emptied.
func Bootstrapped(t *testing.T) *gorm.DB {
	t.Helper()

	db := OpenPostgres(t)
	require.NoError(t, schema.Initialize(context.Background(), db))
	require.NoError(t, db.Exec(
		`TRUNCATE product, sold_product, users, buyer, category, tower, equipment RESTART IDENTITY`,
	).Error)
	return db
}
