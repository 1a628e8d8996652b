// Package infratest provides throwaway databases for tests.
package infratest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"wanderdex/internal/infra"
)

// NewDB returns a migrated in-memory sqlite database bound to a single
// connection, closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, infra.Migrate(db))

	t.Cleanup(func() { infra.CloseDatabase(db, zaptest.NewLogger(t)) })
	return db
}

// NewTxRunner returns a transaction runner over db that logs to the test.
func NewTxRunner(t testing.TB, db *gorm.DB) infra.TxRunner {
	return infra.NewTxRunner(db, zaptest.NewLogger(t))
}
