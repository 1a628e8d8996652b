package infra

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TxRunner runs a unit of work inside one database transaction.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewTxRunner(db *gorm.DB, logger *zap.Logger) TxRunner {
	return &gormTxRunner{db: db, logger: logger}
}

// Run commits when fn returns nil and rolls back on error or panic.
func (r *gormTxRunner) Run(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	tx, err := StartTransaction(r.db.WithContext(ctx))
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	err = fn(tx)
	return ReleaseTransaction(tx, err, r.logger)
}

func StartTransaction(db *gorm.DB) (*gorm.DB, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("starting transaction: %w", tx.Error)
	}
	return tx, nil
}

// ReleaseTransaction rolls back when err is set, commits otherwise, and returns
// the error the caller should surface.
func ReleaseTransaction(tx *gorm.DB, err error, logger *zap.Logger) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			logger.Error("Error rolling back transaction", zap.Error(rollbackErr), zap.NamedError("cause", err))
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		return fmt.Errorf("committing transaction: %w", commitErr)
	}
	return nil
}
