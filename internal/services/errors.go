package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"wanderdex/pkg/utils"
)

// storageError passes AppErrors through and classifies everything else:
// constraint violations become a Conflict, the rest an Unexpected naming
// the operation. Causes are logged, never returned to the client.
func storageError(logger *zap.Logger, err error, operation string) error {
	if err == nil {
		return nil
	}
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		logger.Warn("Integrity error", zap.String("operation", operation), zap.Error(err))
		return utils.Conflict("Database integrity error")
	}
	logger.Error("Unexpected storage error", zap.String("operation", operation), zap.Error(err))
	return utils.Unexpected(operation)
}
