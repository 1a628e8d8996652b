package infra_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"wanderdex/internal/infra/infratest"
	"wanderdex/internal/models/db_models"
)

func TestTxRunnerCommits(t *testing.T) {
	db := infratest.NewDB(t)
	runner := infratest.NewTxRunner(t, db)

	err := runner.Run(context.Background(), func(tx *gorm.DB) error {
		return tx.Create(&db_models.Tag{Name: "hiking"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&db_models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTxRunnerRollsBackOnError(t *testing.T) {
	db := infratest.NewDB(t)
	runner := infratest.NewTxRunner(t, db)
	boom := errors.New("boom")

	err := runner.Run(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Create(&db_models.Tag{Name: "hiking"}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&db_models.Tag{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTxRunnerRollsBackOnPanic(t *testing.T) {
	db := infratest.NewDB(t)
	runner := infratest.NewTxRunner(t, db)

	assert.Panics(t, func() {
		_ = runner.Run(context.Background(), func(tx *gorm.DB) error {
			tx.Create(&db_models.Tag{Name: "hiking"})
			panic("boom")
		})
	})

	var count int64
	require.NoError(t, db.Model(&db_models.Tag{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUniqueConstraintTranslated(t *testing.T) {
	db := infratest.NewDB(t)
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&db_models.User{Name: "A", UserName: "a", Email: "a@x.io", Password: "h", BirthDate: birth, Role: "user"}).Error)
	err := db.Create(&db_models.User{Name: "B", UserName: "a", Email: "b@x.io", Password: "h", BirthDate: birth, Role: "user"}).Error

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
