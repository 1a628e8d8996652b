package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderdex/internal/models/db_models"
)

// UserPoiKind is satisfied by the two per-user POI lists.
type UserPoiKind interface {
	db_models.Favorite | db_models.Visited
	TableName() string
}

// UserPoiEntry is one row of a user's list joined with the POI name.
type UserPoiEntry struct {
	PoiID   uuid.UUID
	PoiName string
}

type UserPoiRepository[T UserPoiKind] interface {
	WithTx(tx *gorm.DB) UserPoiRepository[T]

	List(ctx context.Context, userID uuid.UUID) ([]UserPoiEntry, error)
	Exists(ctx context.Context, userID, poiID uuid.UUID) (bool, error)
	Add(ctx context.Context, userID, poiID uuid.UUID) error
	Remove(ctx context.Context, userID, poiID uuid.UUID) error
}

type userPoiRepository[T UserPoiKind] struct {
	db *gorm.DB
}

func NewUserPoiRepository[T UserPoiKind](db *gorm.DB) UserPoiRepository[T] {
	return &userPoiRepository[T]{db: db}
}

func (r *userPoiRepository[T]) WithTx(tx *gorm.DB) UserPoiRepository[T] {
	return &userPoiRepository[T]{db: tx}
}

func (r *userPoiRepository[T]) table() string {
	var zero T
	return zero.TableName()
}

func (r *userPoiRepository[T]) List(ctx context.Context, userID uuid.UUID) ([]UserPoiEntry, error) {
	table := r.table()
	var entries []UserPoiEntry
	err := r.db.WithContext(ctx).
		Table(table).
		Select("pois.id AS poi_id, pois.name AS poi_name").
		Joins("JOIN pois ON pois.id = "+table+".poi_id").
		Where(table+".user_id = ?", userID).
		Order(table + ".created_at, pois.name").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *userPoiRepository[T]) Exists(ctx context.Context, userID, poiID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("user_id = ? AND poi_id = ?", userID, poiID).
		Count(&count).Error
	return count > 0, err
}

func (r *userPoiRepository[T]) Add(ctx context.Context, userID, poiID uuid.UUID) error {
	row := T(db_models.UserPoi{UserID: userID, PoiID: poiID})
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *userPoiRepository[T]) Remove(ctx context.Context, userID, poiID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND poi_id = ?", userID, poiID).
		Delete(new(T)).Error
}
