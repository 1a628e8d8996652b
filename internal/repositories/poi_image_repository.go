package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderdex/internal/models/db_models"
)

type PoiImageRepository interface {
	WithTx(tx *gorm.DB) PoiImageRepository

	List(ctx context.Context) ([]db_models.PoiImage, error)
	ListByPoi(ctx context.Context, poiID uuid.UUID) ([]db_models.PoiImage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.PoiImage, error)
	CreateBatch(ctx context.Context, images []*db_models.PoiImage) error
	Update(ctx context.Context, image *db_models.PoiImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type poiImageRepository struct {
	db *gorm.DB
}

func NewPoiImageRepository(db *gorm.DB) PoiImageRepository {
	return &poiImageRepository{db: db}
}

func (r *poiImageRepository) WithTx(tx *gorm.DB) PoiImageRepository {
	return &poiImageRepository{db: tx}
}

func (r *poiImageRepository) List(ctx context.Context) ([]db_models.PoiImage, error) {
	var images []db_models.PoiImage
	if err := r.db.WithContext(ctx).Order("poi_id, created_at, url").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *poiImageRepository) ListByPoi(ctx context.Context, poiID uuid.UUID) ([]db_models.PoiImage, error) {
	var images []db_models.PoiImage
	err := r.db.WithContext(ctx).
		Where("poi_id = ?", poiID).
		Order("created_at, url").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *poiImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.PoiImage, error) {
	var image db_models.PoiImage
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *poiImageRepository) CreateBatch(ctx context.Context, images []*db_models.PoiImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(images).Error
}

func (r *poiImageRepository) Update(ctx context.Context, image *db_models.PoiImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *poiImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.PoiImage{}, "id = ?", id).Error
}
