package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderdex/internal/models/db_models"
)

type TagRepositoryInterface interface {
	WithTx(tx *gorm.DB) TagRepositoryInterface

	GetAllTags(ctx context.Context) ([]db_models.Tag, error)
	GetTagByName(ctx context.Context, name string) (*db_models.Tag, error)
	ListByPoi(ctx context.Context, poiID uuid.UUID) ([]db_models.Tag, error)
	CreateTags(ctx context.Context, tags []*db_models.Tag) error
	UpdateTag(ctx context.Context, tag *db_models.Tag) error
	DeleteCascade(ctx context.Context, tag *db_models.Tag) error
}

func NewTagRepository(db *gorm.DB) TagRepositoryInterface {
	return &TagRepository{db: db}
}

type TagRepository struct {
	db *gorm.DB
}

func (t *TagRepository) WithTx(tx *gorm.DB) TagRepositoryInterface {
	return &TagRepository{db: tx}
}

func (t *TagRepository) GetAllTags(ctx context.Context) ([]db_models.Tag, error) {
	var tags []db_models.Tag
	if err := t.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (t *TagRepository) GetTagByName(ctx context.Context, name string) (*db_models.Tag, error) {
	var tag db_models.Tag
	err := t.db.WithContext(ctx).Where("name = ?", name).Take(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (t *TagRepository) ListByPoi(ctx context.Context, poiID uuid.UUID) ([]db_models.Tag, error) {
	var tags []db_models.Tag
	err := t.db.WithContext(ctx).
		Joins("JOIN poi_tags ON poi_tags.tag_id = tags.id").
		Where("poi_tags.poi_id = ?", poiID).
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (t *TagRepository) CreateTags(ctx context.Context, tags []*db_models.Tag) error {
	return t.db.WithContext(ctx).Omit("PoiTags").Create(tags).Error
}

func (t *TagRepository) UpdateTag(ctx context.Context, tag *db_models.Tag) error {
	return t.db.WithContext(ctx).Omit("PoiTags").Save(tag).Error
}

func (t *TagRepository) DeleteCascade(ctx context.Context, tag *db_models.Tag) error {
	tx := t.db.WithContext(ctx)
	if err := tx.Where("tag_id = ?", tag.ID).Delete(&db_models.PoiTag{}).Error; err != nil {
		return err
	}
	return tx.Delete(&db_models.Tag{}, "id = ?", tag.ID).Error
}
