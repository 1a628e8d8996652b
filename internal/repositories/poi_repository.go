package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wanderdex/internal/models/db_models"
)

const PopularPoiLimit = 8

// PoiFilter fields are combined with AND; zero values are ignored.
type PoiFilter struct {
	Name        string
	TagName     string
	CountryName string
	CityName    string
	Season      string
}

type POIRepository interface {
	WithTx(tx *gorm.DB) POIRepository

	List(ctx context.Context, filter PoiFilter) ([]db_models.POI, error)
	Popular(ctx context.Context) ([]db_models.POI, error)
	GetByIDWithDetails(ctx context.Context, id uuid.UUID) (*db_models.POI, error)
	CreateBatch(ctx context.Context, pois []*db_models.POI) error
	UpdatePoi(ctx context.Context, poi *db_models.POI) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	FindTagLink(ctx context.Context, poiID, tagID uuid.UUID) (*db_models.PoiTag, error)
	LinkTags(ctx context.Context, links []db_models.PoiTag) error
	UnlinkTag(ctx context.Context, poiID, tagID uuid.UUID) error
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) WithTx(tx *gorm.DB) POIRepository {
	return &poiRepository{db: tx}
}

func (r *poiRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at, url")
		}).
		Preload("PoiTags.Tag")
}

func (r *poiRepository) List(ctx context.Context, filter PoiFilter) ([]db_models.POI, error) {
	q := r.withDetails(ctx).Model(&db_models.POI{}).Select("pois.*")

	if filter.CountryName != "" || filter.CityName != "" || filter.Season != "" {
		q = q.Joins("JOIN cities ON cities.id = pois.city_id")
	}
	if filter.CountryName != "" {
		q = q.Joins("JOIN countries ON countries.id = cities.country_id").
			Where("countries.name = ?", filter.CountryName)
	}
	if filter.CityName != "" {
		q = q.Where("cities.name = ?", filter.CityName)
	}
	if filter.Season != "" {
		q = q.Where("cities.season = ?", filter.Season)
	}
	if filter.TagName != "" {
		q = q.Joins("JOIN poi_tags ON poi_tags.poi_id = pois.id").
			Joins("JOIN tags ON tags.id = poi_tags.tag_id").
			Where("tags.name = ?", filter.TagName)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(pois.name) LIKE LOWER(?)", likePattern(filter.Name))
	}

	var pois []db_models.POI
	if err := q.Order("pois.name").Find(&pois).Error; err != nil {
		return nil, err
	}
	return pois, nil
}

// Popular samples up to PopularPoiLimit POIs in random order.
func (r *poiRepository) Popular(ctx context.Context) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.withDetails(ctx).
		Order("RANDOM()").
		Limit(PopularPoiLimit).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) GetByIDWithDetails(ctx context.Context, id uuid.UUID) (*db_models.POI, error) {
	var poi db_models.POI
	err := r.withDetails(ctx).Where("id = ?", id).Take(&poi).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poi, nil
}

func (r *poiRepository) CreateBatch(ctx context.Context, pois []*db_models.POI) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pois).Error
}

func (r *poiRepository) UpdatePoi(ctx context.Context, poi *db_models.POI) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(poi).Error
}

func (r *poiRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return purgePois(r.db.WithContext(ctx), []uuid.UUID{id})
}

func (r *poiRepository) FindTagLink(ctx context.Context, poiID, tagID uuid.UUID) (*db_models.PoiTag, error) {
	var link db_models.PoiTag
	err := r.db.WithContext(ctx).
		Where("poi_id = ? AND tag_id = ?", poiID, tagID).
		Take(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *poiRepository) LinkTags(ctx context.Context, links []db_models.PoiTag) error {
	if len(links) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Tag").Create(&links).Error
}

func (r *poiRepository) UnlinkTag(ctx context.Context, poiID, tagID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("poi_id = ? AND tag_id = ?", poiID, tagID).
		Delete(&db_models.PoiTag{}).Error
}
