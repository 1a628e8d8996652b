package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderdex/internal/models/db_models"
)

type CityFilter struct {
	Name        string
	Season      string
	CountryName string
	CountryID   *uuid.UUID
}

type CityRepository interface {
	WithTx(tx *gorm.DB) CityRepository

	List(ctx context.Context, filter CityFilter) ([]db_models.City, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.City, error)
	CreateBatch(ctx context.Context, cities []*db_models.City) error
	Update(ctx context.Context, city *db_models.City) error
	DeleteCascade(ctx context.Context, city *db_models.City) error
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) WithTx(tx *gorm.DB) CityRepository {
	return &cityRepository{db: tx}
}

func (r *cityRepository) withPois(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("POIs", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "city_id").Order("name")
	})
}

func (r *cityRepository) List(ctx context.Context, filter CityFilter) ([]db_models.City, error) {
	q := r.withPois(ctx).Model(&db_models.City{}).Select("cities.*")

	if filter.Season != "" {
		q = q.Where("cities.season = ?", filter.Season)
	}
	if filter.CountryName != "" {
		q = q.Joins("JOIN countries ON countries.id = cities.country_id").
			Where("countries.name = ?", filter.CountryName)
	}
	if filter.CountryID != nil {
		q = q.Where("cities.country_id = ?", *filter.CountryID)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(cities.name) LIKE LOWER(?)", likePattern(filter.Name))
	}

	var cities []db_models.City
	if err := q.Order("cities.name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	var city db_models.City
	err := r.withPois(ctx).Where("id = ?", id).Take(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) CreateBatch(ctx context.Context, cities []*db_models.City) error {
	return r.db.WithContext(ctx).Omit("POIs").Create(cities).Error
}

func (r *cityRepository) Update(ctx context.Context, city *db_models.City) error {
	return r.db.WithContext(ctx).Omit("POIs").Save(city).Error
}

func (r *cityRepository) DeleteCascade(ctx context.Context, city *db_models.City) error {
	return purgeCities(r.db.WithContext(ctx), []uuid.UUID{city.ID})
}
