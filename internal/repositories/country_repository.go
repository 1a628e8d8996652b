package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"wanderdex/internal/models/db_models"
)

type CountryFilter struct {
	Name string
}

type CountryRepository interface {
	WithTx(tx *gorm.DB) CountryRepository

	List(ctx context.Context, filter CountryFilter) ([]db_models.Country, error)
	GetByName(ctx context.Context, name string) (*db_models.Country, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Country, error)
	CreateBatch(ctx context.Context, countries []*db_models.Country) error
	Update(ctx context.Context, country *db_models.Country) error
	DeleteCascade(ctx context.Context, country *db_models.Country) error
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) WithTx(tx *gorm.DB) CountryRepository {
	return &countryRepository{db: tx}
}

func (r *countryRepository) withCities(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Cities", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "country_id").Order("name")
	})
}

func (r *countryRepository) List(ctx context.Context, filter CountryFilter) ([]db_models.Country, error) {
	q := r.withCities(ctx)
	if filter.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", likePattern(filter.Name))
	}

	var countries []db_models.Country
	if err := q.Order("name").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// Read helpers return nil, nil when no row matches.

func (r *countryRepository) GetByName(ctx context.Context, name string) (*db_models.Country, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *countryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Country, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *countryRepository) first(ctx context.Context, query string, arg interface{}) (*db_models.Country, error) {
	var country db_models.Country
	err := r.withCities(ctx).Where(query, arg).Take(&country).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) CreateBatch(ctx context.Context, countries []*db_models.Country) error {
	return r.db.WithContext(ctx).Omit("Cities").Create(countries).Error
}

func (r *countryRepository) Update(ctx context.Context, country *db_models.Country) error {
	return r.db.WithContext(ctx).Omit("Cities").Save(country).Error
}

func (r *countryRepository) DeleteCascade(ctx context.Context, country *db_models.Country) error {
	tx := r.db.WithContext(ctx)

	var cityIDs []uuid.UUID
	if err := tx.Model(&db_models.City{}).Where("country_id = ?", country.ID).Pluck("id", &cityIDs).Error; err != nil {
		return err
	}
	if err := purgeCities(tx, cityIDs); err != nil {
		return err
	}
	return tx.Delete(&db_models.Country{}, "id = ?", country.ID).Error
}
