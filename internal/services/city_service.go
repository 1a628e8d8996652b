package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"wanderdex/internal/infra"
	"wanderdex/internal/models/db_models"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/models/response_models"
	"wanderdex/internal/repositories"
	"wanderdex/internal/validation"
	"wanderdex/pkg/utils"
)

type CityServiceInterface interface {
	ListCities(ctx context.Context, filter repositories.CityFilter) ([]response_models.City, error)
	GetCity(ctx context.Context, id uuid.UUID) (*response_models.City, error)
	CreateCities(ctx context.Context, requests []request_models.CreateCityRequest) ([]response_models.City, error)
	UpdateCity(ctx context.Context, id uuid.UUID, request request_models.UpdateCityRequest) (*response_models.City, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error
}

type CityService struct {
	tx       infra.TxRunner
	cityRepo repositories.CityRepository
	logger   *zap.Logger
}

func NewCityService(tx infra.TxRunner, cityRepo repositories.CityRepository, logger *zap.Logger) CityServiceInterface {
	return &CityService{tx: tx, cityRepo: cityRepo, logger: logger}
}

func (s *CityService) ListCities(ctx context.Context, filter repositories.CityFilter) ([]response_models.City, error) {
	cities, err := s.cityRepo.List(ctx, filter)
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving cities")
	}
	return response_models.NewCities(cities), nil
}

func (s *CityService) GetCity(ctx context.Context, id uuid.UUID) (*response_models.City, error) {
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving city")
	}
	if city == nil {
		return nil, utils.NotFound("City not found")
	}
	resp := response_models.NewCity(*city)
	return &resp, nil
}

func (s *CityService) CreateCities(ctx context.Context, requests []request_models.CreateCityRequest) ([]response_models.City, error) {
	var created []*db_models.City
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		seen := validation.KeySet{}
		for _, req := range requests {
			if err := seen.Claim(req.Name + ":" + req.CountryName); err != nil {
				return err
			}
			country, err := validation.LookupOrFail[db_models.Country](ctx, tx, "name", req.CountryName, "Country not found")
			if err != nil {
				return err
			}
			existing, err := validation.FindMatch[db_models.City](ctx, tx,
				validation.Eq("name", req.Name), validation.Eq("country_id", country.ID))
			if err != nil {
				return err
			}
			if existing != nil {
				return utils.BadRequest("City '%s' already exists in this country", req.Name)
			}
			created = append(created, &db_models.City{Name: req.Name, Season: req.Season, CountryID: country.ID})
		}
		return s.cityRepo.WithTx(tx).CreateBatch(ctx, created)
	})
	if err != nil {
		return nil, storageError(s.logger, err, "creating cities")
	}

	out := make([]response_models.City, 0, len(created))
	for _, c := range created {
		out = append(out, response_models.NewCity(*c))
	}
	return out, nil
}

// UpdateCity re-checks (name, country) uniqueness against the prospective
// values before applying any change.
func (s *CityService) UpdateCity(ctx context.Context, id uuid.UUID, request request_models.UpdateCityRequest) (*response_models.City, error) {
	var updated *db_models.City
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		cities := s.cityRepo.WithTx(tx)
		city, err := validation.LookupOrFail[db_models.City](ctx, tx, "id", id, "City not found")
		if err != nil {
			return err
		}

		newCountryID := city.CountryID
		if request.CountryID != nil {
			country, err := validation.LookupOrFail[db_models.Country](ctx, tx, "id", *request.CountryID, "Country not found")
			if err != nil {
				return err
			}
			newCountryID = country.ID
		}
		newName := city.Name
		if request.Name != nil {
			newName = *request.Name
		}

		if newName != city.Name || newCountryID != city.CountryID {
			other, err := validation.FindMatch[db_models.City](ctx, tx,
				validation.Eq("name", newName), validation.Eq("country_id", newCountryID))
			if err != nil {
				return err
			}
			if other != nil && other.ID != city.ID {
				return utils.BadRequest("City already exists in this country")
			}
		}

		city.Name = newName
		city.CountryID = newCountryID
		if request.Season != nil {
			city.Season = *request.Season
		}
		if err := cities.Update(ctx, city); err != nil {
			return err
		}
		updated, err = cities.GetByID(ctx, city.ID)
		return err
	})
	if err != nil {
		return nil, storageError(s.logger, err, "updating city")
	}
	resp := response_models.NewCity(*updated)
	return &resp, nil
}

func (s *CityService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		city, err := validation.LookupOrFail[db_models.City](ctx, tx, "id", id, "City not found")
		if err != nil {
			return err
		}
		return s.cityRepo.WithTx(tx).DeleteCascade(ctx, city)
	})
	return storageError(s.logger, err, "deleting city")
}
