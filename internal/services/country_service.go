package services

import (
	"context"

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

type CountryServiceInterface interface {
	ListCountries(ctx context.Context, filter repositories.CountryFilter) ([]response_models.Country, error)
	GetCountry(ctx context.Context, name string) (*response_models.Country, error)
	ListCitiesOfCountry(ctx context.Context, name string) ([]response_models.City, error)
	CreateCountries(ctx context.Context, requests []request_models.CreateCountryRequest) ([]response_models.Country, error)
	UpdateCountry(ctx context.Context, name string, request request_models.UpdateCountryRequest) (*response_models.Country, error)
	DeleteCountry(ctx context.Context, name string) error
}

type CountryService struct {
	tx          infra.TxRunner
	countryRepo repositories.CountryRepository
	cityRepo    repositories.CityRepository
	logger      *zap.Logger
}

func NewCountryService(tx infra.TxRunner, countryRepo repositories.CountryRepository, cityRepo repositories.CityRepository, logger *zap.Logger) CountryServiceInterface {
	return &CountryService{
		tx:          tx,
		countryRepo: countryRepo,
		cityRepo:    cityRepo,
		logger:      logger,
	}
}

func (s *CountryService) ListCountries(ctx context.Context, filter repositories.CountryFilter) ([]response_models.Country, error) {
	countries, err := s.countryRepo.List(ctx, filter)
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving countries")
	}
	return response_models.NewCountries(countries), nil
}

func (s *CountryService) GetCountry(ctx context.Context, name string) (*response_models.Country, error) {
	country, err := s.countryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving country")
	}
	if country == nil {
		return nil, utils.NotFound("Country not found")
	}
	resp := response_models.NewCountry(*country)
	return &resp, nil
}

func (s *CountryService) ListCitiesOfCountry(ctx context.Context, name string) ([]response_models.City, error) {
	country, err := s.countryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving cities")
	}
	if country == nil {
		return nil, utils.NotFound("Country not found")
	}
	cities, err := s.cityRepo.List(ctx, repositories.CityFilter{CountryID: &country.ID})
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving cities")
	}
	return response_models.NewCities(cities), nil
}

func (s *CountryService) CreateCountries(ctx context.Context, requests []request_models.CreateCountryRequest) ([]response_models.Country, error) {
	var created []*db_models.Country
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		countries := s.countryRepo.WithTx(tx)
		seen := validation.KeySet{}
		for _, req := range requests {
			if err := seen.Claim(req.Name); err != nil {
				return err
			}
			existing, err := countries.GetByName(ctx, req.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				return utils.BadRequest("Country %s already exists", req.Name)
			}
			created = append(created, &db_models.Country{Name: req.Name, Img: req.Img})
		}
		return countries.CreateBatch(ctx, created)
	})
	if err != nil {
		return nil, storageError(s.logger, err, "creating countries")
	}

	out := make([]response_models.Country, 0, len(created))
	for _, c := range created {
		out = append(out, response_models.NewCountry(*c))
	}
	return out, nil
}

func (s *CountryService) UpdateCountry(ctx context.Context, name string, request request_models.UpdateCountryRequest) (*response_models.Country, error) {
	var updated *db_models.Country
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		countries := s.countryRepo.WithTx(tx)
		country, err := validation.LookupOrFail[db_models.Country](ctx, tx, "name", name, "Country not found")
		if err != nil {
			return err
		}

		if request.Name != nil {
			other, err := countries.GetByName(ctx, *request.Name)
			if err != nil {
				return err
			}
			if other != nil && other.ID != country.ID {
				return utils.BadRequest("Country name already exists")
			}
			country.Name = *request.Name
		}
		if request.Img != nil {
			country.Img = *request.Img
		}

		if err := countries.Update(ctx, country); err != nil {
			return err
		}
		updated, err = countries.GetByID(ctx, country.ID)
		return err
	})
	if err != nil {
		return nil, storageError(s.logger, err, "updating country")
	}
	resp := response_models.NewCountry(*updated)
	return &resp, nil
}

// DeleteCountry removes the country with its cities and their POIs.
func (s *CountryService) DeleteCountry(ctx context.Context, name string) error {
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		country, err := validation.LookupOrFail[db_models.Country](ctx, tx, "name", name, "Country not found")
		if err != nil {
			return err
		}
		return s.countryRepo.WithTx(tx).DeleteCascade(ctx, country)
	})
	return storageError(s.logger, err, "deleting country")
}
