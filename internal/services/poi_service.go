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

type POIServiceInterface interface {
	ListPois(ctx context.Context, filter repositories.PoiFilter) ([]response_models.POI, error)
	PopularPois(ctx context.Context) ([]response_models.POI, error)
	GetPOIById(ctx context.Context, id uuid.UUID) (*response_models.POI, error)
	CreatePois(ctx context.Context, requests []request_models.CreatePoiRequest) ([]response_models.POI, error)
	UpdatePoi(ctx context.Context, id uuid.UUID, request request_models.UpdatePoiRequest) (*response_models.POI, error)
	DeletePoi(ctx context.Context, id uuid.UUID) error

	TagsOfPoi(ctx context.Context, id uuid.UUID) ([]response_models.TagResponse, error)
	ImagesOfPoi(ctx context.Context, id uuid.UUID) ([]response_models.PoiImage, error)
	AddTagToPoi(ctx context.Context, id uuid.UUID, tagName string) error
	RemoveTagFromPoi(ctx context.Context, id uuid.UUID, tagName string) error
}

type PoiService struct {
	tx            infra.TxRunner
	poiRepository repositories.POIRepository
	tagRepository repositories.TagRepositoryInterface
	imageRepo     repositories.PoiImageRepository
	logger        *zap.Logger
}

func NewPoiService(
	tx infra.TxRunner,
	poiRepository repositories.POIRepository,
	tagRepository repositories.TagRepositoryInterface,
	imageRepo repositories.PoiImageRepository,
	logger *zap.Logger,
) POIServiceInterface {
	return &PoiService{
		tx:            tx,
		poiRepository: poiRepository,
		tagRepository: tagRepository,
		imageRepo:     imageRepo,
		logger:        logger,
	}
}

func (p *PoiService) ListPois(ctx context.Context, filter repositories.PoiFilter) ([]response_models.POI, error) {
	pois, err := p.poiRepository.List(ctx, filter)
	if err != nil {
		return nil, storageError(p.logger, err, "retrieving POIs")
	}
	return response_models.NewPOIs(pois), nil
}

func (p *PoiService) PopularPois(ctx context.Context) ([]response_models.POI, error) {
	pois, err := p.poiRepository.Popular(ctx)
	if err != nil {
		return nil, storageError(p.logger, err, "retrieving popular POIs")
	}
	return response_models.NewPOIs(pois), nil
}

func (p *PoiService) GetPOIById(ctx context.Context, id uuid.UUID) (*response_models.POI, error) {
	poi, err := p.poiRepository.GetByIDWithDetails(ctx, id)
	if err != nil {
		return nil, storageError(p.logger, err, "retrieving POI")
	}
	if poi == nil {
		return nil, utils.NotFound("Point of interest not found")
	}
	resp := response_models.NewPOI(*poi)
	return &resp, nil
}

// CreatePois inserts the batch together with each item's tag links and images.
// Country and city are resolved by name; every referenced tag must exist.
func (p *PoiService) CreatePois(ctx context.Context, requests []request_models.CreatePoiRequest) ([]response_models.POI, error) {
	var created []response_models.POI
	err := p.tx.Run(ctx, func(tx *gorm.DB) error {
		pois := p.poiRepository.WithTx(tx)
		tags := p.tagRepository.WithTx(tx)

		var (
			newPois []*db_models.POI
			links   []db_models.PoiTag
			images  []*db_models.PoiImage
		)
		seen := validation.KeySet{}
		for _, req := range requests {
			country, err := validation.FindUnique[db_models.Country](ctx, tx, "name", req.CountryName)
			if err != nil {
				return err
			}
			if country == nil {
				return utils.BadRequest("Country '%s' not found", req.CountryName)
			}
			city, err := validation.FindMatch[db_models.City](ctx, tx,
				validation.Eq("name", req.CityName), validation.Eq("country_id", country.ID))
			if err != nil {
				return err
			}
			if city == nil {
				return utils.BadRequest("City '%s' in country '%s' not found", req.CityName, req.CountryName)
			}

			if err := seen.Claim(req.Name + ":" + city.ID.String()); err != nil {
				return err
			}
			existing, err := validation.FindMatch[db_models.POI](ctx, tx,
				validation.Eq("name", req.Name), validation.Eq("city_id", city.ID))
			if err != nil {
				return err
			}
			if existing != nil {
				return utils.BadRequest("POI '%s' already exists in this city", req.Name)
			}

			poi := &db_models.POI{
				BaseModel:   db_models.BaseModel{ID: uuid.New()},
				Name:        req.Name,
				Description: req.Description,
				Latitude:    req.Latitude,
				Longitude:   req.Longitude,
				CityID:      city.ID,
			}
			newPois = append(newPois, poi)

			itemTags := validation.KeySet{}
			for _, tagName := range req.Tags {
				if err := itemTags.Claim(tagName); err != nil {
					return err
				}
				tag, err := tags.GetTagByName(ctx, tagName)
				if err != nil {
					return err
				}
				if tag == nil {
					return utils.NotFound("Tag '%s' not found", tagName)
				}
				links = append(links, db_models.PoiTag{PoiID: poi.ID, TagID: tag.ID})
			}
			for _, url := range req.Images {
				images = append(images, &db_models.PoiImage{URL: url, PoiID: poi.ID})
			}
		}

		if err := pois.CreateBatch(ctx, newPois); err != nil {
			return err
		}
		if err := pois.LinkTags(ctx, links); err != nil {
			return err
		}
		if err := p.imageRepo.WithTx(tx).CreateBatch(ctx, images); err != nil {
			return err
		}

		for _, poi := range newPois {
			loaded, err := pois.GetByIDWithDetails(ctx, poi.ID)
			if err != nil {
				return err
			}
			created = append(created, response_models.NewPOI(*loaded))
		}
		return nil
	})
	if err != nil {
		return nil, storageError(p.logger, err, "creating POIs")
	}
	return created, nil
}

// UpdatePoi re-checks (name, city) uniqueness against the prospective values
// before applying any change.
func (p *PoiService) UpdatePoi(ctx context.Context, id uuid.UUID, request request_models.UpdatePoiRequest) (*response_models.POI, error) {
	var updated *db_models.POI
	err := p.tx.Run(ctx, func(tx *gorm.DB) error {
		pois := p.poiRepository.WithTx(tx)
		poi, err := validation.LookupOrFail[db_models.POI](ctx, tx, "id", id, "POI not found")
		if err != nil {
			return err
		}

		newCityID := poi.CityID
		if request.CityID != nil {
			city, err := validation.LookupOrFail[db_models.City](ctx, tx, "id", *request.CityID, "City not found")
			if err != nil {
				return err
			}
			newCityID = city.ID
		}
		newName := poi.Name
		if request.Name != nil {
			newName = *request.Name
		}

		if newName != poi.Name || newCityID != poi.CityID {
			other, err := validation.FindMatch[db_models.POI](ctx, tx,
				validation.Eq("name", newName), validation.Eq("city_id", newCityID))
			if err != nil {
				return err
			}
			if other != nil && other.ID != poi.ID {
				return utils.BadRequest("POI already exists in this city")
			}
		}

		poi.Name = newName
		poi.CityID = newCityID
		if request.Description != nil {
			poi.Description = *request.Description
		}
		if request.Latitude != nil {
			poi.Latitude = *request.Latitude
		}
		if request.Longitude != nil {
			poi.Longitude = *request.Longitude
		}
		if err := pois.UpdatePoi(ctx, poi); err != nil {
			return err
		}
		updated, err = pois.GetByIDWithDetails(ctx, poi.ID)
		return err
	})
	if err != nil {
		return nil, storageError(p.logger, err, "updating POI")
	}
	resp := response_models.NewPOI(*updated)
	return &resp, nil
}

func (p *PoiService) DeletePoi(ctx context.Context, id uuid.UUID) error {
	err := p.tx.Run(ctx, func(tx *gorm.DB) error {
		if _, err := validation.LookupOrFail[db_models.POI](ctx, tx, "id", id, "POI not found"); err != nil {
			return err
		}
		return p.poiRepository.WithTx(tx).DeleteCascade(ctx, id)
	})
	return storageError(p.logger, err, "deleting POI")
}

func (p *PoiService) TagsOfPoi(ctx context.Context, id uuid.UUID) ([]response_models.TagResponse, error) {
	if err := p.requirePoi(ctx, id); err != nil {
		return nil, storageError(p.logger, err, "retrieving tags of POI")
	}
	tags, err := p.tagRepository.ListByPoi(ctx, id)
	if err != nil {
		return nil, storageError(p.logger, err, "retrieving tags of POI")
	}
	return response_models.NewTags(tags), nil
}

func (p *PoiService) ImagesOfPoi(ctx context.Context, id uuid.UUID) ([]response_models.PoiImage, error) {
	if err := p.requirePoi(ctx, id); err != nil {
		return nil, storageError(p.logger, err, "retrieving images of POI")
	}
	images, err := p.imageRepo.ListByPoi(ctx, id)
	if err != nil {
		return nil, storageError(p.logger, err, "retrieving images of POI")
	}
	return response_models.NewPoiImages(images), nil
}

func (p *PoiService) requirePoi(ctx context.Context, id uuid.UUID) error {
	poi, err := p.poiRepository.GetByIDWithDetails(ctx, id)
	if err != nil {
		return err
	}
	if poi == nil {
		return utils.NotFound("POI not found")
	}
	return nil
}

func (p *PoiService) AddTagToPoi(ctx context.Context, id uuid.UUID, tagName string) error {
	err := p.tx.Run(ctx, func(tx *gorm.DB) error {
		poi, tag, err := p.resolveTagLink(ctx, tx, id, tagName)
		if err != nil {
			return err
		}
		pois := p.poiRepository.WithTx(tx)
		link, err := pois.FindTagLink(ctx, poi.ID, tag.ID)
		if err != nil {
			return err
		}
		if link != nil {
			return utils.BadRequest("Tag already associated with this POI")
		}
		return pois.LinkTags(ctx, []db_models.PoiTag{{PoiID: poi.ID, TagID: tag.ID}})
	})
	return storageError(p.logger, err, "adding tag to POI")
}

func (p *PoiService) RemoveTagFromPoi(ctx context.Context, id uuid.UUID, tagName string) error {
	err := p.tx.Run(ctx, func(tx *gorm.DB) error {
		poi, tag, err := p.resolveTagLink(ctx, tx, id, tagName)
		if err != nil {
			return err
		}
		pois := p.poiRepository.WithTx(tx)
		link, err := pois.FindTagLink(ctx, poi.ID, tag.ID)
		if err != nil {
			return err
		}
		if link == nil {
			return utils.BadRequest("Tag not associated with this POI")
		}
		return pois.UnlinkTag(ctx, poi.ID, tag.ID)
	})
	return storageError(p.logger, err, "removing tag from POI")
}

func (p *PoiService) resolveTagLink(ctx context.Context, tx *gorm.DB, id uuid.UUID, tagName string) (*db_models.POI, *db_models.Tag, error) {
	poi, err := validation.LookupOrFail[db_models.POI](ctx, tx, "id", id, "POI not found")
	if err != nil {
		return nil, nil, err
	}
	tag, err := validation.LookupOrFail[db_models.Tag](ctx, tx, "name", tagName, "Tag not found")
	if err != nil {
		return nil, nil, err
	}
	return poi, tag, nil
}
