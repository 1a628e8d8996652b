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

type PoiImageServiceInterface interface {
	ListImages(ctx context.Context) ([]response_models.PoiImage, error)
	GetImage(ctx context.Context, id uuid.UUID) (*response_models.PoiImage, error)
	CreateImages(ctx context.Context, requests []request_models.CreatePoiImageRequest) ([]response_models.PoiImage, error)
	UpdateImage(ctx context.Context, id uuid.UUID, request request_models.UpdatePoiImageRequest) (*response_models.PoiImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type PoiImageService struct {
	tx        infra.TxRunner
	imageRepo repositories.PoiImageRepository
	logger    *zap.Logger
}

func NewPoiImageService(tx infra.TxRunner, imageRepo repositories.PoiImageRepository, logger *zap.Logger) PoiImageServiceInterface {
	return &PoiImageService{tx: tx, imageRepo: imageRepo, logger: logger}
}

func (s *PoiImageService) ListImages(ctx context.Context) ([]response_models.PoiImage, error) {
	images, err := s.imageRepo.List(ctx)
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving POI images")
	}
	return response_models.NewPoiImages(images), nil
}

func (s *PoiImageService) GetImage(ctx context.Context, id uuid.UUID) (*response_models.PoiImage, error) {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(s.logger, err, "retrieving POI image")
	}
	if image == nil {
		return nil, utils.NotFound("POI image not found")
	}
	resp := response_models.NewPoiImage(*image)
	return &resp, nil
}

func (s *PoiImageService) CreateImages(ctx context.Context, requests []request_models.CreatePoiImageRequest) ([]response_models.PoiImage, error) {
	var created []*db_models.PoiImage
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		seen := validation.KeySet{}
		for _, req := range requests {
			if seen.Claim(req.URL+"\x00"+req.PoiID.String()) != nil {
				return utils.BadRequest("Duplicate entry: %s", req.URL)
			}
			if _, err := validation.LookupOrFail[db_models.POI](ctx, tx, "id", req.PoiID, "POI not found"); err != nil {
				return err
			}
			created = append(created, &db_models.PoiImage{URL: req.URL, PoiID: req.PoiID})
		}
		return s.imageRepo.WithTx(tx).CreateBatch(ctx, created)
	})
	if err != nil {
		return nil, storageError(s.logger, err, "creating POI images")
	}

	out := make([]response_models.PoiImage, 0, len(created))
	for _, img := range created {
		out = append(out, response_models.NewPoiImage(*img))
	}
	return out, nil
}

func (s *PoiImageService) UpdateImage(ctx context.Context, id uuid.UUID, request request_models.UpdatePoiImageRequest) (*response_models.PoiImage, error) {
	var updated *db_models.PoiImage
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		image, err := validation.LookupOrFail[db_models.PoiImage](ctx, tx, "id", id, "POI image not found")
		if err != nil {
			return err
		}
		if request.PoiID != nil {
			if _, err := validation.LookupOrFail[db_models.POI](ctx, tx, "id", *request.PoiID, "POI not found"); err != nil {
				return err
			}
			image.PoiID = *request.PoiID
		}
		if request.URL != nil {
			image.URL = *request.URL
		}
		if err := s.imageRepo.WithTx(tx).Update(ctx, image); err != nil {
			return err
		}
		updated = image
		return nil
	})
	if err != nil {
		return nil, storageError(s.logger, err, "updating POI image")
	}
	resp := response_models.NewPoiImage(*updated)
	return &resp, nil
}

func (s *PoiImageService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		if _, err := validation.LookupOrFail[db_models.PoiImage](ctx, tx, "id", id, "POI image not found"); err != nil {
			return err
		}
		return s.imageRepo.WithTx(tx).Delete(ctx, id)
	})
	return storageError(s.logger, err, "deleting POI image")
}
