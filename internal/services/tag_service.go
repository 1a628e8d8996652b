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

type TagServiceInterface interface {
	GetAllTags(ctx context.Context) ([]response_models.TagResponse, error)
	GetTag(ctx context.Context, name string) (*response_models.TagResponse, error)
	CreateTags(ctx context.Context, requests []request_models.CreateTagRequest) ([]response_models.TagResponse, error)
	UpdateTag(ctx context.Context, name string, request request_models.UpdateTagRequest) (*response_models.TagResponse, error)
	DeleteTag(ctx context.Context, name string) error
}

type TagService struct {
	tx      infra.TxRunner
	tagRepo repositories.TagRepositoryInterface
	logger  *zap.Logger
}

func NewTagService(tx infra.TxRunner, tagRepo repositories.TagRepositoryInterface, logger *zap.Logger) TagServiceInterface {
	return &TagService{
		tx:      tx,
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (t *TagService) GetAllTags(ctx context.Context) ([]response_models.TagResponse, error) {
	tags, err := t.tagRepo.GetAllTags(ctx)
	if err != nil {
		return nil, storageError(t.logger, err, "retrieving tags")
	}
	return response_models.NewTags(tags), nil
}

func (t *TagService) GetTag(ctx context.Context, name string) (*response_models.TagResponse, error) {
	tag, err := t.tagRepo.GetTagByName(ctx, name)
	if err != nil {
		return nil, storageError(t.logger, err, "retrieving tag")
	}
	if tag == nil {
		return nil, utils.NotFound("Tag not found")
	}
	resp := response_models.NewTag(*tag)
	return &resp, nil
}

func (t *TagService) CreateTags(ctx context.Context, requests []request_models.CreateTagRequest) ([]response_models.TagResponse, error) {
	var created []*db_models.Tag
	err := t.tx.Run(ctx, func(tx *gorm.DB) error {
		tags := t.tagRepo.WithTx(tx)
		seen := validation.KeySet{}
		for _, req := range requests {
			if err := seen.Claim(req.Name); err != nil {
				return err
			}
			existing, err := tags.GetTagByName(ctx, req.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				return utils.BadRequest("Tag '%s' already exists", req.Name)
			}
			created = append(created, &db_models.Tag{Name: req.Name})
		}
		return tags.CreateTags(ctx, created)
	})
	if err != nil {
		return nil, storageError(t.logger, err, "creating tags")
	}

	out := make([]response_models.TagResponse, 0, len(created))
	for _, tag := range created {
		out = append(out, response_models.NewTag(*tag))
	}
	return out, nil
}

func (t *TagService) UpdateTag(ctx context.Context, name string, request request_models.UpdateTagRequest) (*response_models.TagResponse, error) {
	var updated *db_models.Tag
	err := t.tx.Run(ctx, func(tx *gorm.DB) error {
		tags := t.tagRepo.WithTx(tx)
		tag, err := validation.LookupOrFail[db_models.Tag](ctx, tx, "name", name, "Tag not found")
		if err != nil {
			return err
		}
		if request.Name != nil {
			other, err := tags.GetTagByName(ctx, *request.Name)
			if err != nil {
				return err
			}
			if other != nil && other.ID != tag.ID {
				return utils.BadRequest("Tag name already exists")
			}
			tag.Name = *request.Name
		}
		if err := tags.UpdateTag(ctx, tag); err != nil {
			return err
		}
		updated = tag
		return nil
	})
	if err != nil {
		return nil, storageError(t.logger, err, "updating tag")
	}
	resp := response_models.NewTag(*updated)
	return &resp, nil
}

// DeleteTag unlinks the tag from every POI before removing it.
func (t *TagService) DeleteTag(ctx context.Context, name string) error {
	err := t.tx.Run(ctx, func(tx *gorm.DB) error {
		tag, err := validation.LookupOrFail[db_models.Tag](ctx, tx, "name", name, "Tag not found")
		if err != nil {
			return err
		}
		return t.tagRepo.WithTx(tx).DeleteCascade(ctx, tag)
	})
	return storageError(t.logger, err, "deleting tag")
}
