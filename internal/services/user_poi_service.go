package services

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"wanderdex/internal/infra"
	"wanderdex/internal/models/db_models"
	"wanderdex/internal/models/response_models"
	"wanderdex/internal/repositories"
	"wanderdex/internal/validation"
	"wanderdex/pkg/utils"
)

// UserPoiServiceInterface manages one of the caller's POI lists. subject is
// the authenticated user id taken from the identity token.
type UserPoiServiceInterface interface {
	List(ctx context.Context, subject string) ([]response_models.UserPoiEntry, error)
	Add(ctx context.Context, subject string, rawPoiID string) (*response_models.POI, error)
	Remove(ctx context.Context, subject string, rawPoiID string) error
}

type FavoriteServiceInterface interface {
	UserPoiServiceInterface
}

type VisitedServiceInterface interface {
	UserPoiServiceInterface
}

// UserPoiMessages are the client-facing texts of one list.
type UserPoiMessages struct {
	Noun          string
	PoiNotFound   string
	AlreadyListed string
	NotListed     string
}

var (
	FavoriteMessages = UserPoiMessages{
		Noun:          "favorite",
		PoiNotFound:   "Point of interest not found",
		AlreadyListed: "Point of interest is already in favorites",
		NotListed:     "Favorite not found",
	}
	VisitedMessages = UserPoiMessages{
		Noun:          "visited POI",
		PoiNotFound:   "POI not found",
		AlreadyListed: "POI already visited",
		NotListed:     "Visited POI not found",
	}
)

type userPoiService[T repositories.UserPoiKind] struct {
	tx       infra.TxRunner
	userRepo repositories.UserRepository
	listRepo repositories.UserPoiRepository[T]
	poiRepo  repositories.POIRepository
	messages UserPoiMessages
	logger   *zap.Logger
}

func NewFavoriteService(
	tx infra.TxRunner,
	userRepo repositories.UserRepository,
	listRepo repositories.UserPoiRepository[db_models.Favorite],
	poiRepo repositories.POIRepository,
	logger *zap.Logger,
) FavoriteServiceInterface {
	return &userPoiService[db_models.Favorite]{
		tx:       tx,
		userRepo: userRepo,
		listRepo: listRepo,
		poiRepo:  poiRepo,
		messages: FavoriteMessages,
		logger:   logger,
	}
}

func NewVisitedService(
	tx infra.TxRunner,
	userRepo repositories.UserRepository,
	listRepo repositories.UserPoiRepository[db_models.Visited],
	poiRepo repositories.POIRepository,
	logger *zap.Logger,
) VisitedServiceInterface {
	return &userPoiService[db_models.Visited]{
		tx:       tx,
		userRepo: userRepo,
		listRepo: listRepo,
		poiRepo:  poiRepo,
		messages: VisitedMessages,
		logger:   logger,
	}
}

func (s *userPoiService[T]) List(ctx context.Context, subject string) ([]response_models.UserPoiEntry, error) {
	operation := "retrieving " + s.messages.Noun + " list"
	user, err := resolveUser(ctx, s.userRepo, subject)
	if err != nil {
		return nil, storageError(s.logger, err, operation)
	}
	entries, err := s.listRepo.List(ctx, user.ID)
	if err != nil {
		return nil, storageError(s.logger, err, operation)
	}
	out := make([]response_models.UserPoiEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, response_models.UserPoiEntry{PoiID: e.PoiID.String(), PoiName: e.PoiName})
	}
	return out, nil
}

func (s *userPoiService[T]) Add(ctx context.Context, subject string, rawPoiID string) (*response_models.POI, error) {
	var added *db_models.POI
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		user, err := resolveUser(ctx, s.userRepo.WithTx(tx), subject)
		if err != nil {
			return err
		}
		poiID, err := validation.ParseID(rawPoiID, s.messages.PoiNotFound)
		if err != nil {
			return err
		}
		if _, err := validation.LookupOrFail[db_models.POI](ctx, tx, "id", poiID, s.messages.PoiNotFound); err != nil {
			return err
		}

		list := s.listRepo.WithTx(tx)
		exists, err := list.Exists(ctx, user.ID, poiID)
		if err != nil {
			return err
		}
		if exists {
			return utils.BadRequest("%s", s.messages.AlreadyListed)
		}
		if err := list.Add(ctx, user.ID, poiID); err != nil {
			return err
		}
		added, err = s.poiRepo.WithTx(tx).GetByIDWithDetails(ctx, poiID)
		return err
	})
	if err != nil {
		return nil, storageError(s.logger, err, "adding "+s.messages.Noun)
	}
	resp := response_models.NewPOI(*added)
	return &resp, nil
}

func (s *userPoiService[T]) Remove(ctx context.Context, subject string, rawPoiID string) error {
	err := s.tx.Run(ctx, func(tx *gorm.DB) error {
		user, err := resolveUser(ctx, s.userRepo.WithTx(tx), subject)
		if err != nil {
			return err
		}
		poiID, err := validation.ParseID(rawPoiID, s.messages.NotListed)
		if err != nil {
			return err
		}

		list := s.listRepo.WithTx(tx)
		exists, err := list.Exists(ctx, user.ID, poiID)
		if err != nil {
			return err
		}
		if !exists {
			return utils.NotFound("%s", s.messages.NotListed)
		}
		return list.Remove(ctx, user.ID, poiID)
	})
	return storageError(s.logger, err, "removing "+s.messages.Noun)
}
