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
)

type UserServiceInterface interface {
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	CreateUser(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error)
	DeleteUser(ctx context.Context, userName string) error
}

type UserService struct {
	tx       infra.TxRunner
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

func NewUserService(tx infra.TxRunner, userRepo repositories.UserRepository, logger *zap.Logger) UserServiceInterface {
	return &UserService{tx: tx, userRepo: userRepo, logger: logger}
}

func (u *UserService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, storageError(u.logger, err, "retrieving users")
	}
	out := make([]response_models.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, response_models.NewUserResponse(user))
	}
	return out, nil
}

func (u *UserService) CreateUser(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error) {
	user, err := createUser(ctx, u.tx, u.userRepo, request)
	if err != nil {
		return nil, storageError(u.logger, err, "adding user")
	}
	resp := response_models.NewUserResponse(*user)
	return &resp, nil
}

func (u *UserService) DeleteUser(ctx context.Context, userName string) error {
	err := u.tx.Run(ctx, func(tx *gorm.DB) error {
		user, err := validation.LookupOrFail[db_models.User](ctx, tx, "user_name", userName, "User not found")
		if err != nil {
			return err
		}
		return u.userRepo.WithTx(tx).DeleteCascade(ctx, user)
	})
	return storageError(u.logger, err, "deleting user")
}
