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
	"wanderdex/pkg/utils"
)

// AccountServiceInterface covers the caller's own account: sign-up, login and
// profile maintenance.
type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, subject string) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, subject string, request request_models.ProfileUpdateRequest) (*response_models.UserResponse, error)
}

type AccountService struct {
	tx       infra.TxRunner
	userRepo repositories.UserRepository
	tokens   *utils.TokenManager
	logger   *zap.Logger
}

func NewAccountService(tx infra.TxRunner, userRepo repositories.UserRepository, tokens *utils.TokenManager, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		tx:       tx,
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error) {
	user, err := createUser(ctx, a.tx, a.userRepo, request)
	if err != nil {
		return nil, storageError(a.logger, err, "registering user")
	}
	resp := response_models.NewUserResponse(*user)
	return &resp, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Credential)
	if err == nil && user == nil {
		user, err = a.userRepo.FindByUserName(ctx, request.Credential)
	}
	if err != nil {
		return "", storageError(a.logger, err, "logging in")
	}
	if user == nil {
		return "", utils.AuthenticationFailed("Invalid email or user_name")
	}

	if err := utils.ComparePasswords(user.Password, request.Password); err != nil {
		return "", utils.AuthenticationFailed("Invalid password")
	}

	token, err := a.tokens.CreateToken(user.ID)
	if err != nil {
		a.logger.Error("Error signing access token", zap.Error(err))
		return "", utils.Unexpected("logging in")
	}
	return token, nil
}

func (a *AccountService) GetProfile(ctx context.Context, subject string) (*response_models.UserResponse, error) {
	user, err := resolveUser(ctx, a.userRepo, subject)
	if err != nil {
		return nil, storageError(a.logger, err, "retrieving profile")
	}
	resp := response_models.NewUserResponse(*user)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, subject string, request request_models.ProfileUpdateRequest) (*response_models.UserResponse, error) {
	var updated *db_models.User
	err := a.tx.Run(ctx, func(tx *gorm.DB) error {
		users := a.userRepo.WithTx(tx)
		user, err := resolveUser(ctx, users, subject)
		if err != nil {
			return err
		}

		if request.Email != nil {
			other, err := users.FindByEmail(ctx, *request.Email)
			if err != nil {
				return err
			}
			if other != nil && other.ID != user.ID {
				return utils.BadRequest("Email already in use")
			}
			user.Email = *request.Email
		}
		if request.UserName != nil {
			other, err := users.FindByUserName(ctx, *request.UserName)
			if err != nil {
				return err
			}
			if other != nil && other.ID != user.ID {
				return utils.BadRequest("Username already in use")
			}
			user.UserName = *request.UserName
		}
		if request.Password != nil {
			hashed, err := utils.HashPassword(*request.Password)
			if err != nil {
				return err
			}
			user.Password = hashed
		}
		if request.Location != nil {
			user.Location = request.Location
		}
		if request.Img != nil {
			user.Img = request.Img
		}

		if err := users.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, storageError(a.logger, err, "updating profile")
	}
	resp := response_models.NewUserResponse(*updated)
	return &resp, nil
}

// createUser runs the shared sign-up checks and insert in one transaction.
func createUser(ctx context.Context, runner infra.TxRunner, userRepo repositories.UserRepository, request request_models.SignUpRequest) (*db_models.User, error) {
	var user *db_models.User
	err := runner.Run(ctx, func(tx *gorm.DB) error {
		users := userRepo.WithTx(tx)

		existing, err := users.FindByEmail(ctx, request.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.BadRequest("Email already in use")
		}
		existing, err = users.FindByUserName(ctx, request.UserName)
		if err != nil {
			return err
		}
		if existing != nil {
			return utils.BadRequest("Username already in use")
		}

		hashed, err := utils.HashPassword(request.Password)
		if err != nil {
			return err
		}
		role := db_models.DefaultRole
		if request.Role != nil {
			role = *request.Role
		}

		user = &db_models.User{
			Name:      request.Name,
			UserName:  request.UserName,
			Email:     request.Email,
			Password:  hashed,
			BirthDate: request.BirthDate,
			Location:  request.Location,
			Role:      role,
			Img:       request.Img,
		}
		return users.Insert(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
