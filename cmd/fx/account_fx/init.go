package account_fx

import (
	"go.uber.org/fx"
	"wanderdex/internal/config"
	"wanderdex/internal/repositories"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

var Module = fx.Provide(
	repositories.NewUserRepository,
	provideTokenManager,
	services.NewAccountService,
	services.NewUserService,
)

func provideTokenManager(cfg *config.Config) (*utils.TokenManager, error) {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}
