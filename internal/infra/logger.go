package infra

import (
	"go.uber.org/zap"
	"wanderdex/internal/config"
)

func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
