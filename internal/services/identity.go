package services

import (
	"context"

	"github.com/google/uuid"
	"wanderdex/internal/models/db_models"
	"wanderdex/internal/repositories"
	"wanderdex/pkg/utils"
)

// resolveUser maps a token subject to an existing user. Unparseable ids and
// deleted users both fail authentication.
func resolveUser(ctx context.Context, users repositories.UserRepository, subject string) (*db_models.User, error) {
	id, err := uuid.Parse(subject)
	if err != nil {
		return nil, utils.AuthenticationFailed("Authentication failed")
	}
	user, err := users.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.AuthenticationFailed("Authentication failed")
	}
	return user, nil
}
