package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wanderdex/internal/models/db_models"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository

	List(ctx context.Context) ([]db_models.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByUserName(ctx context.Context, userName string) (*db_models.User, error)
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	DeleteCascade(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (u *userRepository) withLists(ctx context.Context) *gorm.DB {
	byCreation := func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at, poi_id")
	}
	return u.db.WithContext(ctx).
		Preload("Favorites", byCreation).
		Preload("Visited", byCreation)
}

func (u *userRepository) List(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	if err := u.withLists(ctx).Order("user_name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return u.first(ctx, "id = ?", id)
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return u.first(ctx, "email = ?", email)
}

func (u *userRepository) FindByUserName(ctx context.Context, userName string) (*db_models.User, error) {
	return u.first(ctx, "user_name = ?", userName)
}

func (u *userRepository) first(ctx context.Context, query string, arg interface{}) (*db_models.User, error) {
	var user db_models.User
	err := u.withLists(ctx).Where(query, arg).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (u *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
}

func (u *userRepository) DeleteCascade(ctx context.Context, user *db_models.User) error {
	tx := u.db.WithContext(ctx)
	for _, model := range []interface{}{&db_models.Favorite{}, &db_models.Visited{}} {
		if err := tx.Where("user_id = ?", user.ID).Delete(model).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&db_models.User{}, "id = ?", user.ID).Error
}
