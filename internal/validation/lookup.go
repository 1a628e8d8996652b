package validation

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wanderdex/pkg/utils"
)

// FindUnique loads the row of T whose column equals value, or nil when absent.
func FindUnique[T any](ctx context.Context, db *gorm.DB, column string, value interface{}) (*T, error) {
	return FindMatch[T](ctx, db, Eq(column, value))
}

// FindMatch loads the row of T satisfying every condition, or nil when absent.
// Used for composite natural keys such as (name, city_id).
func FindMatch[T any](ctx context.Context, db *gorm.DB, conds ...clause.Expression) (*T, error) {
	var row T
	err := db.WithContext(ctx).
		Clauses(clause.Where{Exprs: conds}).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// LookupOrFail is FindUnique that turns absence into a NotFound error.
func LookupOrFail[T any](ctx context.Context, db *gorm.DB, column string, value interface{}, notFound string) (*T, error) {
	row, err := FindUnique[T](ctx, db, column, value)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, utils.NotFound("%s", notFound)
	}
	return row, nil
}

// Eq is an equality condition on an unqualified, quoted column.
func Eq(column string, value interface{}) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}
