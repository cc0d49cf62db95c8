package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"event-management/internal/models"
)

// UserRepository adds email lookups on top of the generic contract.
// Email uniqueness is the caller's job; IsEmailInUse is the check they
// run before creating a user.
type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{NewRepository[models.User](store, "user_id")}
}

// GetUserByEmail looks a user up by email, case-insensitively. Returns
// (nil, nil) when no user has that address.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.Store().Bun.NewSelect().
		Model(user).
		Where("lower(email) = lower(?)", email).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IsEmailInUse reports whether any user already has the address,
// case-insensitively.
func (r *UserRepository) IsEmailInUse(ctx context.Context, email string) (bool, error) {
	return r.Exists(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("lower(email) = lower(?)", email)
	})
}
