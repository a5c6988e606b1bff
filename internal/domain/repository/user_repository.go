package repository

import (
	"context"

	"go-blog-graphql/internal/domain/entity"
)

// UserRepository is the persistence port for the user aggregate. Lookups
// return (nil, nil) when no row matches; use-cases translate that into a
// not-found error.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) (*entity.User, error)
	DeleteByID(ctx context.Context, id int64) error
}
