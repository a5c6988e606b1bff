package repository

import (
	"context"

	"go-blog-graphql/internal/domain/entity"
)

// CategoryRepository is the persistence port for the category aggregate.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Save(ctx context.Context, c *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) (*entity.Category, error)
	DeleteByID(ctx context.Context, id int64) error
}
