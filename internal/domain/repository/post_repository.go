package repository

import (
	"context"

	"go-blog-graphql/internal/domain/entity"
)

// PostRepository is the persistence port for the post aggregate.
type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Post, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	Save(ctx context.Context, p *entity.Post) (*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) (*entity.Post, error)
	DeleteByID(ctx context.Context, id int64) error
}
