package repository

import (
	"context"

	"go-blog-graphql/internal/domain/entity"
)

// CommentRepository is the persistence port for the comment aggregate.
type CommentRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)
	Save(ctx context.Context, c *entity.Comment) (*entity.Comment, error)
	Update(ctx context.Context, c *entity.Comment) (*entity.Comment, error)
	DeleteByID(ctx context.Context, id int64) error
}
