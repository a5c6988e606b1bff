package application

import (
	"context"
	"strings"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
	"go-blog-graphql/pkg/apperr"
)

// CommentService hosts the comment use-cases.
type CommentService struct {
	Repo  repository.CommentRepository
	Posts repository.PostRepository
	Clock entity.Clock
}

func NewCommentService(repo repository.CommentRepository, posts repository.PostRepository, clk entity.Clock) *CommentService {
	if clk == nil {
		clk = entity.SystemClock
	}
	return &CommentService{Repo: repo, Posts: posts, Clock: clk}
}

type CreateCommentInput struct {
	Content  string
	PostID   int64
	AuthorID int64
}

// CreateComment attaches a comment to an existing post.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*entity.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, apperr.Validation("Comment content cannot be empty")
	}
	if in.PostID == 0 {
		return nil, apperr.Validation("Post ID must be provided")
	}
	if in.AuthorID == 0 {
		return nil, apperr.Validation("Author ID must be provided")
	}

	post, err := s.Posts.FindByID(ctx, in.PostID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to save comment")
	}
	if post == nil {
		return nil, apperr.NotFound("Post not found")
	}

	c, err := entity.NewComment(entity.CommentProps{
		Content:  in.Content,
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
	}, s.Clock)
	if err != nil {
		return nil, domainToApp(err)
	}

	saved, err := s.Repo.Save(ctx, c)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to save comment")
	}
	return saved, nil
}

type UpdateCommentInput struct {
	ID      int64
	Content string
}

// UpdateComment replaces the content of an existing comment.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*entity.Comment, error) {
	if in.ID == 0 {
		return nil, apperr.Validation("Comment ID is required")
	}

	c, err := s.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update comment")
	}
	if c == nil {
		return nil, apperr.NotFound("Comment not found")
	}

	if err := c.UpdateDetails(in.Content); err != nil {
		return nil, domainToApp(err)
	}

	updated, err := s.Repo.Update(ctx, c)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update comment")
	}
	return updated, nil
}

// DeleteComment removes an existing comment.
func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	if id == 0 {
		return apperr.Validation("Comment ID is required")
	}

	c, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, "Failed to delete comment")
	}
	if c == nil {
		return apperr.NotFound("Comment not found")
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return apperr.Wrap(err, "Failed to delete comment")
	}
	return nil
}

// ListCommentsByPost returns the comments of one post.
func (s *CommentService) ListCommentsByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	if postID == 0 {
		return nil, apperr.Validation("Post ID is required")
	}
	comments, err := s.Repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to list comments")
	}
	return comments, nil
}
