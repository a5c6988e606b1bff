package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
	"go-blog-graphql/pkg/apperr"
)

// PostService hosts the post use-cases. Posts are mirrored into the search
// index after every successful write; index failures are logged, never
// surfaced.
type PostService struct {
	Repo   repository.PostRepository
	Users  repository.UserRepository
	Index  PostIndexer
	Clock  entity.Clock
	Logger *logrus.Logger
}

func NewPostService(repo repository.PostRepository, users repository.UserRepository, index PostIndexer, clk entity.Clock, logger *logrus.Logger) *PostService {
	if clk == nil {
		clk = entity.SystemClock
	}
	return &PostService{Repo: repo, Users: users, Index: index, Clock: clk, Logger: logger}
}

type CreatePostInput struct {
	Title    string
	Content  string
	AuthorID int64
}

// CreatePost validates input, checks the author exists, and persists a new
// DRAFT post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Validation("Post title cannot be empty")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, apperr.Validation("Post content cannot be empty")
	}
	if in.AuthorID == 0 {
		return nil, apperr.Validation("Author ID must be provided")
	}
	if in.AuthorID < 0 {
		return nil, apperr.Validation("Author ID must be a positive integer")
	}

	author, err := s.Users.FindByID(ctx, in.AuthorID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to save the post due to a persistence issue")
	}
	if author == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Author with ID %d not found", in.AuthorID))
	}

	p, err := entity.NewPost(entity.PostProps{
		Title:    strings.TrimSpace(in.Title),
		Content:  strings.TrimSpace(in.Content),
		AuthorID: in.AuthorID,
	}, s.Clock)
	if err != nil {
		return nil, domainToApp(err)
	}

	saved, err := s.Repo.Save(ctx, p)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to save the post due to a persistence issue")
	}

	s.index(ctx, saved)
	return saved, nil
}

type UpdatePostInput struct {
	ID      int64
	Title   string
	Content string
}

// UpdatePost replaces title and content of an existing post.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*entity.Post, error) {
	if in.ID == 0 {
		return nil, apperr.Validation("Post ID is required")
	}

	p, err := s.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update post")
	}
	if p == nil {
		return nil, apperr.NotFound("Post not found")
	}

	if err := p.UpdateDetails(in.Title, in.Content); err != nil {
		return nil, domainToApp(err)
	}

	updated, err := s.Repo.Update(ctx, p)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update post")
	}

	s.index(ctx, updated)
	return updated, nil
}

// PublishPost moves a DRAFT post to PUBLISHED.
func (s *PostService) PublishPost(ctx context.Context, id int64) (*entity.Post, error) {
	return s.transition(ctx, id, (*entity.Post).Publish)
}

// UnpublishPost moves a PUBLISHED post back to DRAFT.
func (s *PostService) UnpublishPost(ctx context.Context, id int64) (*entity.Post, error) {
	return s.transition(ctx, id, (*entity.Post).Unpublish)
}

func (s *PostService) transition(ctx context.Context, id int64, step func(*entity.Post) error) (*entity.Post, error) {
	if id == 0 {
		return nil, apperr.Validation("Post ID is required")
	}

	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update post")
	}
	if p == nil {
		return nil, apperr.NotFound("Post not found")
	}

	if err := step(p); err != nil {
		return nil, domainToApp(err)
	}

	updated, err := s.Repo.Update(ctx, p)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update post")
	}

	s.index(ctx, updated)
	return updated, nil
}

// GetPostByID resolves a post or reports not found.
func (s *PostService) GetPostByID(ctx context.Context, id int64) (*entity.Post, error) {
	if id == 0 {
		return nil, apperr.Validation("Post ID is required")
	}

	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to get post")
	}
	if p == nil {
		return nil, apperr.NotFound("Post not found")
	}
	return p, nil
}

// ListPosts pages through posts in reverse creation order.
func (s *PostService) ListPosts(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	posts, err := s.Repo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to list posts")
	}
	return posts, nil
}

// DeletePost removes an existing post and its index entry.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	if id == 0 {
		return apperr.Validation("Post ID is required")
	}

	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, "Failed to delete post")
	}
	if p == nil {
		return apperr.NotFound("Post not found")
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return apperr.Wrap(err, "Failed to delete post")
	}

	if s.Index != nil {
		if err := s.Index.Remove(ctx, id); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", id).Warn("post index remove failed")
		}
	}
	return nil
}

// SearchPosts runs a full-text search over title and content.
func (s *PostService) SearchPosts(ctx context.Context, query string, size int) ([]*entity.Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperr.Validation("Search query is required")
	}
	if s.Index == nil {
		return []*entity.Post{}, nil
	}
	hits, err := s.Index.Search(ctx, query, size)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to search posts")
	}
	return hits, nil
}

func (s *PostService) index(ctx context.Context, p *entity.Post) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, p); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("post_id", p.ID()).Warn("post index failed")
	}
}
