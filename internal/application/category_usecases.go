package application

import (
	"context"
	"strings"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
	"go-blog-graphql/pkg/apperr"
)

// CategoryService hosts the category use-cases.
type CategoryService struct {
	Repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CreateCategoryInput struct {
	Name string
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CreateCategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("Category name cannot be empty")
	}

	c, err := entity.NewCategory(entity.CategoryProps{Name: in.Name})
	if err != nil {
		return nil, domainToApp(err)
	}

	saved, err := s.Repo.Save(ctx, c)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to save category")
	}
	return saved, nil
}

type UpdateCategoryInput struct {
	ID   int64
	Name string
}

func (s *CategoryService) UpdateCategory(ctx context.Context, in UpdateCategoryInput) (*entity.Category, error) {
	if in.ID == 0 {
		return nil, apperr.Validation("Category ID is required")
	}

	c, err := s.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update category")
	}
	if c == nil {
		return nil, apperr.NotFound("Category not found")
	}

	if err := c.UpdateDetails(in.Name); err != nil {
		return nil, domainToApp(err)
	}

	updated, err := s.Repo.Update(ctx, c)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to update category")
	}
	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if id == 0 {
		return apperr.Validation("Category ID is required")
	}

	c, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Wrap(err, "Failed to delete category")
	}
	if c == nil {
		return apperr.NotFound("Category not found")
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return apperr.Wrap(err, "Failed to delete category")
	}
	return nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	if id == 0 {
		return nil, apperr.Validation("Category ID is required")
	}

	c, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to get category")
	}
	if c == nil {
		return nil, apperr.NotFound("Category not found")
	}
	return c, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Repo.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(err, "Failed to list categories")
	}
	return categories, nil
}
