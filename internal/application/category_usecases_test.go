package application

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/pkg/apperr"
)

type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[int64]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[int64]*entity.Category{}}
}

func (r *memCategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.categories[id], nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategoryRepo) Save(_ context.Context, c *entity.Category) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID()] = c
	return c, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID()] = c
	return c, nil
}

func (r *memCategoryRepo) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func TestCreateCategory(t *testing.T) {
	svc := NewCategoryService(newMemCategoryRepo())

	c, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "golang"})
	require.NoError(t, err)
	require.Equal(t, "golang", c.Name())

	_, err = svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "  "})
	require.EqualError(t, err, "Category name cannot be empty")
	require.True(t, apperr.IsValidation(err))

	_, err = svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "go"})
	require.EqualError(t, err, "Name must be at least 3 characters long")
	require.True(t, apperr.IsValidation(err))
}

func TestUpdateCategory(t *testing.T) {
	svc := NewCategoryService(newMemCategoryRepo())
	c, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "golang"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(context.Background(), UpdateCategoryInput{ID: c.ID(), Name: "databases"})
	require.NoError(t, err)
	require.Equal(t, "databases", updated.Name())

	_, err = svc.UpdateCategory(context.Background(), UpdateCategoryInput{ID: 999, Name: "ghost"})
	require.EqualError(t, err, "Category not found")
	require.True(t, apperr.IsNotFound(err))
}

func TestDeleteCategory(t *testing.T) {
	svc := NewCategoryService(newMemCategoryRepo())
	c, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "golang"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), c.ID()))

	err = svc.DeleteCategory(context.Background(), c.ID())
	require.True(t, apperr.IsNotFound(err))
}

func TestGetAndListCategories(t *testing.T) {
	svc := NewCategoryService(newMemCategoryRepo())
	c, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: "golang"})
	require.NoError(t, err)

	got, err := svc.GetCategoryByID(context.Background(), c.ID())
	require.NoError(t, err)
	require.Equal(t, c.Name(), got.Name())

	_, err = svc.GetCategoryByID(context.Background(), 0)
	require.True(t, apperr.IsValidation(err))

	all, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
}
