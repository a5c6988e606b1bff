package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
	return scanCategory(row)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Save(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	rec := c.Record()
	_, err := r.pool.Exec(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2)`, rec.ID, rec.Name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	rec := c.Record()
	res, err := r.pool.Exec(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, rec.Name, rec.ID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, errors.New("category not persisted")
	}
	return c, nil
}

func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var rec entity.CategoryRecord
	if err := row.Scan(&rec.ID, &rec.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entity.RestoreCategory(rec), nil
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
