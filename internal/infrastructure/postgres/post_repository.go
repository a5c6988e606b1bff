package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, content, author_id, status, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id)
	return scanPost(row)
}

func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, author_id, status, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0, limit)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Save(ctx context.Context, p *entity.Post) (*entity.Post, error) {
	rec := p.Record()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, content, author_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.Title, rec.Content, rec.AuthorID, string(rec.Status), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) (*entity.Post, error) {
	rec := p.Record()
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET title = $1, content = $2, status = $3, updated_at = $4
		WHERE id = $5
	`, rec.Title, rec.Content, string(rec.Status), rec.UpdatedAt, rec.ID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, errors.New("post not persisted")
	}
	return p, nil
}

func (r *PostRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

func scanPost(row pgx.Row) (*entity.Post, error) {
	var rec entity.PostRecord
	var status string
	if err := row.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.AuthorID, &status,
		&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rec.Status = entity.PostStatus(status)
	return entity.RestorePost(rec, entity.SystemClock), nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
