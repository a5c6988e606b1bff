package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, content, post_id, author_id, created_at, updated_at
		FROM comments
		WHERE id = $1
	`, id)
	return scanComment(row)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, content, post_id, author_id, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC
	`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) Save(ctx context.Context, c *entity.Comment) (*entity.Comment, error) {
	rec := c.Record()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, content, post_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.Content, rec.PostID, rec.AuthorID, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) Update(ctx context.Context, c *entity.Comment) (*entity.Comment, error) {
	rec := c.Record()
	res, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET content = $1, updated_at = $2
		WHERE id = $3
	`, rec.Content, rec.UpdatedAt, rec.ID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, errors.New("comment not persisted")
	}
	return c, nil
}

func (r *CommentRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

func scanComment(row pgx.Row) (*entity.Comment, error) {
	var rec entity.CommentRecord
	if err := row.Scan(&rec.ID, &rec.Content, &rec.PostID, &rec.AuthorID,
		&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entity.RestoreComment(rec, entity.SystemClock), nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
