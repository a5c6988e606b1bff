package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/internal/domain/repository"
)

// UserRepository persists user aggregates. Ids are generated by the domain,
// so rows are inserted with their id instead of relying on a sequence.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	rec := u.Record()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.Name, rec.Email, rec.Password, string(rec.Role), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	rec := u.Record()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, role = $4, updated_at = $5
		WHERE id = $6
	`, rec.Name, rec.Email, rec.Password, string(rec.Role), rec.UpdatedAt, rec.ID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, errors.New("user not persisted")
	}
	return u, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var rec entity.UserRecord
	var role string
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Password, &role,
		&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	rec.Role = entity.UserRole(role)
	return entity.RestoreUser(rec, entity.SystemClock), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
