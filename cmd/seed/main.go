package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"go-blog-graphql/config"
	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@example.com"
	password := "Sup3r@dmin!"

	hash, err := helpers.BcryptHasher{}.Hash(context.Background(), password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin, err := entity.NewUser(entity.UserProps{
		Name:     "admin",
		Email:    email,
		Password: hash,
		Role:     entity.RoleAdmin,
	}, entity.SystemClock)
	if err != nil {
		log.Fatalf("failed to build admin user: %v", err)
	}

	rec := admin.Record()
	var id int64
	err = db.QueryRow(`
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at
		RETURNING id
	`, rec.ID, rec.Name, rec.Email, rec.Password, rec.Role, rec.CreatedAt, rec.UpdatedAt).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%d email=%s password=%s\n", id, email, password)
}
