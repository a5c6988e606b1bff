package application

import (
	"context"
	"errors"
	"time"

	"go-blog-graphql/internal/domain/entity"
	"go-blog-graphql/pkg/apperr"
)

// PasswordHasher is the hashing capability injected into user use-cases.
// The application never sees the algorithm, only this contract.
type PasswordHasher interface {
	Hash(ctx context.Context, plain string) (string, error)
	Compare(ctx context.Context, plain, hash string) (bool, error)
}

// TokenService issues signed tokens for authenticated users.
type TokenService interface {
	Generate(u *entity.User) (token string, expiresAt time.Time, err error)
}

// PostIndexer mirrors posts into the search index. Implementations are
// best-effort; indexing failures never fail the owning use-case.
type PostIndexer interface {
	Index(ctx context.Context, p *entity.Post) error
	Remove(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, size int) ([]*entity.Post, error)
}

// JobPublisher enqueues background jobs (welcome emails) as JSON messages.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// domainToApp surfaces a domain invariant violation as a client-correctable
// validation error, keeping its message; anything else passes through for
// the caller's wrap step.
func domainToApp(err error) error {
	var de *entity.DomainError
	if errors.As(err, &de) {
		return apperr.Validation(de.Message)
	}
	return err
}
