package graphql

import (
	"context"

	"go-blog-graphql/pkg/helpers"
)

type ctxKey int

const userKey ctxKey = iota

// WithUser stores the verified token claims for downstream resolvers.
func WithUser(ctx context.Context, claims *helpers.Claims) context.Context {
	return context.WithValue(ctx, userKey, claims)
}

// CurrentUser returns the claims of the authenticated caller, or nil for
// anonymous requests.
func CurrentUser(ctx context.Context) *helpers.Claims {
	claims, _ := ctx.Value(userKey).(*helpers.Claims)
	return claims
}
