package graphql

import (
	"github.com/graphql-go/graphql"

	"go-blog-graphql/pkg/apperr"
)

// RoleGuard restricts a resolver to callers holding one of the allowed roles.
// A missing identity yields an authentication error, a present identity with
// the wrong role an authorization error.
type RoleGuard struct {
	roles []string
}

func NewRoleGuard(roles ...string) *RoleGuard {
	return &RoleGuard{roles: roles}
}

func (g *RoleGuard) Wrap(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		claims := CurrentUser(p.Context)
		if claims == nil {
			return nil, asResolverError(apperr.Authentication("Authentication required"))
		}
		for _, role := range g.roles {
			if claims.Role == role {
				return next(p)
			}
		}
		return nil, asResolverError(apperr.Authorization("You do not have permission to perform this action"))
	}
}

// authenticated admits any caller with a verified token regardless of role.
func authenticated(next graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if CurrentUser(p.Context) == nil {
			return nil, asResolverError(apperr.Authentication("Authentication required"))
		}
		return next(p)
	}
}
