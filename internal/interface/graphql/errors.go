package graphql

import (
	"errors"

	"go-blog-graphql/pkg/apperr"
)

// resolverError carries the application error kind and HTTP status into the
// GraphQL error extensions map.
type resolverError struct {
	app *apperr.Error
}

func (e *resolverError) Error() string { return e.app.Message }

func (e *resolverError) Unwrap() error { return e.app }

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":   e.app.Kind.String(),
		"status": e.app.Status,
	}
}

// asResolverError normalizes any error coming out of the application layer.
// Unrecognized errors are reported as internal without leaking the cause.
func asResolverError(err error) error {
	var app *apperr.Error
	if errors.As(err, &app) {
		return &resolverError{app: app}
	}
	return &resolverError{app: apperr.Internal("Internal server error", err)}
}
