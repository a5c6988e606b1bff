package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	gql "go-blog-graphql/internal/interface/graphql"
	"go-blog-graphql/pkg/helpers"
	"go-blog-graphql/pkg/response"
)

// Auth verifies an optional bearer token and stores the claims on the request
// context for the resolvers. Requests without an Authorization header pass
// through anonymously; the role guards decide per field. A present but
// invalid token is rejected here.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid authorization header", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.Verify(strings.TrimSpace(token))
		if err != nil {
			resp := response.Error[any](c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set("userID", strconv.FormatInt(claims.UserID, 10))
		c.Request = c.Request.WithContext(gql.WithUser(c.Request.Context(), claims))
		c.Next()
	}
}
