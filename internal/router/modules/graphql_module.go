package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"go-blog-graphql/internal/container"
	gql "go-blog-graphql/internal/interface/graphql"
	"go-blog-graphql/internal/interface/middleware"
	"go-blog-graphql/pkg/helpers"
)

// GraphQLModule mounts the single GraphQL endpoint. Auth is optional at the
// transport level; field guards enforce roles inside the schema.
type GraphQLModule struct {
	Handler *gql.Handler
	JWT     *helpers.JWTManager
}

func NewGraphQLModule(h *gql.Handler, jwt *helpers.JWTManager) *GraphQLModule {
	return &GraphQLModule{Handler: h, JWT: jwt}
}

func (m *GraphQLModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil)
	rg.POST("/graphql", middleware.Auth(m.JWT), rl, m.Handler.Serve)
}
