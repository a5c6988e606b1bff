package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"go-blog-graphql/internal/container"
	"go-blog-graphql/internal/interface/middleware"
)

// DebugModule exposes expvar metrics, rate-limited per IP with a bypass for
// private addresses.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
