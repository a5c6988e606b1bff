package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"go-blog-graphql/internal/interface/middleware"
	"go-blog-graphql/pkg/response"
)

// HealthModule exposes a liveness probe that pings the backing stores.
type HealthModule struct {
	Pool  *pgxpool.Pool
	Redis *redis.Client
}

func NewHealthModule(pool *pgxpool.Pool, rdb *redis.Client) *HealthModule {
	return &HealthModule{Pool: pool, Redis: rdb}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	// private addresses bypass the limit so load balancer probes are never throttled
	rl := middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/health", rl, m.check)
}

func (m *HealthModule) check(c *gin.Context) {
	status := map[string]string{"app": "ok"}
	code := http.StatusOK

	probe, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if m.Pool != nil {
		if err := m.Pool.Ping(probe); err != nil {
			status["postgres"] = "down"
			code = http.StatusServiceUnavailable
		} else {
			status["postgres"] = "ok"
		}
	}
	if m.Redis != nil {
		if err := m.Redis.Ping(probe).Err(); err != nil {
			status["redis"] = "down"
			code = http.StatusServiceUnavailable
		} else {
			status["redis"] = "ok"
		}
	}

	if code == http.StatusOK {
		c.JSON(code, response.Success(c, code, status, "healthy", nil))
		return
	}
	c.JSON(code, response.Error[map[string]string](c, code, "degraded", status))
}
