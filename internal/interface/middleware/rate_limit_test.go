package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testCtx(target, remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	c.Request.RemoteAddr = remoteAddr
	return c
}

func TestKeyByIP(t *testing.T) {
	c := testCtx("/api/health", "203.0.113.9:4567")
	require.Equal(t, "rl:ip:203.0.113.9", KeyByIP()(c))
}

func TestKeyByIPAndPathIncludesBoth(t *testing.T) {
	c := testCtx("/api/debug/vars", "203.0.113.9:4567")
	require.Equal(t, "rl:path:/api/debug/vars:ip:203.0.113.9", KeyByIPAndPath()(c))
}

func TestKeyByUserID(t *testing.T) {
	c := testCtx("/api/graphql", "203.0.113.9:4567")
	require.Equal(t, "rl:user:anon:ip:203.0.113.9", KeyByUserID()(c))

	c.Set("userID", "42")
	require.Equal(t, "rl:user:42", KeyByUserID()(c))
}

func TestAllowPrivateIP(t *testing.T) {
	require.True(t, AllowPrivateIP()(testCtx("/api/health", "10.1.2.3:1000")))
	require.True(t, AllowPrivateIP()(testCtx("/api/health", "127.0.0.1:1000")))
	require.False(t, AllowPrivateIP()(testCtx("/api/health", "203.0.113.9:1000")))
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	c := testCtx("/api/graphql", "203.0.113.9:4567")
	called := false
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/graphql", RateLimit(nil, 10, 0, KeyByIP(), nil), func(c *gin.Context) {
		called = true
		c.Status(200)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, c.Request)
	require.True(t, called)
	require.Equal(t, 200, w.Code)
}
