package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("request_id")
		c.Status(200)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	require.NotEmpty(t, got)
	require.Equal(t, got, w.Header().Get("X-Request-ID"))
}

func TestRequestIDReusesInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	var got string
	r.GET("/", func(c *gin.Context) {
		got = c.GetString("request_id")
		c.Status(200)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id-1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	require.Equal(t, "upstream-id-1", got)

	// oversized ids are replaced rather than propagated
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 65))
	r.ServeHTTP(httptest.NewRecorder(), req)
	require.NotEqual(t, strings.Repeat("x", 65), got)
	require.NotEmpty(t, got)
}
