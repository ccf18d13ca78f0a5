package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/internal/api/constants"
	"portfolio/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newLogger(t *testing.T, buf *bytes.Buffer, requests bool) *logging.Logger {
	t.Helper()
	logger, err := logging.NewLogger(&logging.Config{Level: logging.LevelDebug, Output: buf, Requests: requests})
	require.NoError(t, err)
	return logger
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name     string
		expose   bool
		panicVal interface{}
		want     string
	}{
		{"string panic exposed", true, "boom", `{"code":500,"status":"Internal server error","error":"boom"}`},
		{"error panic exposed", true, assert.AnError, `{"code":500,"status":"Internal server error","error":"` + assert.AnError.Error() + `"}`},
		{"details hidden", false, "secret state", `{"code":500,"status":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			router := gin.New()
			router.Use(Recovery(newLogger(t, &buf, false), tt.expose))
			router.GET("/panic", func(c *gin.Context) {
				panic(tt.panicVal)
			})

			rec := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
			assert.Contains(t, buf.String(), "[PANIC]")
		})
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyRequestID))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderRequestID, "abc-123")
	rec := serve(router, req)
	assert.Equal(t, "abc-123", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get(constants.HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderRequestID, strings.Repeat("x", maxRequestIDLength+1))
	rec = serve(router, req)
	assert.Len(t, rec.Body.String(), 36)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestID(), RequestLogger(newLogger(t, &buf, true)))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Contains(t, buf.String(), "/ping")
	assert.Contains(t, buf.String(), "204")

	buf.Reset()
	quiet := gin.New()
	quiet.Use(RequestLogger(newLogger(t, &buf, false)))
	quiet.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	serve(quiet, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotContains(t, buf.String(), "/ping")
}

func TestLimitRequestBody(t *testing.T) {
	router := gin.New()
	router.Use(LimitRequestBody(8))
	router.POST("/", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"0123456789"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"code":413,"status":"Request body too large"}`, rec.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders(true))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Strict-Transport-Security"))

	router = gin.New()
	router.Use(SecurityHeaders(false))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	rec = serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestCORSWildcard(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{" * "}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	rec := serve(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://anywhere.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterPerClient(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(RateLimitConfig{RPS: 1, Burst: 2, IdleTTL: time.Minute})
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	for i := 0; i < 2; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		require.True(t, ok)
	}
	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Second, retry)
	assert.Equal(t, 0, rl.Remaining("10.0.0.1"))

	// Another client has its own bucket
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)

	// Tokens refill over time
	now = now.Add(time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(RateLimitConfig{RPS: 1, Burst: 1, IdleTTL: time.Minute})
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	rl.Allow("10.0.0.1")
	require.Len(t, rl.clients, 1)

	now = now.Add(2 * time.Minute)
	rl.Allow("10.0.0.2")
	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware(RateLimitConfig{RPS: 0, Burst: 1}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		rec := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
