package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/shagird-api/internal/config"
	"github.com/yourusername/shagird-api/internal/domain/repository"
	"github.com/yourusername/shagird-api/internal/handler"
	"github.com/yourusername/shagird-api/internal/middleware"
	"github.com/yourusername/shagird-api/internal/service"
	"github.com/yourusername/shagird-api/pkg/monitoring"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newDeps(store repository.Store) Deps {
	metrics := monitoring.New()
	return Deps{
		Logger: zap.NewNop(),
		QuizHandler: handler.NewQuizHandler(
			service.NewQuizService(store, config.QuizConfig{SampleSize: 4}),
			service.NewResultService(store, store, nil, nil),
			metrics,
			nil,
		),
		HealthHandler:   handler.NewHealthHandler(store, nil),
		Metrics:         metrics,
		SubmitRateLimit: middleware.SubmitRateLimitConfig(5, time.Minute),
	}
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSetup_RoutesRegistered(t *testing.T) {
	engine := Setup(newDeps(repository.Unavailable{Cause: errors.New("offline")}))

	routes := map[string]bool{}
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /subjects",
		"GET /quiz/:subject",
		"POST /submit",
		"GET /my-progress/:userId",
		"GET /my-progress/:userId/export",
		"GET /health",
		"GET /metrics",
	} {
		assert.True(t, routes[want], "route %s is not registered", want)
	}
}

func TestSetup_HeadersAndRequestID(t *testing.T) {
	engine := Setup(newDeps(repository.Unavailable{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://frontend.example.com")
	w := serve(engine, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	// Переданный клиентом идентификатор возвращается без изменений
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w = serve(engine, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestSetup_CORSPreflight(t *testing.T) {
	engine := Setup(newDeps(repository.Unavailable{}))

	req := httptest.NewRequest(http.MethodOptions, "/submit", nil)
	req.Header.Set("Origin", "https://frontend.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := serve(engine, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetup_HealthReflectsStore(t *testing.T) {
	engine := Setup(newDeps(repository.Unavailable{}))

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSetup_MetricsExposeRequests(t *testing.T) {
	engine := Setup(newDeps(repository.Unavailable{}))

	serve(engine, httptest.NewRequest(http.MethodGet, "/", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/quiz/maths", nil))

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{endpoint="/",method="GET",status="200"} 1`)
	assert.Contains(t, body, `http_requests_total{endpoint="/quiz/:subject",method="GET",status="500"} 1`)
}

func TestSetup_SubmitRateLimiterFailsOpen(t *testing.T) {
	// Redis недоступен: лимитер пропускает запрос дальше
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:       []string{"127.0.0.1:1"},
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	deps := newDeps(repository.Unavailable{})
	deps.RateLimiter = middleware.NewRateLimiter(client, nil)
	engine := Setup(deps)

	req := httptest.NewRequest(http.MethodPost, "/submit",
		strings.NewReader(`{"answers":{"q1":"B"},"subject":"maths","userId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(engine, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Database not connected"}`, w.Body.String())
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
