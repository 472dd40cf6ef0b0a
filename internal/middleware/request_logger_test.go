package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{"ok", http.StatusOK, zapcore.InfoLevel, "request processed"},
		{"client error", http.StatusBadRequest, zapcore.WarnLevel, "client error"},
		{"server error", http.StatusInternalServerError, zapcore.ErrorLevel, "server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			engine := gin.New()
			engine.Use(RequestLogger(zap.New(core)))
			engine.GET("/status", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, tt.wantMsg, entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, "/status", fields["path"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), fields["request_id"])
		})
	}
}

func TestSubmitRateLimitConfig(t *testing.T) {
	cfg := SubmitRateLimitConfig(30, 0)
	assert.Equal(t, 30, cfg.MaxRequests)
	assert.Equal(t, "rl:submit", cfg.KeyPrefix)
}
