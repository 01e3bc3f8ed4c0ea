package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubLimiter struct {
	allowed bool
	err     error
}

func (s *stubLimiter) Allow(_ context.Context, _ string, _ string) (bool, error) {
	return s.allowed, s.err
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name    string
		limiter RateLimiter
		expCode int
	}{
		{
			name:    "No limiter configured",
			limiter: nil,
			expCode: http.StatusOK,
		},
		{
			name:    "Under the limit",
			limiter: &stubLimiter{allowed: true},
			expCode: http.StatusOK,
		},
		{
			name:    "Over the limit",
			limiter: &stubLimiter{allowed: false},
			expCode: http.StatusTooManyRequests,
		},
		{
			name:    "Limiter backend down, request passes",
			limiter: &stubLimiter{allowed: false, err: errors.New("dial tcp: connection refused")},
			expCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			h := NewHandler(zap.NewNop())
			router.GET("/file", rateLimit(tc.limiter, "download", h), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/file", nil)
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expCode, rec.Code)
		})
	}
}
