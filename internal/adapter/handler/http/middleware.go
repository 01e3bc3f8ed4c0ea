package http

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

// RateLimiter counts attempts per subject within a scope. Implementations
// fail open: an error from the backing store never blocks the request.
type RateLimiter interface {
	Allow(ctx context.Context, scope string, subject string) (bool, error)
}

func authCheck(tokenService port.TokenService, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

// roleCheck runs after authCheck and rejects callers outside the listed roles.
func roleCheck(h *Handler, roles ...domain.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload := getAuthPayload(ctx)
		for _, role := range roles {
			if payload.Role == role {
				ctx.Next()
				return
			}
		}
		h.handleAbort(ctx, domain.ErrForbidden)
	}
}

// rateLimit throttles by client IP. The entitlement quota is the hard limit,
// this only dampens brute-force probing of redemption URLs.
func rateLimit(limiter RateLimiter, scope string, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if limiter == nil {
			ctx.Next()
			return
		}

		allowed, err := limiter.Allow(ctx, scope, ctx.ClientIP())
		if err != nil {
			// the limiter fails open, a broken backend must not block downloads
			h.logger.Warn("rate limiter unavailable", zap.Error(err))
			allowed = true
		}
		if !allowed {
			h.handleAbort(ctx, domain.ErrDownloadRateLimited)
			return
		}
		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}
