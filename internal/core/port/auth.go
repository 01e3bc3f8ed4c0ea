package port

import (
	"time"

	"github.com/valdes557/digitalmarket/internal/core/domain"
)

type TokenPayload struct {
	UserID uint64
	Login  string
	Role   domain.UserRole
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}

// DownloadTokenService issues and verifies capability tokens for file
// redemption. Verify fails closed: tampering, a foreign key and expiry are
// indistinguishable to the caller.
type DownloadTokenService interface {
	Issue(claims domain.DownloadClaims, ttl time.Duration) (string, error)
	Verify(token string) (*domain.DownloadClaims, error)
}
