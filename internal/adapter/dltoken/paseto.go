// Package dltoken issues the capability tokens that gate file redemption.
// A token binds (order item, product, buyer) with an expiry and is
// self-contained: verification needs no storage lookup. It only proves who
// asked for the link; quota and ownership are re-checked on redemption.
package dltoken

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
)

const claimKey = "download"

type PasetoIssuer struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func New() (port.DownloadTokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	s := PasetoIssuer{
		parser: &parser,
		key:    &key,
	}

	return &s, nil
}

func (p *PasetoIssuer) Issue(claims domain.DownloadClaims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = now

	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(ttl))

	if err := token.Set(claimKey, claims); err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*p.key, nil), nil
}

// Verify fails closed: a malformed token, a token sealed with another key and
// an expired token all come back as the same ErrInvalidDownloadToken.
func (p *PasetoIssuer) Verify(token string) (*domain.DownloadClaims, error) {
	parsedToken, err := p.parser.ParseV4Local(*p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidDownloadToken
	}

	claims := domain.DownloadClaims{}
	if err := parsedToken.Get(claimKey, &claims); err != nil {
		return nil, domain.ErrInvalidDownloadToken
	}
	return &claims, nil
}
