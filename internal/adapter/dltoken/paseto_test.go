package dltoken_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valdes557/digitalmarket/internal/adapter/dltoken"
	"github.com/valdes557/digitalmarket/internal/core/domain"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc, err := dltoken.New()
	assert.NoError(t, err)

	claims := domain.DownloadClaims{OrderItemID: 200, ProductID: 10, UserID: 1}

	token, err := svc.Issue(claims, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, claims.OrderItemID, got.OrderItemID)
	assert.Equal(t, claims.ProductID, got.ProductID)
	assert.Equal(t, claims.UserID, got.UserID)
	assert.False(t, got.IssuedAt.IsZero())
}

func TestVerifyExpiredToken(t *testing.T) {
	svc, err := dltoken.New()
	assert.NoError(t, err)

	token, err := svc.Issue(domain.DownloadClaims{OrderItemID: 200}, -time.Second)
	assert.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidDownloadToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	svc, err := dltoken.New()
	assert.NoError(t, err)

	token, err := svc.Issue(domain.DownloadClaims{OrderItemID: 200}, time.Hour)
	assert.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidDownloadToken)
}

func TestVerifyForeignKeyToken(t *testing.T) {
	issuer, err := dltoken.New()
	assert.NoError(t, err)
	verifier, err := dltoken.New()
	assert.NoError(t, err)

	token, err := issuer.Issue(domain.DownloadClaims{OrderItemID: 200}, time.Hour)
	assert.NoError(t, err)

	// each instance holds its own key, so tokens do not cross services
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidDownloadToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc, err := dltoken.New()
	assert.NoError(t, err)

	for _, raw := range []string{"", "not-a-token", "v4.local.AAAA"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidDownloadToken)
	}
}
