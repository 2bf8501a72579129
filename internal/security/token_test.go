package security_test

import (
	"testing"
	"time"

	"go-crm/internal/domain"
	"go-crm/internal/security"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newClaims(purpose security.Purpose) security.Claims {
	return security.Claims{
		Email:   "alice@x.com",
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-1",
		},
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := security.NewTokenService("secret", security.WithClock(fixedClock(t0)))

	t.Run("success", func(t *testing.T) {
		claims := newClaims(security.PurposeAccess)
		claims.Organizations = []domain.Membership{{OrganizationID: "org-1", Role: domain.RoleSales}}
		claims.OrganizationID = "org-1"

		token, err := svc.Issue(claims, time.Hour)
		assert.NoError(t, err)

		got, err := svc.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", got.UserID())
		assert.Equal(t, "alice@x.com", got.Email)
		assert.Equal(t, t0.UnixMilli(), got.CreatedAt)
		assert.Equal(t, "org-1", got.OrganizationID)
		assert.True(t, got.HasOrganization("org-1"))
		assert.False(t, got.HasOrganization("org-2"))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := security.NewTokenService("other", security.WithClock(fixedClock(t0)))
		token, _ := other.Issue(newClaims(security.PurposeVerify), time.Hour)

		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, security.ErrInvalidToken)
	})

	t.Run("embedded expiry", func(t *testing.T) {
		token, _ := svc.Issue(newClaims(security.PurposeVerify), time.Minute)

		later := security.NewTokenService("secret", security.WithClock(fixedClock(t0.Add(2*time.Minute))))
		_, err := later.Verify(token)
		assert.ErrorIs(t, err, security.ErrTokenExpired)
	})
}

func TestTokenService_CheckAge(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	issuer := security.NewTokenService("secret", security.WithClock(fixedClock(t0)))
	token, _ := issuer.Issue(newClaims(security.PurposeVerify), 24*time.Hour)

	t.Run("within an hour", func(t *testing.T) {
		svc := security.NewTokenService("secret", security.WithClock(fixedClock(t0.Add(59*time.Minute))))
		claims, err := svc.Verify(token)
		assert.NoError(t, err)
		assert.NoError(t, svc.CheckAge(claims, security.OneTimeTokenMaxAge))
	})

	t.Run("older than an hour but exp still valid", func(t *testing.T) {
		svc := security.NewTokenService("secret", security.WithClock(fixedClock(t0.Add(time.Hour+time.Millisecond))))
		claims, err := svc.Verify(token)
		assert.NoError(t, err)
		assert.ErrorIs(t, svc.CheckAge(claims, security.OneTimeTokenMaxAge), security.ErrTokenExpired)
	})

	t.Run("nil claims", func(t *testing.T) {
		assert.ErrorIs(t, issuer.CheckAge(nil, time.Hour), security.ErrInvalidToken)
	})
}
