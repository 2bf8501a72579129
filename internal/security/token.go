package security

import (
	"errors"
	"time"

	"go-crm/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// OneTimeTokenMaxAge bounds verification and reset tokens, measured from the
// created_at claim rather than exp.
const OneTimeTokenMaxAge = time.Hour

type Purpose string

const (
	PurposeAccess Purpose = "access"
	PurposeVerify Purpose = "verify"
	PurposeInvite Purpose = "invite"
	PurposeReset  Purpose = "reset"
)

type Claims struct {
	Email          string              `json:"email"`
	Name           string              `json:"name,omitempty"`
	UserType       domain.UserType     `json:"user_type,omitempty"`
	Purpose        Purpose             `json:"purpose"`
	CreatedAt      int64               `json:"created_at"`
	Roles          []string            `json:"roles,omitempty"`
	Organizations  []domain.Membership `json:"organizations,omitempty"`
	OrganizationID string              `json:"organization_id,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}

// HasOrganization reports whether the claims list orgID as a membership.
func (c *Claims) HasOrganization(orgID string) bool {
	for _, m := range c.Organizations {
		if m.OrganizationID == orgID {
			return true
		}
	}
	return false
}

type TokenService interface {
	Issue(claims Claims, ttl time.Duration) (string, error)
	Verify(token string) (*Claims, error)
	CheckAge(claims *Claims, maxAge time.Duration) error
}

type TokenOption func(*tokenService)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

type tokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string, opts ...TokenOption) TokenService {
	s := &tokenService{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *tokenService) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := s.now()
	if claims.CreatedAt == 0 {
		claims.CreatedAt = now.UnixMilli()
	}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CheckAge fails with ErrTokenExpired once now - created_at exceeds maxAge,
// independently of the exp claim.
func (s *tokenService) CheckAge(claims *Claims, maxAge time.Duration) error {
	if claims == nil {
		return ErrInvalidToken
	}
	age := s.now().UnixMilli() - claims.CreatedAt
	if age > maxAge.Milliseconds() {
		return ErrTokenExpired
	}
	return nil
}
