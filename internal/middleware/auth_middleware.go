package middleware

import (
	"errors"
	"strings"

	autherrors "go-crm/internal/auth/errors"
	"go-crm/internal/domain"
	"go-crm/internal/security"
	"go-crm/internal/shared/apperror"
	"go-crm/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID         = "user_id"
	ContextEmail          = "email"
	ContextUserType       = "user_type"
	ContextOrganizationID = "organization_id"
	ContextRoles          = "roles"
	ContextClaims         = "claims"
)

// AuthMiddleware accepts an access token from the Authorization header, or
// the access_token cookie, and copies its identity claims into the context.
func AuthMiddleware(tokens security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrMissingToken)
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			if errors.Is(err, security.ErrTokenExpired) {
				abortWith(c, autherrors.ErrSessionExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidSession)
			return
		}

		if claims.Purpose != security.PurposeAccess {
			abortWith(c, autherrors.ErrInvalidSession)
			return
		}

		c.Set(ContextUserID, claims.UserID())
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextUserType, string(claims.UserType))
		c.Set(ContextOrganizationID, claims.OrganizationID)
		c.Set(ContextRoles, claims.Roles)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireUserType lets the request through only for the listed account tiers.
func RequireUserType(allowed ...domain.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userType := domain.UserType(c.GetString(ContextUserType))
		for _, t := range allowed {
			if userType == t {
				c.Next()
				return
			}
		}
		abortWith(c, autherrors.ErrForbidden)
	}
}

// RequireOrganization rejects tokens that carry no active organization.
func RequireOrganization() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextOrganizationID) == "" {
			abortWith(c, apperror.ErrNoActiveOrganization)
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by AuthMiddleware.
func ClaimsFrom(c *gin.Context) (*security.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*security.Claims)
	return claims, ok && claims != nil
}

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}
