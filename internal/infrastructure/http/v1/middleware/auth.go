package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/auth"
)

// JWTValidator interface for token validation.
type JWTValidator interface {
	ValidateToken(tokenString string) (*auth.Identity, error)
}

// identityKey is the context key for the authenticated identity.
type identityKey struct{}

// Auth middleware validates JWT tokens and populates the caller identity.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		identity, err := validator.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", identity.UserID)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}

// WithIdentity stores the authenticated identity in the context.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity returns the authenticated identity from context, or nil.
func GetIdentity(ctx context.Context) *auth.Identity {
	if identity, ok := ctx.Value(identityKey{}).(*auth.Identity); ok {
		return identity
	}
	return nil
}
