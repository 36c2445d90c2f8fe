package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"payment-config-service/internal/models"
)

// Claims are the token claims the admin panel issues at login.
type Claims struct {
	UserID   uint   `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
	jwt.RegisteredClaims
}

// Paths served without a token. Health probes and the swagger UI must
// stay reachable for orchestration and developers.
var skipAuthPrefixes = []string{
	"/health",
	"/ready",
	"/metrics",
	"/swagger",
	"/api/v1/auth/login",
}

// AuthMiddleware validates the bearer token and rejects accounts that
// have not verified their email address.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, prefix := range skipAuthPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "MISSING_TOKEN", "Authorization header is required")
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			abortUnauthorized(c, "INVALID_TOKEN_FORMAT", "Authorization header must be in format: Bearer <token>")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "INVALID_TOKEN", "Token is invalid or expired")
			return
		}

		if !claims.Verified {
			abortForbidden(c, "EMAIL_NOT_VERIFIED", "Email address must be verified before using the API")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_name", claims.Name)
		c.Next()
	}
}

// ActorFrom returns the authenticated user's email for audit columns,
// empty when the request is unauthenticated (tests, internal calls).
func ActorFrom(c *gin.Context) string {
	if email, ok := c.Get("user_email"); ok {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Success:   false,
		Error:     models.Error{Code: code, Message: message},
		RequestID: c.GetString(RequestIDKey),
	})
}

func abortForbidden(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
		Success:   false,
		Error:     models.Error{Code: code, Message: message},
		RequestID: c.GetString(RequestIDKey),
	})
}
