package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shopwave/storefront-api/internal/model"
	"github.com/shopwave/storefront-api/internal/session"
)

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// AuthOptional extracts the user when a valid token is present and otherwise
// lets the request through as a guest session. Cart routes use this: the
// session key falls back to the guest partition when unauthenticated.
func AuthOptional(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, secret)
		c.Next()
	}
}

func authenticate(c *gin.Context, secret string) bool {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}

	token, err := jwt.Parse(header[7:], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return false
	}

	role, _ := claims["role"].(string)
	c.Set("userID", userID)
	c.Set("userRole", role)
	return true
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) uuid.UUID {
	id, _ := c.Get("userID")
	uid, _ := id.(uuid.UUID)
	return uid
}

func GetUserRole(c *gin.Context) string {
	role, _ := c.Get("userRole")
	r, _ := role.(string)
	return r
}

// SessionKey derives the cart storage partition for the request: the user id
// when authenticated, the guest key otherwise.
func SessionKey(c *gin.Context) string {
	if id := GetUserID(c); id != uuid.Nil {
		return id.String()
	}
	return session.GuestKey
}
