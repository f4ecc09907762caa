package jwtmw

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID は検証済みトークンの主体（ユーザーID, uint）を保持するコンテキストキーです。
const ContextUserID = "userID"

const (
	msgAuthRequired = "Authentication required."
	msgInvalidToken = "Invalid token."
)

// OptionalAuth はBearerトークンがあれば検証し、無ければそのまま通過させます。
// トークンが付与されていて不正な場合は401を返します。
func OptionalAuth(secret string) gin.HandlerFunc {
	return authenticate([]byte(secret), false)
}

// RequireAuth はBearerトークンを必須とし、認証済みユーザーのみ通過させます。
func RequireAuth(secret string) gin.HandlerFunc {
	return authenticate([]byte(secret), true)
}

func authenticate(secret []byte, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if auth == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgAuthRequired})
				return
			}
			c.Next()
			return
		}
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature, issuer and expiry
		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			slog.Warn("token rejected", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
			return
		}

		// 3. Store the subject for handlers that match it against userId
		userID, _ := claims.UserID()
		c.Set(ContextUserID, userID)

		c.Next()
	}
}
