package middleware

import (
	"net/http"

	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// claimsKey is the gin context key holding the decoded token claims.
const claimsKey = "authClaims"

// CookieAuth gates a route group on the session cookie. A missing cookie
// and an invalid or expired token both short-circuit with 401; on success
// the decoded claims are attached to the request context.
func CookieAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext retrieves the claims attached by CookieAuth.
func ClaimsFromContext(c *gin.Context) (jwt.MapClaims, bool) {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(jwt.MapClaims)
	return claims, ok
}
