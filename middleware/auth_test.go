package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cardoctor/config"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatedRouter(t *testing.T) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()
	r.GET("/bookings", CookieAuth(), func(c *gin.Context) {
		reached = true
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": claims["email"]})
	})
	return r, &reached
}

func TestCookieAuthMissingCookie(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r, reached := gatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized")
	assert.False(t, *reached)
}

func TestCookieAuthInvalidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r, reached := gatedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "garbage.token.value"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
	assert.False(t, *reached)
}

func TestCookieAuthValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r, reached := gatedRouter(t)

	token, err := utils.GenerateToken(map[string]interface{}{"email": "a@b.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")
	assert.True(t, *reached)
}
