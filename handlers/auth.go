package handlers

import (
	"net/http"

	"cardoctor/config"
	"cardoctor/middleware"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssueTokenHandler handles POST /jwt. The request body is an arbitrary
// claims object, signed as-is with a 4-hour expiry and set as an
// HTTP-only, cross-site cookie.
func IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid claims payload", "")
		return
	}

	token, err := utils.GenerateToken(claims)
	if err != nil {
		logger.Error("IssueToken: signing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Token generation failed",
		})
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookieName, token, int(utils.TokenTTL.Seconds()), "/", "", config.AppConfig.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// LogoutHandler handles POST /logout. The cookie is cleared client-side
// only; an exfiltrated token stays valid until its natural expiry.
func LogoutHandler(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", config.AppConfig.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
