package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/telegram-webapp/sdk/internal/logger"
)

// maxInitDataLen rejects absurd payloads before any crypto work.
const maxInitDataLen = 4096

// ContextUserKey is the gin context key the middleware stores the
// authenticated Telegram user ID under.
const ContextUserKey = "tg_user_id"

// LoginRequest is the body of the login endpoint.
type LoginRequest struct {
	InitData string `json:"init_data" binding:"required"`
}

// LoginHandler exchanges valid init data for a session token. On success
// it responds with the token and the authenticated user.
func LoginHandler(botToken string, issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if len(req.InitData) > maxInitDataLen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "init_data too long"})
			return
		}

		data, err := Authenticate(req.InitData, botToken, DefaultMaxAge)
		if err != nil {
			logger.Debug("auth: login rejected", "err", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid init data"})
			return
		}

		token, err := issuer.Issue(data.User.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"user": gin.H{
				"id":         data.User.ID,
				"first_name": data.User.FirstName,
				"username":   data.User.Username,
			},
			"expires_in": int64((24 * time.Hour).Seconds()),
		})
	}
}

// Middleware authenticates requests carrying "Authorization: Bearer"
// session tokens and stores the user ID in the gin context under
// ContextUserKey.
func Middleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		userID, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}
