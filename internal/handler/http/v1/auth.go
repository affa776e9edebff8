package v1

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/community_map_system/internal/config"
	"github.com/sirupsen/logrus"
)

// AdminAuthMiddleware - middleware для админских маршрутов. Единая общая учетка
// (аккаунт + PIN) передается заголовками с каждым запросом, сессий нет.
func AdminAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := c.GetHeader("X-Admin-Account")
		pin := c.GetHeader("X-Admin-Pin")

		if account == "" || pin == "" {
			log.Warn("Admin credential missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin credential required"})
			return
		}

		accountOK := subtle.ConstantTimeCompare([]byte(account), []byte(cfg.AdminAccount)) == 1
		pinOK := subtle.ConstantTimeCompare([]byte(pin), []byte(cfg.AdminPin)) == 1
		if !accountOK || !pinOK {
			log.Warn("Invalid admin credential provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid account or PIN"})
			return
		}

		c.Next()
	}
}
