package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/guest_safety_system/internal/config"
	"github.com/shenikar/guest_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Ключи контекста gin, заполняются JWT-middleware
const (
	ctxAccountID   = "account_id"
	ctxAccountRole = "account_role"
	ctxAccountName = "account_name"
)

// APIKeyAuthMiddleware - middleware для аутентификации устройств и интеграций по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warnf("Invalid API key provided: %s", apiKey)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// JWTAuthMiddleware - middleware для сессий персонала: разбирает Bearer-токен
// и кладёт идентификатор, роль и имя сотрудника в контекст запроса
func JWTAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Authorization token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &service.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			log.WithError(err).Warn("Invalid session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxAccountID, claims.Subject)
		c.Set(ctxAccountRole, claims.Role)
		c.Set(ctxAccountName, claims.Name)
		c.Next()
	}
}

// RequireRole пропускает только сотрудников с указанной ролью.
// Проверка прав бизнес-операций дублируется в сервисном слое
func RequireRole(role string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxAccountRole) != role {
			log.WithFields(logrus.Fields{
				"required": role,
				"actual":   c.GetString(ctxAccountRole),
			}).Warn("Request rejected: insufficient role")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}
