package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/pkg/auth"
)

// ContextUserGUID - ключ контекста Gin, под которым хранится GUID действующего пользователя
const ContextUserGUID = "user_guid"

// AuthMiddleware обеспечивает аутентификацию для защищенных маршрутов
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAuth проверяет токен доступа из заголовка Authorization и кладет
// GUID действующего пользователя в контекст. Один и тот же разбор токена
// служит и допуском, и источником субъекта для audit-полей.
// Любой отказ - 401 с челленджем WWW-Authenticate: Bearer.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.unauthorized(c)
			return
		}

		// Проверяем формат заголовка Bearer {token}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.unauthorized(c)
			return
		}

		claims, err := m.jwtService.ParseToken(parts[1])
		if err != nil {
			m.unauthorized(c)
			return
		}

		guid, err := claims.UserGUID()
		if err != nil {
			m.unauthorized(c)
			return
		}

		c.Set(ContextUserGUID, guid)
		c.Next()
	}
}

func (m *AuthMiddleware) unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	helper.Error(c, http.StatusUnauthorized, "Ошибка работы с авторизацией", helper.MsgUnauthorized)
}
