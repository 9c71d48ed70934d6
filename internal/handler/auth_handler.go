package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/internal/service"
)

// AuthHandler обрабатывает вход через Google
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login обменивает Google ID-токен на токен доступа API.
// При первом входе пользователь заводится автоматически.
// GET /auth?token={google_id_token}
func (h *AuthHandler) Login(c *gin.Context) {
	idToken := c.Query("token")
	if idToken == "" {
		helper.Error(c, http.StatusBadRequest, "Ошибка работы с авторизацией",
			"Параметр token обязателен")
		return
	}

	accessToken, err := h.authService.Login(c.Request.Context(), idToken)
	if err != nil {
		helper.HandleError(c, err, "Ошибка работы с авторизацией", "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}
