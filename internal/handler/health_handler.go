package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yourusername/quizcraft-api/internal/handler/helper"
)

// HealthHandler отвечает на пробы готовности сервиса
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler создает новый обработчик проверки здоровья
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check проверяет доступность базы данных через таблицу версий миграций:
// успешный ответ подтверждает и соединение, и что схема была накачена.
// GET /health, HEAD /health
func (h *HealthHandler) Check(c *gin.Context) {
	var version int64
	if err := h.db.Raw("SELECT version FROM schema_migrations").Scan(&version).Error; err != nil {
		log.Printf("[HealthHandler] Проверка здоровья не пройдена: %v", err)
		helper.Error(c, http.StatusServiceUnavailable, "Сервис недоступен",
			"База данных не отвечает")
		return
	}

	c.Status(http.StatusNoContent)
}
