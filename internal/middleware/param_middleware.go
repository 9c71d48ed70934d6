package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/handler/helper"
)

// ContextEntityGUID - ключ контекста Gin для GUID сущности из пути запроса
const ContextEntityGUID = "entity_guid"

// ExtractUUIDParam создает middleware для извлечения UUID из параметра пути.
// Разобранное значение сохраняется в контексте под указанным ключом.
func ExtractUUIDParam(paramName string, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		guid, err := uuid.Parse(raw)
		if err != nil {
			helper.Error(c, http.StatusBadRequest, "Ошибка разбора параметров запроса",
				"Параметр "+paramName+" должен быть корректным UUID")
			return
		}

		c.Set(contextKey, guid)
		c.Next()
	}
}
