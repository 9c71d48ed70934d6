package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/internal/middleware"
	"github.com/yourusername/quizcraft-api/internal/service"
)

// TestHandler обрабатывает запросы, связанные с тестами
type TestHandler struct {
	testService *service.TestService
}

// NewTestHandler создает новый обработчик тестов
func NewTestHandler(testService *service.TestService) *TestHandler {
	return &TestHandler{testService: testService}
}

// CreateTest обрабатывает создание теста
// POST /test
func (h *TestHandler) CreateTest(c *gin.Context) {
	var req dto.TestCreateRequest
	if !helper.BindJSON(c, "Ошибка создания теста", &req) {
		return
	}

	test, err := h.testService.CreateTest(actorGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка создания теста", "Тест не найден")
		return
	}

	c.JSON(http.StatusCreated, helper.ToTestResponse(test))
}

// ListTests возвращает страницу тестов с вложенными вопросами и ответами
// GET /test
func (h *TestHandler) ListTests(c *gin.Context) {
	params, ok := helper.ParseListParams(c, "Ошибка получения списка тестов")
	if !ok {
		return
	}

	count, err := h.testService.Count(params.GUIDs)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка тестов", "Тест не найден")
		return
	}

	tests, err := h.testService.ListTests(params.GUIDs, params.Limit, params.Offset)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка тестов", "Тест не найден")
		return
	}

	helper.SetPaginationHeaders(c, count, params)
	c.JSON(http.StatusOK, helper.ToTestResponses(tests))
}

// GetTest возвращает тест по идентификатору
// GET /test/:id
func (h *TestHandler) GetTest(c *gin.Context) {
	test, err := h.testService.GetTest(pathGUID(c))
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения теста", "Тест не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToTestResponse(test))
}

// UpdateTest полностью заменяет изменяемые поля теста
// PUT /test/:id
func (h *TestHandler) UpdateTest(c *gin.Context) {
	var req dto.TestCreateRequest
	if !helper.BindJSON(c, "Ошибка обновления теста", &req) {
		return
	}

	test, err := h.testService.UpdateTest(actorGUID(c), pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления теста", "Тест не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToTestResponse(test))
}

// PatchTest обновляет только присланные поля теста
// PATCH /test/:id
func (h *TestHandler) PatchTest(c *gin.Context) {
	var req dto.TestPatchRequest
	if !helper.BindJSON(c, "Ошибка обновления теста", &req) {
		return
	}

	test, err := h.testService.PatchTest(actorGUID(c), pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления теста", "Тест не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToTestResponse(test))
}

// DeleteTest помечает тест удаленным
// DELETE /test/:id
func (h *TestHandler) DeleteTest(c *gin.Context) {
	if err := h.testService.DeleteTest(actorGUID(c), pathGUID(c)); err != nil {
		helper.HandleError(c, err, "Ошибка удаления теста", "Тест не найден")
		return
	}

	c.Status(http.StatusNoContent)
}

// actorGUID возвращает GUID действующего пользователя, положенный в контекст
// middleware аутентификации
func actorGUID(c *gin.Context) uuid.UUID {
	return c.MustGet(middleware.ContextUserGUID).(uuid.UUID)
}

// pathGUID возвращает GUID из параметра пути, разобранный middleware
func pathGUID(c *gin.Context) uuid.UUID {
	return c.MustGet(middleware.ContextEntityGUID).(uuid.UUID)
}
