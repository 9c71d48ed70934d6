package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/internal/service"
)

// AnswerHandler обрабатывает запросы, связанные с ответами
type AnswerHandler struct {
	answerService *service.AnswerService
}

// NewAnswerHandler создает новый обработчик ответов
func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// CreateAnswer обрабатывает создание ответа
// POST /answer
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var req dto.AnswerCreateRequest
	if !helper.BindJSON(c, "Ошибка создания ответа", &req) {
		return
	}

	answer, err := h.answerService.CreateAnswer(actorGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка создания ответа", "Ответ не найден")
		return
	}

	c.JSON(http.StatusCreated, helper.ToAnswerResponse(answer))
}

// ListAnswers возвращает страницу ответов
// GET /answer
func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	params, ok := helper.ParseListParams(c, "Ошибка получения списка ответов")
	if !ok {
		return
	}

	count, err := h.answerService.Count(params.GUIDs)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка ответов", "Ответ не найден")
		return
	}

	answers, err := h.answerService.ListAnswers(params.GUIDs, params.Limit, params.Offset)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка ответов", "Ответ не найден")
		return
	}

	helper.SetPaginationHeaders(c, count, params)
	c.JSON(http.StatusOK, helper.ToAnswerResponses(answers))
}

// GetAnswer возвращает ответ по идентификатору
// GET /answer/:id
func (h *AnswerHandler) GetAnswer(c *gin.Context) {
	answer, err := h.answerService.GetAnswer(pathGUID(c))
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения ответа", "Ответ не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToAnswerResponse(answer))
}

// UpdateAnswer полностью заменяет изменяемые поля ответа
// PUT /answer/:id
func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
	var req dto.AnswerCreateRequest
	if !helper.BindJSON(c, "Ошибка обновления ответа", &req) {
		return
	}

	answer, err := h.answerService.UpdateAnswer(actorGUID(c), pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления ответа", "Ответ не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToAnswerResponse(answer))
}

// PatchAnswer обновляет только присланные поля ответа
// PATCH /answer/:id
func (h *AnswerHandler) PatchAnswer(c *gin.Context) {
	var req dto.AnswerPatchRequest
	if !helper.BindJSON(c, "Ошибка обновления ответа", &req) {
		return
	}

	answer, err := h.answerService.PatchAnswer(actorGUID(c), pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления ответа", "Ответ не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToAnswerResponse(answer))
}

// DeleteAnswer помечает ответ удаленным
// DELETE /answer/:id
func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	if err := h.answerService.DeleteAnswer(actorGUID(c), pathGUID(c)); err != nil {
		helper.HandleError(c, err, "Ошибка удаления ответа", "Ответ не найден")
		return
	}

	c.Status(http.StatusNoContent)
}
