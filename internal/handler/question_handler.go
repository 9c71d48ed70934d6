package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// CreateQuestion обрабатывает создание вопроса
// POST /question
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.QuestionCreateRequest
	if !helper.BindJSON(c, "Ошибка создания вопроса", &req) {
		return
	}

	question, err := h.questionService.CreateQuestion(actorGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка создания вопроса", "Вопрос не найден")
		return
	}

	c.JSON(http.StatusCreated, helper.ToQuestionResponse(question))
}

// ListQuestions возвращает страницу вопросов с вложенными ответами
// GET /question
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	params, ok := helper.ParseListParams(c, "Ошибка получения списка вопросов")
	if !ok {
		return
	}

	count, err := h.questionService.Count(params.GUIDs)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка вопросов", "Вопрос не найден")
		return
	}

	questions, err := h.questionService.ListQuestions(params.GUIDs, params.Limit, params.Offset)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка вопросов", "Вопрос не найден")
		return
	}

	helper.SetPaginationHeaders(c, count, params)
	c.JSON(http.StatusOK, helper.ToQuestionResponses(questions))
}

// GetQuestion возвращает вопрос по идентификатору
// GET /question/:id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.questionService.GetQuestion(pathGUID(c))
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения вопроса", "Вопрос не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToQuestionResponse(question))
}

// UpdateQuestion полностью заменяет изменяемые поля вопроса
// PUT /question/:id
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req dto.QuestionCreateRequest
	if !helper.BindJSON(c, "Ошибка обновления вопроса", &req) {
		return
	}

	question, err := h.questionService.UpdateQuestion(actorGUID(c), pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления вопроса", "Вопрос не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToQuestionResponse(question))
}

// PatchQuestion обновляет только присланные поля вопроса
// PATCH /question/:id
func (h *QuestionHandler) PatchQuestion(c *gin.Context) {
	var req dto.QuestionPatchRequest
	if !helper.BindJSON(c, "Ошибка обновления вопроса", &req) {
		return
	}

	question, err := h.questionService.PatchQuestion(actorGUID(c), pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления вопроса", "Вопрос не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToQuestionResponse(question))
}

// DeleteQuestion помечает вопрос удаленным
// DELETE /question/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	if err := h.questionService.DeleteQuestion(actorGUID(c), pathGUID(c)); err != nil {
		helper.HandleError(c, err, "Ошибка удаления вопроса", "Вопрос не найден")
		return
	}

	c.Status(http.StatusNoContent)
}
