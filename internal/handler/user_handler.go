package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser обрабатывает создание пользователя
// POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserCreateRequest
	if !helper.BindJSON(c, "Ошибка создания пользователя", &req) {
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка создания пользователя", "Пользователь не найден")
		return
	}

	c.JSON(http.StatusCreated, helper.ToUserResponse(user))
}

// ListUsers возвращает страницу пользователей
// GET /user
func (h *UserHandler) ListUsers(c *gin.Context) {
	params, ok := helper.ParseListParams(c, "Ошибка получения списка пользователей")
	if !ok {
		return
	}

	count, err := h.userService.Count(params.GUIDs)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка пользователей", "Пользователь не найден")
		return
	}

	users, err := h.userService.ListUsers(params.GUIDs, params.Limit, params.Offset)
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения списка пользователей", "Пользователь не найден")
		return
	}

	helper.SetPaginationHeaders(c, count, params)
	c.JSON(http.StatusOK, helper.ToUserResponses(users))
}

// GetUser возвращает пользователя по идентификатору
// GET /user/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(pathGUID(c))
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения пользователя", "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToUserResponse(user))
}

// GetUserByEmail возвращает пользователя по адресу электронной почты
// GET /user/email/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetUserByEmail(c.Param("email"))
	if err != nil {
		helper.HandleError(c, err, "Ошибка получения пользователя", "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToUserResponse(user))
}

// UpdateUser полностью заменяет изменяемые поля пользователя
// PUT /user/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UserCreateRequest
	if !helper.BindJSON(c, "Ошибка обновления пользователя", &req) {
		return
	}

	user, err := h.userService.UpdateUser(pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления пользователя", "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToUserResponse(user))
}

// PatchUser обновляет только присланные поля пользователя
// PATCH /user/:id
func (h *UserHandler) PatchUser(c *gin.Context) {
	var req dto.UserPatchRequest
	if !helper.BindJSON(c, "Ошибка обновления пользователя", &req) {
		return
	}

	user, err := h.userService.PatchUser(pathGUID(c), &req)
	if err != nil {
		helper.HandleError(c, err, "Ошибка обновления пользователя", "Пользователь не найден")
		return
	}

	c.JSON(http.StatusOK, helper.ToUserResponse(user))
}

// DeleteUser помечает пользователя удаленным
// DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(pathGUID(c)); err != nil {
		helper.HandleError(c, err, "Ошибка удаления пользователя", "Пользователь не найден")
		return
	}

	c.Status(http.StatusNoContent)
}
