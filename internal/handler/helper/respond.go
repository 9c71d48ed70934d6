package helper

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// Заголовки пагинации списочных ответов
const (
	PaginationCountHeader  = "X-Pagination-Count"
	PaginationOffsetHeader = "X-Pagination-Offset"
	PaginationLimitHeader  = "X-Pagination-Limit"
)

// Границы параметров пагинации
const (
	DefaultLimit = 30
	MaxLimit     = 1000
	MaxOffset    = math.MaxInt32
)

// Тексты деталей ошибок, не зависящие от эндпоинта
const (
	MsgInternal     = "Отказано в обработке из-за неизвестной ошибки на сервере"
	MsgUnauthorized = "Неверный токен авторизации"
	MsgConflict     = "Запись с такими данными уже существует"
)

// ErrorDetail - одна структурированная под-ошибка
type ErrorDetail struct {
	Message string `json:"message"`
}

// ErrorResponse - общий конверт всех ошибок API: человекочитаемое сообщение
// верхнего уровня плюс список структурированных под-ошибок
type ErrorResponse struct {
	Message string        `json:"message"`
	Errors  []ErrorDetail `json:"errors"`
}

// Error пишет конверт ошибки с указанным статусом
func Error(c *gin.Context, status int, message string, details ...string) {
	resp := ErrorResponse{Message: message, Errors: make([]ErrorDetail, 0, len(details))}
	for _, d := range details {
		resp.Errors = append(resp.Errors, ErrorDetail{Message: d})
	}
	c.AbortWithStatusJSON(status, resp)
}

// HandleError транслирует ошибку сервисного слоя в HTTP-ответ.
// endpointMsg - сообщение верхнего уровня для данного эндпоинта,
// notFoundDetail - деталь для 404 с указанием вида сущности.
func HandleError(c *gin.Context, err error, endpointMsg, notFoundDetail string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		Error(c, http.StatusNotFound, endpointMsg, notFoundDetail)
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.Header("WWW-Authenticate", "Bearer")
		Error(c, http.StatusUnauthorized, endpointMsg, MsgUnauthorized)
	case errors.Is(err, apperrors.ErrConflict):
		Error(c, http.StatusConflict, endpointMsg, MsgConflict)
	default:
		// Детали внутренних ошибок не утекают клиенту, только в лог
		log.Printf("[API] Внутренняя ошибка %s %s: %v", c.Request.Method, c.FullPath(), err)
		Error(c, http.StatusInternalServerError, endpointMsg, MsgInternal)
	}
}

// BindJSON разбирает тело запроса и при ошибке пишет агрегированный 400-ответ.
// Ошибки валидатора собираются по полям и дедуплицируются.
func BindJSON(c *gin.Context, endpointMsg string, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		seen := map[string]struct{}{}
		details := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			msg := "Поле " + fe.Field() + " имеет некорректное значение (" + fe.Tag() + ")"
			if _, ok := seen[msg]; ok {
				continue
			}
			seen[msg] = struct{}{}
			details = append(details, msg)
		}
		Error(c, http.StatusBadRequest, endpointMsg, details...)
		return false
	}

	Error(c, http.StatusBadRequest, endpointMsg, "Тело запроса содержит некорректные значения")
	return false
}

// ListParams - разобранные параметры списочного запроса
type ListParams struct {
	GUIDs  []uuid.UUID
	Limit  int
	Offset int
}

// ParseListParams разбирает ids/limit/offset из query-строки.
// limit: 1..1000, по умолчанию 30; offset: 0..MaxOffset, по умолчанию 0.
// При нарушении границ пишет 400 и возвращает false.
func ParseListParams(c *gin.Context, endpointMsg string) (*ListParams, bool) {
	params := &ListParams{Limit: DefaultLimit, Offset: 0}

	for _, raw := range c.QueryArray("ids") {
		guid, err := uuid.Parse(raw)
		if err != nil {
			Error(c, http.StatusBadRequest, endpointMsg, "Поле ids имеет некорректное значение (uuid)")
			return nil, false
		}
		params.GUIDs = append(params.GUIDs, guid)
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			Error(c, http.StatusBadRequest, endpointMsg, "Поле limit имеет некорректное значение (1..1000)")
			return nil, false
		}
		params.Limit = limit
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 || offset > MaxOffset {
			Error(c, http.StatusBadRequest, endpointMsg, "Поле offset имеет некорректное значение (0..max)")
			return nil, false
		}
		params.Offset = offset
	}

	return params, true
}

// SetPaginationHeaders проставляет метаданные пагинации в заголовки ответа
func SetPaginationHeaders(c *gin.Context, count int64, params *ListParams) {
	c.Header(PaginationCountHeader, strconv.FormatInt(count, 10))
	c.Header(PaginationOffsetHeader, strconv.Itoa(params.Offset))
	c.Header(PaginationLimitHeader, strconv.Itoa(params.Limit))
}
