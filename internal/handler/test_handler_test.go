package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/internal/middleware"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
	"github.com/yourusername/quizcraft-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockTestRepository реализует repository.TestRepository
type MockTestRepository struct {
	mock.Mock
}

func (m *MockTestRepository) Count(guids []uuid.UUID) (int64, error) {
	args := m.Called(guids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTestRepository) ExistsByGUID(guid uuid.UUID) (bool, error) {
	args := m.Called(guid)
	return args.Bool(0), args.Error(1)
}

func (m *MockTestRepository) GetByGUID(guid uuid.UUID) (*entity.Test, error) {
	args := m.Called(guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Test), args.Error(1)
}

func (m *MockTestRepository) List(guids []uuid.UUID, limit, offset int) ([]entity.Test, error) {
	args := m.Called(guids, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Test), args.Error(1)
}

func (m *MockTestRepository) Create(actor uuid.UUID, test *entity.Test) error {
	args := m.Called(actor, test)
	return args.Error(0)
}

func (m *MockTestRepository) Update(actor, guid uuid.UUID, updates map[string]interface{}) (*entity.Test, error) {
	args := m.Called(actor, guid, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Test), args.Error(1)
}

func (m *MockTestRepository) Delete(actor, guid uuid.UUID) error {
	args := m.Called(actor, guid)
	return args.Error(0)
}

// newTestRouter поднимает маршруты тестов поверх мок-хранилища.
// Middleware аутентификации подменяется прямой установкой actor в контекст.
func newTestRouter(repo *MockTestRepository, actor uuid.UUID) *gin.Engine {
	h := NewTestHandler(service.NewTestService(repo))

	router := gin.New()
	group := router.Group("/test")
	group.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserGUID, actor)
	})

	extractID := middleware.ExtractUUIDParam("id", middleware.ContextEntityGUID)
	group.POST("", h.CreateTest)
	group.GET("", h.ListTests)
	group.GET("/:id", extractID, h.GetTest)
	group.PUT("/:id", extractID, h.UpdateTest)
	group.PATCH("/:id", extractID, h.PatchTest)
	group.DELETE("/:id", extractID, h.DeleteTest)
	return router
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestTestHandler_Create(t *testing.T) {
	actor := uuid.New()
	repo := new(MockTestRepository)
	repo.On("Create", actor, mock.Anything).Return(nil)

	router := newTestRouter(repo, actor)
	w := doJSON(router, http.MethodPost, "/test", gin.H{"title": "Основы Go"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Основы Go", resp["title"])
	// Вложенные коллекции сериализуются пустым массивом, не null
	assert.Equal(t, []interface{}{}, resp["questions"])
}

func TestTestHandler_Create_MissingTitle(t *testing.T) {
	repo := new(MockTestRepository)
	router := newTestRouter(repo, uuid.New())

	w := doJSON(router, http.MethodPost, "/test", gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp helper.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ошибка создания теста", resp.Message)
	require.NotEmpty(t, resp.Errors)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTestHandler_List_SetsPaginationHeaders(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	tests := []entity.Test{
		{GUID: uuid.New(), Title: "Первый", Created: now, Updated: now},
		{GUID: uuid.New(), Title: "Второй", Created: now, Updated: now},
	}

	repo := new(MockTestRepository)
	repo.On("Count", mock.Anything).Return(int64(7), nil)
	repo.On("List", mock.Anything, 2, 4).Return(tests, nil)

	router := newTestRouter(repo, uuid.New())
	w := doJSON(router, http.MethodGet, "/test?limit=2&offset=4", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", w.Header().Get(helper.PaginationCountHeader))
	assert.Equal(t, "4", w.Header().Get(helper.PaginationOffsetHeader))
	assert.Equal(t, "2", w.Header().Get(helper.PaginationLimitHeader))

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Первый", resp[0]["title"])
}

func TestTestHandler_Get_NotFound(t *testing.T) {
	guid := uuid.New()
	repo := new(MockTestRepository)
	repo.On("GetByGUID", guid).Return(nil, apperrors.ErrNotFound)

	router := newTestRouter(repo, uuid.New())
	w := doJSON(router, http.MethodGet, "/test/"+guid.String(), nil)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp helper.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Тест не найден", resp.Errors[0].Message)
}

func TestTestHandler_Get_BadUUID(t *testing.T) {
	repo := new(MockTestRepository)
	router := newTestRouter(repo, uuid.New())

	w := doJSON(router, http.MethodGet, "/test/not-a-uuid", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "GetByGUID", mock.Anything)
}

func TestTestHandler_Delete(t *testing.T) {
	actor := uuid.New()
	guid := uuid.New()

	repo := new(MockTestRepository)
	repo.On("ExistsByGUID", guid).Return(true, nil)
	repo.On("Delete", actor, guid).Return(nil)

	router := newTestRouter(repo, actor)
	w := doJSON(router, http.MethodDelete, "/test/"+guid.String(), nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
	repo.AssertExpectations(t)
}

func TestTestHandler_Patch_PassesOnlyProvidedFields(t *testing.T) {
	actor := uuid.New()
	guid := uuid.New()

	repo := new(MockTestRepository)
	repo.On("GetByGUID", guid).Return(&entity.Test{GUID: guid, Title: "Старое"}, nil)
	repo.On("Update", actor, guid, map[string]interface{}{"title": "Новое"}).
		Return(&entity.Test{GUID: guid, Title: "Новое"}, nil)

	router := newTestRouter(repo, actor)
	w := doJSON(router, http.MethodPatch, "/test/"+guid.String(), gin.H{"title": "Новое"})

	require.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}
