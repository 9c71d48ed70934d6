package dto

import (
	"time"

	"github.com/google/uuid"
)

// TestCreateRequest - модель создания или полного обновления теста
type TestCreateRequest struct {
	Title string `json:"title" binding:"required"`
}

// Updates возвращает полный набор полей для применения в хранилище
func (r *TestCreateRequest) Updates() map[string]interface{} {
	return map[string]interface{}{
		"title": r.Title,
	}
}

// TestPatchRequest - модель частичного обновления теста
type TestPatchRequest struct {
	Title *string `json:"title"`
}

// Updates возвращает только явно переданные поля
func (r *TestPatchRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	return updates
}

// TestResponse - модель теста в ответе API
type TestResponse struct {
	ID        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Questions []QuestionResponse `json:"questions"`
	Created   time.Time          `json:"created"`
	Updated   time.Time          `json:"updated"`
	CreatedBy uuid.UUID          `json:"createdBy"`
	UpdatedBy uuid.UUID          `json:"updatedBy"`
}
