package dto

import (
	"time"

	"github.com/google/uuid"
)

// QuestionCreateRequest - модель создания или полного обновления вопроса
type QuestionCreateRequest struct {
	TestGUID uuid.UUID `json:"testGuid" binding:"required"`
	Title    string    `json:"title" binding:"required"`
	Type     string    `json:"type" binding:"required"`
}

// Updates возвращает полный набор полей для применения в хранилище
func (r *QuestionCreateRequest) Updates() map[string]interface{} {
	return map[string]interface{}{
		"test_guid": r.TestGUID,
		"title":     r.Title,
		"type":      r.Type,
	}
}

// QuestionPatchRequest - модель частичного обновления вопроса
type QuestionPatchRequest struct {
	TestGUID *uuid.UUID `json:"testGuid"`
	Title    *string    `json:"title"`
	Type     *string    `json:"type"`
}

// Updates возвращает только явно переданные поля
func (r *QuestionPatchRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.TestGUID != nil {
		updates["test_guid"] = *r.TestGUID
	}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Type != nil {
		updates["type"] = *r.Type
	}
	return updates
}

// QuestionResponse - модель вопроса в ответе API
type QuestionResponse struct {
	ID        uuid.UUID        `json:"id"`
	TestGUID  uuid.UUID        `json:"testGuid"`
	Title     string           `json:"title"`
	Type      string           `json:"type"`
	Answers   []AnswerResponse `json:"answers"`
	Created   time.Time        `json:"created"`
	Updated   time.Time        `json:"updated"`
	CreatedBy uuid.UUID        `json:"createdBy"`
	UpdatedBy uuid.UUID        `json:"updatedBy"`
}
