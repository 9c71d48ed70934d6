package dto

import (
	"time"

	"github.com/google/uuid"
)

// AnswerCreateRequest - модель создания или полного обновления ответа.
// isCorrect - указатель, чтобы обязательность различала false и отсутствие поля.
type AnswerCreateRequest struct {
	QuestionGUID uuid.UUID `json:"questionGuid" binding:"required"`
	Text         string    `json:"text" binding:"required"`
	SubText      *string   `json:"subText"`
	IsCorrect    *bool     `json:"isCorrect" binding:"required"`
}

// Updates возвращает полный набор полей для применения в хранилище
func (r *AnswerCreateRequest) Updates() map[string]interface{} {
	return map[string]interface{}{
		"question_guid": r.QuestionGUID,
		"text":          r.Text,
		"sub_text":      r.SubText,
		"is_correct":    boolToInt(*r.IsCorrect),
	}
}

// AnswerPatchRequest - модель частичного обновления ответа
type AnswerPatchRequest struct {
	QuestionGUID *uuid.UUID `json:"questionGuid"`
	Text         *string    `json:"text"`
	SubText      *string    `json:"subText"`
	IsCorrect    *bool      `json:"isCorrect"`
}

// Updates возвращает только явно переданные поля
func (r *AnswerPatchRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.QuestionGUID != nil {
		updates["question_guid"] = *r.QuestionGUID
	}
	if r.Text != nil {
		updates["text"] = *r.Text
	}
	if r.SubText != nil {
		updates["sub_text"] = *r.SubText
	}
	if r.IsCorrect != nil {
		updates["is_correct"] = boolToInt(*r.IsCorrect)
	}
	return updates
}

// AnswerResponse - модель ответа в ответе API
type AnswerResponse struct {
	ID           uuid.UUID `json:"id"`
	QuestionGUID uuid.UUID `json:"questionGuid"`
	Text         string    `json:"text"`
	SubText      *string   `json:"subText"`
	IsCorrect    bool      `json:"isCorrect"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
	CreatedBy    uuid.UUID `json:"createdBy"`
	UpdatedBy    uuid.UUID `json:"updatedBy"`
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
