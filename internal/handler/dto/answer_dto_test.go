package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAnswerPatchRequest_Updates_Presence(t *testing.T) {
	questionGUID := uuid.New()
	text := "вариант А"
	isCorrect := false

	tests := []struct {
		name string
		req  AnswerPatchRequest
		want map[string]interface{}
	}{
		{
			name: "пустое тело не трогает ни одного поля",
			req:  AnswerPatchRequest{},
			want: map[string]interface{}{},
		},
		{
			name: "передан только text",
			req:  AnswerPatchRequest{Text: &text},
			want: map[string]interface{}{"text": text},
		},
		{
			name: "явный false для isCorrect попадает в набор",
			req:  AnswerPatchRequest{IsCorrect: &isCorrect},
			want: map[string]interface{}{"is_correct": 0},
		},
		{
			name: "все поля сразу",
			req: AnswerPatchRequest{
				QuestionGUID: &questionGUID,
				Text:         &text,
				SubText:      &text,
				IsCorrect:    &isCorrect,
			},
			want: map[string]interface{}{
				"question_guid": questionGUID,
				"text":          text,
				"sub_text":      text,
				"is_correct":    0,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.Updates())
		})
	}
}

func TestAnswerCreateRequest_Updates_ConvertsIsCorrect(t *testing.T) {
	questionGUID := uuid.New()
	isCorrect := true

	req := AnswerCreateRequest{
		QuestionGUID: questionGUID,
		Text:         "вариант Б",
		IsCorrect:    &isCorrect,
	}

	updates := req.Updates()
	assert.Equal(t, 1, updates["is_correct"])
	assert.Equal(t, questionGUID, updates["question_guid"])
	// Необязательный subText всегда присутствует при полном обновлении:
	// nil затирает прежнее значение
	assert.Contains(t, updates, "sub_text")
}
