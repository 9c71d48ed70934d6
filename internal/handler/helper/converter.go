package helper

import (
	"time"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	"github.com/yourusername/quizcraft-api/internal/handler/dto"
)

// Конвертеры сущностей в модели ответов API.
// Временные метки усекаются до целых секунд.

// ToUserResponse преобразует пользователя в модель ответа
func ToUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      user.GUID,
		Name:    user.Name,
		Surname: user.Surname,
		Email:   user.Email,
		Created: user.Created.Truncate(time.Second),
		Updated: user.Updated.Truncate(time.Second),
	}
}

// ToUserResponses преобразует срез пользователей
func ToUserResponses(users []entity.User) []dto.UserResponse {
	result := make([]dto.UserResponse, len(users))
	for i := range users {
		result[i] = ToUserResponse(&users[i])
	}
	return result
}

// ToAnswerResponse преобразует ответ в модель ответа API.
// is_correct (0/1 в хранилище) становится bool.
func ToAnswerResponse(answer *entity.Answer) dto.AnswerResponse {
	return dto.AnswerResponse{
		ID:           answer.GUID,
		QuestionGUID: answer.QuestionGUID,
		Text:         answer.Text,
		SubText:      answer.SubText,
		IsCorrect:    answer.IsCorrect != 0,
		Created:      answer.Created.Truncate(time.Second),
		Updated:      answer.Updated.Truncate(time.Second),
		CreatedBy:    answer.CreatedBy,
		UpdatedBy:    answer.UpdatedBy,
	}
}

// ToAnswerResponses преобразует срез ответов
func ToAnswerResponses(answers []entity.Answer) []dto.AnswerResponse {
	result := make([]dto.AnswerResponse, len(answers))
	for i := range answers {
		result[i] = ToAnswerResponse(&answers[i])
	}
	return result
}

// ToQuestionResponse преобразует вопрос в модель ответа API
func ToQuestionResponse(question *entity.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:        question.GUID,
		TestGUID:  question.TestGUID,
		Title:     question.Title,
		Type:      question.Type,
		Answers:   ToAnswerResponses(question.Answers),
		Created:   question.Created.Truncate(time.Second),
		Updated:   question.Updated.Truncate(time.Second),
		CreatedBy: question.CreatedBy,
		UpdatedBy: question.UpdatedBy,
	}
}

// ToQuestionResponses преобразует срез вопросов
func ToQuestionResponses(questions []entity.Question) []dto.QuestionResponse {
	result := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		result[i] = ToQuestionResponse(&questions[i])
	}
	return result
}

// ToTestResponse преобразует тест в модель ответа API
func ToTestResponse(test *entity.Test) dto.TestResponse {
	return dto.TestResponse{
		ID:        test.GUID,
		Title:     test.Title,
		Questions: ToQuestionResponses(test.Questions),
		Created:   test.Created.Truncate(time.Second),
		Updated:   test.Updated.Truncate(time.Second),
		CreatedBy: test.CreatedBy,
		UpdatedBy: test.UpdatedBy,
	}
}

// ToTestResponses преобразует срез тестов
func ToTestResponses(tests []entity.Test) []dto.TestResponse {
	result := make([]dto.TestResponse, len(tests))
	for i := range tests {
		result[i] = ToTestResponse(&tests[i])
	}
	return result
}
