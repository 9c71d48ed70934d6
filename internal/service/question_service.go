package service

import (
	"log"

	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	"github.com/yourusername/quizcraft-api/internal/domain/repository"
	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// Count возвращает количество живых вопросов
func (s *QuestionService) Count(guids []uuid.UUID) (int64, error) {
	return s.questionRepo.Count(guids)
}

// GetQuestion возвращает вопрос по идентификатору
func (s *QuestionService) GetQuestion(guid uuid.UUID) (*entity.Question, error) {
	return s.questionRepo.GetByGUID(guid)
}

// ListQuestions возвращает вопросы с пагинацией
func (s *QuestionService) ListQuestions(guids []uuid.UUID, limit, offset int) ([]entity.Question, error) {
	return s.questionRepo.List(guids, limit, offset)
}

// CreateQuestion создает новый вопрос от имени actor.
// Принадлежность к тесту проверяется внешним ключом в хранилище.
func (s *QuestionService) CreateQuestion(actor uuid.UUID, form *dto.QuestionCreateRequest) (*entity.Question, error) {
	question := &entity.Question{
		TestGUID: form.TestGUID,
		Title:    form.Title,
		Type:     form.Type,
	}
	if err := s.questionRepo.Create(actor, question); err != nil {
		return nil, err
	}
	log.Printf("[QuestionService] Создан новый вопрос guid=%s test=%s actor=%s", question.GUID, question.TestGUID, actor)
	return question, nil
}

// UpdateQuestion полностью обновляет вопрос
func (s *QuestionService) UpdateQuestion(actor, guid uuid.UUID, form *dto.QuestionCreateRequest) (*entity.Question, error) {
	if _, err := s.questionRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.Update(actor, guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[QuestionService] Вопрос %s полностью обновлен actor=%s", guid, actor)
	return question, nil
}

// PatchQuestion частично обновляет вопрос
func (s *QuestionService) PatchQuestion(actor, guid uuid.UUID, form *dto.QuestionPatchRequest) (*entity.Question, error) {
	if _, err := s.questionRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	question, err := s.questionRepo.Update(actor, guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[QuestionService] Вопрос %s частично обновлен actor=%s", guid, actor)
	return question, nil
}

// DeleteQuestion мягко удаляет вопрос. Проверка существования без выборки ответов.
func (s *QuestionService) DeleteQuestion(actor, guid uuid.UUID) error {
	exists, err := s.questionRepo.ExistsByGUID(guid)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	if err := s.questionRepo.Delete(actor, guid); err != nil {
		return err
	}
	log.Printf("[QuestionService] Вопрос %s удален actor=%s", guid, actor)
	return nil
}
