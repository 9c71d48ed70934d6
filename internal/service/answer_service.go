package service

import (
	"log"

	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	"github.com/yourusername/quizcraft-api/internal/domain/repository"
	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// AnswerService предоставляет методы для работы с ответами
type AnswerService struct {
	answerRepo repository.AnswerRepository
}

// NewAnswerService создает новый сервис ответов
func NewAnswerService(answerRepo repository.AnswerRepository) *AnswerService {
	return &AnswerService{answerRepo: answerRepo}
}

// Count возвращает количество живых ответов
func (s *AnswerService) Count(guids []uuid.UUID) (int64, error) {
	return s.answerRepo.Count(guids)
}

// GetAnswer возвращает ответ по идентификатору
func (s *AnswerService) GetAnswer(guid uuid.UUID) (*entity.Answer, error) {
	return s.answerRepo.GetByGUID(guid)
}

// ListAnswers возвращает ответы с пагинацией
func (s *AnswerService) ListAnswers(guids []uuid.UUID, limit, offset int) ([]entity.Answer, error) {
	return s.answerRepo.List(guids, limit, offset)
}

// CreateAnswer создает новый ответ от имени actor
func (s *AnswerService) CreateAnswer(actor uuid.UUID, form *dto.AnswerCreateRequest) (*entity.Answer, error) {
	isCorrect := 0
	if *form.IsCorrect {
		isCorrect = 1
	}
	answer := &entity.Answer{
		QuestionGUID: form.QuestionGUID,
		Text:         form.Text,
		SubText:      form.SubText,
		IsCorrect:    isCorrect,
	}
	if err := s.answerRepo.Create(actor, answer); err != nil {
		return nil, err
	}
	log.Printf("[AnswerService] Создан новый ответ guid=%s question=%s actor=%s", answer.GUID, answer.QuestionGUID, actor)
	return answer, nil
}

// UpdateAnswer полностью обновляет ответ
func (s *AnswerService) UpdateAnswer(actor, guid uuid.UUID, form *dto.AnswerCreateRequest) (*entity.Answer, error) {
	if _, err := s.answerRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	answer, err := s.answerRepo.Update(actor, guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[AnswerService] Ответ %s полностью обновлен actor=%s", guid, actor)
	return answer, nil
}

// PatchAnswer частично обновляет ответ
func (s *AnswerService) PatchAnswer(actor, guid uuid.UUID, form *dto.AnswerPatchRequest) (*entity.Answer, error) {
	if _, err := s.answerRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	answer, err := s.answerRepo.Update(actor, guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[AnswerService] Ответ %s частично обновлен actor=%s", guid, actor)
	return answer, nil
}

// DeleteAnswer мягко удаляет ответ
func (s *AnswerService) DeleteAnswer(actor, guid uuid.UUID) error {
	exists, err := s.answerRepo.ExistsByGUID(guid)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	if err := s.answerRepo.Delete(actor, guid); err != nil {
		return err
	}
	log.Printf("[AnswerService] Ответ %s удален actor=%s", guid, actor)
	return nil
}
