package service

import (
	"log"

	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	"github.com/yourusername/quizcraft-api/internal/domain/repository"
	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// TestService предоставляет методы для работы с тестами.
// Перед любой мутацией выполняется проверка существования, чтобы операция над
// удаленной или несуществующей записью завершалась NotFound до записи в хранилище.
// Между проверкой и мутацией нет блокировки: конкурентное удаление в этом окне -
// известное ограничение, записи оно не ломает (last-write-wins).
type TestService struct {
	testRepo repository.TestRepository
}

// NewTestService создает новый сервис тестов
func NewTestService(testRepo repository.TestRepository) *TestService {
	return &TestService{testRepo: testRepo}
}

// Count возвращает количество живых тестов
func (s *TestService) Count(guids []uuid.UUID) (int64, error) {
	return s.testRepo.Count(guids)
}

// GetTest возвращает тест по идентификатору
func (s *TestService) GetTest(guid uuid.UUID) (*entity.Test, error) {
	return s.testRepo.GetByGUID(guid)
}

// ListTests возвращает тесты с пагинацией
func (s *TestService) ListTests(guids []uuid.UUID, limit, offset int) ([]entity.Test, error) {
	return s.testRepo.List(guids, limit, offset)
}

// CreateTest создает новый тест от имени actor
func (s *TestService) CreateTest(actor uuid.UUID, form *dto.TestCreateRequest) (*entity.Test, error) {
	test := &entity.Test{Title: form.Title}
	if err := s.testRepo.Create(actor, test); err != nil {
		return nil, err
	}
	log.Printf("[TestService] Создан новый тест guid=%s actor=%s", test.GUID, actor)
	return test, nil
}

// UpdateTest полностью обновляет тест
func (s *TestService) UpdateTest(actor, guid uuid.UUID, form *dto.TestCreateRequest) (*entity.Test, error) {
	if _, err := s.testRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	test, err := s.testRepo.Update(actor, guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[TestService] Тест %s полностью обновлен actor=%s", guid, actor)
	return test, nil
}

// PatchTest частично обновляет тест: не переданные поля не затрагиваются
func (s *TestService) PatchTest(actor, guid uuid.UUID, form *dto.TestPatchRequest) (*entity.Test, error) {
	if _, err := s.testRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	test, err := s.testRepo.Update(actor, guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[TestService] Тест %s частично обновлен actor=%s", guid, actor)
	return test, nil
}

// DeleteTest мягко удаляет тест. Для проверки существования достаточно
// ExistsByGUID: полная выборка с вложенными вопросами здесь не нужна.
func (s *TestService) DeleteTest(actor, guid uuid.UUID) error {
	exists, err := s.testRepo.ExistsByGUID(guid)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	if err := s.testRepo.Delete(actor, guid); err != nil {
		return err
	}
	log.Printf("[TestService] Тест %s удален actor=%s", guid, actor)
	return nil
}
