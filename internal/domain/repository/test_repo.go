package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
)

// TestRepository определяет методы для работы с тестами
type TestRepository interface {
	Count(guids []uuid.UUID) (int64, error)
	ExistsByGUID(guid uuid.UUID) (bool, error)
	// GetByGUID возвращает живой тест вместе с живыми вопросами и их живыми ответами.
	// Тест, все вопросы которого удалены, возвращается с пустым списком вопросов.
	GetByGUID(guid uuid.UUID) (*entity.Test, error)
	List(guids []uuid.UUID, limit, offset int) ([]entity.Test, error)
	// Create вставляет тест, проставляя created_by/updated_by = actor
	Create(actor uuid.UUID, test *entity.Test) error
	// Update применяет набор полей, проставляет updated_by = actor и возвращает свежий тест
	Update(actor, guid uuid.UUID, updates map[string]interface{}) (*entity.Test, error)
	// Delete выставляет флаг мягкого удаления и проставляет updated_by = actor.
	// Каскада на вопросы нет.
	Delete(actor, guid uuid.UUID) error
}
