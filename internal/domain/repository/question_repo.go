package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Count(guids []uuid.UUID) (int64, error)
	ExistsByGUID(guid uuid.UUID) (bool, error)
	// GetByGUID возвращает живой вопрос вместе с живыми ответами
	GetByGUID(guid uuid.UUID) (*entity.Question, error)
	List(guids []uuid.UUID, limit, offset int) ([]entity.Question, error)
	Create(actor uuid.UUID, question *entity.Question) error
	Update(actor, guid uuid.UUID, updates map[string]interface{}) (*entity.Question, error)
	// Delete выставляет флаг мягкого удаления. Каскада на ответы нет.
	Delete(actor, guid uuid.UUID) error
}
