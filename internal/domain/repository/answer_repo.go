package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
)

// AnswerRepository определяет методы для работы с ответами
type AnswerRepository interface {
	Count(guids []uuid.UUID) (int64, error)
	ExistsByGUID(guid uuid.UUID) (bool, error)
	GetByGUID(guid uuid.UUID) (*entity.Answer, error)
	List(guids []uuid.UUID, limit, offset int) ([]entity.Answer, error)
	Create(actor uuid.UUID, answer *entity.Answer) error
	Update(actor, guid uuid.UUID, updates map[string]interface{}) (*entity.Answer, error)
	Delete(actor, guid uuid.UUID) error
}
