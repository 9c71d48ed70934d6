package repository

import (
	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Count возвращает количество живых пользователей, опционально ограниченное набором GUID
	Count(guids []uuid.UUID) (int64, error)
	// ExistsByGUID проверяет существование живого пользователя
	ExistsByGUID(guid uuid.UUID) (bool, error)
	GetByGUID(guid uuid.UUID) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(guids []uuid.UUID, limit, offset int) ([]entity.User, error)
	Create(user *entity.User) error
	// Update применяет набор полей и возвращает обновлённого пользователя
	Update(guid uuid.UUID, updates map[string]interface{}) (*entity.User, error)
	// Delete выставляет флаг мягкого удаления
	Delete(guid uuid.UUID) error
}
