package service

import (
	"log"

	"github.com/google/uuid"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	"github.com/yourusername/quizcraft-api/internal/domain/repository"
	"github.com/yourusername/quizcraft-api/internal/handler/dto"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// UserService предоставляет методы для работы с пользователями.
// У пользователя нет audit-полей: он описывает сам себя.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Count возвращает количество живых пользователей
func (s *UserService) Count(guids []uuid.UUID) (int64, error) {
	return s.userRepo.Count(guids)
}

// GetUser возвращает пользователя по идентификатору
func (s *UserService) GetUser(guid uuid.UUID) (*entity.User, error) {
	return s.userRepo.GetByGUID(guid)
}

// GetUserByEmail возвращает пользователя по email
func (s *UserService) GetUserByEmail(email string) (*entity.User, error) {
	return s.userRepo.GetByEmail(email)
}

// ListUsers возвращает пользователей с пагинацией
func (s *UserService) ListUsers(guids []uuid.UUID, limit, offset int) ([]entity.User, error) {
	return s.userRepo.List(guids, limit, offset)
}

// CreateUser создает нового пользователя
func (s *UserService) CreateUser(form *dto.UserCreateRequest) (*entity.User, error) {
	user := &entity.User{
		Name:    form.Name,
		Surname: form.Surname,
		Email:   form.Email,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	log.Printf("[UserService] Создан новый пользователь guid=%s email=%s", user.GUID, user.Email)
	return user, nil
}

// UpdateUser полностью обновляет пользователя
func (s *UserService) UpdateUser(guid uuid.UUID, form *dto.UserCreateRequest) (*entity.User, error) {
	if _, err := s.userRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	user, err := s.userRepo.Update(guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[UserService] Пользователь %s полностью обновлен", guid)
	return user, nil
}

// PatchUser частично обновляет пользователя
func (s *UserService) PatchUser(guid uuid.UUID, form *dto.UserPatchRequest) (*entity.User, error) {
	if _, err := s.userRepo.GetByGUID(guid); err != nil {
		return nil, err
	}
	user, err := s.userRepo.Update(guid, form.Updates())
	if err != nil {
		return nil, err
	}
	log.Printf("[UserService] Пользователь %s частично обновлен", guid)
	return user, nil
}

// DeleteUser мягко удаляет пользователя
func (s *UserService) DeleteUser(guid uuid.UUID) error {
	exists, err := s.userRepo.ExistsByGUID(guid)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	if err := s.userRepo.Delete(guid); err != nil {
		return err
	}
	log.Printf("[UserService] Пользователь %s удален", guid)
	return nil
}
