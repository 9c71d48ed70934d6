package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Count возвращает количество живых пользователей, опционально ограниченное набором GUID
func (r *UserRepo) Count(guids []uuid.UUID) (int64, error) {
	var count int64
	query := r.db.Model(&entity.User{}).Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Count(&count).Error
	return count, err
}

// ExistsByGUID проверяет существование живого пользователя
func (r *UserRepo) ExistsByGUID(guid uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.User{}).
		Where("guid = ? AND is_deleted = ?", guid, 0).
		Count(&count).Error
	return count > 0, err
}

// GetByGUID возвращает живого пользователя по GUID
func (r *UserRepo) GetByGUID(guid uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("guid = ? AND is_deleted = ?", guid, 0).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail возвращает живого пользователя по email
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("email = ? AND is_deleted = ?", email, 0).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List возвращает живых пользователей с пагинацией, опционально ограниченных набором GUID
func (r *UserRepo) List(guids []uuid.UUID, limit, offset int) ([]entity.User, error) {
	var users []entity.User
	query := r.db.Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Order("created").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

// Create создает нового пользователя. Email защищен уникальным индексом:
// нарушение уникальности транслируется в apperrors.ErrConflict, чтобы
// конкурирующий первый вход мог перечитать уже созданную запись.
func (r *UserRepo) Create(user *entity.User) error {
	err := r.db.Create(user).Error
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrConflict
	}
	return err
}

// Update применяет набор полей к пользователю и возвращает свежее состояние
func (r *UserRepo) Update(guid uuid.UUID, updates map[string]interface{}) (*entity.User, error) {
	var user entity.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		updates["updated"] = time.Now()
		if err := tx.Model(&entity.User{}).Where("guid = ?", guid).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("guid = ? AND is_deleted = ?", guid, 0).First(&user).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrConflict
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Delete выставляет флаг мягкого удаления пользователя
func (r *UserRepo) Delete(guid uuid.UUID) error {
	return r.db.Model(&entity.User{}).
		Where("guid = ?", guid).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated":    time.Now(),
		}).Error
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
