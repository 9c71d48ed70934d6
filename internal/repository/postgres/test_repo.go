package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// TestRepo реализует repository.TestRepository
type TestRepo struct {
	db *gorm.DB
}

// NewTestRepo создает новый репозиторий тестов
func NewTestRepo(db *gorm.DB) *TestRepo {
	return &TestRepo{db: db}
}

// Count возвращает количество живых тестов, опционально ограниченное набором GUID
func (r *TestRepo) Count(guids []uuid.UUID) (int64, error) {
	var count int64
	query := r.db.Model(&entity.Test{}).Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Count(&count).Error
	return count, err
}

// ExistsByGUID проверяет существование живого теста
func (r *TestRepo) ExistsByGUID(guid uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Test{}).
		Where("guid = ? AND is_deleted = ?", guid, 0).
		Count(&count).Error
	return count > 0, err
}

// GetByGUID возвращает живой тест вместе с живыми вопросами и их живыми ответами.
// Вложенные Preload выполняются отдельными запросами по ключу родителя, поэтому
// тест, все вопросы которого удалены, возвращается с пустым списком вопросов,
// а дубликатов родительских строк не возникает.
func (r *TestRepo) GetByGUID(guid uuid.UUID) (*entity.Test, error) {
	var test entity.Test
	err := r.db.
		Preload("Questions", "is_deleted = ?", 0).
		Preload("Questions.Answers", "is_deleted = ?", 0).
		Where("guid = ? AND is_deleted = ?", guid, 0).
		First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &test, nil
}

// List возвращает живые тесты с пагинацией, опционально ограниченные набором GUID
func (r *TestRepo) List(guids []uuid.UUID, limit, offset int) ([]entity.Test, error) {
	var tests []entity.Test
	query := r.db.
		Preload("Questions", "is_deleted = ?", 0).
		Preload("Questions.Answers", "is_deleted = ?", 0).
		Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Order("created").Limit(limit).Offset(offset).Find(&tests).Error
	return tests, err
}

// Create создает новый тест, проставляя created_by/updated_by = actor
func (r *TestRepo) Create(actor uuid.UUID, test *entity.Test) error {
	test.CreatedBy = actor
	test.UpdatedBy = actor
	return r.db.Create(test).Error
}

// Update применяет набор полей к тесту и возвращает свежее состояние.
// Обновление и перечитывание выполняются в одной транзакции.
func (r *TestRepo) Update(actor, guid uuid.UUID, updates map[string]interface{}) (*entity.Test, error) {
	var test entity.Test
	err := r.db.Transaction(func(tx *gorm.DB) error {
		updates["updated_by"] = actor
		updates["updated"] = time.Now()
		if err := tx.Model(&entity.Test{}).Where("guid = ?", guid).Updates(updates).Error; err != nil {
			return err
		}
		return tx.
			Preload("Questions", "is_deleted = ?", 0).
			Preload("Questions.Answers", "is_deleted = ?", 0).
			Where("guid = ? AND is_deleted = ?", guid, 0).
			First(&test).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &test, nil
}

// Delete выставляет флаг мягкого удаления теста. Каскада на вопросы нет:
// удаленный тест может иметь живые вопросы, наружу они не видны.
func (r *TestRepo) Delete(actor, guid uuid.UUID) error {
	return r.db.Model(&entity.Test{}).
		Where("guid = ?", guid).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_by": actor,
			"updated":    time.Now(),
		}).Error
}
