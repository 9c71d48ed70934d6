package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// AnswerRepo реализует repository.AnswerRepository
type AnswerRepo struct {
	db *gorm.DB
}

// NewAnswerRepo создает новый репозиторий ответов
func NewAnswerRepo(db *gorm.DB) *AnswerRepo {
	return &AnswerRepo{db: db}
}

// Count возвращает количество живых ответов, опционально ограниченное набором GUID
func (r *AnswerRepo) Count(guids []uuid.UUID) (int64, error) {
	var count int64
	query := r.db.Model(&entity.Answer{}).Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Count(&count).Error
	return count, err
}

// ExistsByGUID проверяет существование живого ответа
func (r *AnswerRepo) ExistsByGUID(guid uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Answer{}).
		Where("guid = ? AND is_deleted = ?", guid, 0).
		Count(&count).Error
	return count > 0, err
}

// GetByGUID возвращает живой ответ
func (r *AnswerRepo) GetByGUID(guid uuid.UUID) (*entity.Answer, error) {
	var answer entity.Answer
	err := r.db.Where("guid = ? AND is_deleted = ?", guid, 0).First(&answer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &answer, nil
}

// List возвращает живые ответы с пагинацией, опционально ограниченные набором GUID
func (r *AnswerRepo) List(guids []uuid.UUID, limit, offset int) ([]entity.Answer, error) {
	var answers []entity.Answer
	query := r.db.Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Order("created").Limit(limit).Offset(offset).Find(&answers).Error
	return answers, err
}

// Create создает новый ответ, проставляя created_by/updated_by = actor
func (r *AnswerRepo) Create(actor uuid.UUID, answer *entity.Answer) error {
	answer.CreatedBy = actor
	answer.UpdatedBy = actor
	return r.db.Create(answer).Error
}

// Update применяет набор полей к ответу и возвращает свежее состояние
func (r *AnswerRepo) Update(actor, guid uuid.UUID, updates map[string]interface{}) (*entity.Answer, error) {
	var answer entity.Answer
	err := r.db.Transaction(func(tx *gorm.DB) error {
		updates["updated_by"] = actor
		updates["updated"] = time.Now()
		if err := tx.Model(&entity.Answer{}).Where("guid = ?", guid).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("guid = ? AND is_deleted = ?", guid, 0).First(&answer).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &answer, nil
}

// Delete выставляет флаг мягкого удаления ответа
func (r *AnswerRepo) Delete(actor, guid uuid.UUID) error {
	return r.db.Model(&entity.Answer{}).
		Where("guid = ?", guid).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_by": actor,
			"updated":    time.Now(),
		}).Error
}
