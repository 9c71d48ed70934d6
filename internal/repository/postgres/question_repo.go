package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourusername/quizcraft-api/internal/domain/entity"
	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Count возвращает количество живых вопросов, опционально ограниченное набором GUID
func (r *QuestionRepo) Count(guids []uuid.UUID) (int64, error) {
	var count int64
	query := r.db.Model(&entity.Question{}).Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Count(&count).Error
	return count, err
}

// ExistsByGUID проверяет существование живого вопроса
func (r *QuestionRepo) ExistsByGUID(guid uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Question{}).
		Where("guid = ? AND is_deleted = ?", guid, 0).
		Count(&count).Error
	return count > 0, err
}

// GetByGUID возвращает живой вопрос вместе с живыми ответами
func (r *QuestionRepo) GetByGUID(guid uuid.UUID) (*entity.Question, error) {
	var question entity.Question
	err := r.db.
		Preload("Answers", "is_deleted = ?", 0).
		Where("guid = ? AND is_deleted = ?", guid, 0).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List возвращает живые вопросы с пагинацией, опционально ограниченные набором GUID
func (r *QuestionRepo) List(guids []uuid.UUID, limit, offset int) ([]entity.Question, error) {
	var questions []entity.Question
	query := r.db.
		Preload("Answers", "is_deleted = ?", 0).
		Where("is_deleted = ?", 0)
	if len(guids) > 0 {
		query = query.Where("guid IN ?", guids)
	}
	err := query.Order("created").Limit(limit).Offset(offset).Find(&questions).Error
	return questions, err
}

// Create создает новый вопрос, проставляя created_by/updated_by = actor
func (r *QuestionRepo) Create(actor uuid.UUID, question *entity.Question) error {
	question.CreatedBy = actor
	question.UpdatedBy = actor
	return r.db.Create(question).Error
}

// Update применяет набор полей к вопросу и возвращает свежее состояние
func (r *QuestionRepo) Update(actor, guid uuid.UUID, updates map[string]interface{}) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Transaction(func(tx *gorm.DB) error {
		updates["updated_by"] = actor
		updates["updated"] = time.Now()
		if err := tx.Model(&entity.Question{}).Where("guid = ?", guid).Updates(updates).Error; err != nil {
			return err
		}
		return tx.
			Preload("Answers", "is_deleted = ?", 0).
			Where("guid = ? AND is_deleted = ?", guid, 0).
			First(&question).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete выставляет флаг мягкого удаления вопроса. Каскада на ответы нет.
func (r *QuestionRepo) Delete(actor, guid uuid.UUID) error {
	return r.db.Model(&entity.Question{}).
		Where("guid = ?", guid).
		Updates(map[string]interface{}{
			"is_deleted": 1,
			"updated_by": actor,
			"updated":    time.Now(),
		}).Error
}
