package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer представляет вариант ответа на вопрос
type Answer struct {
	GUID         uuid.UUID `gorm:"column:guid;type:uuid;primaryKey"`
	QuestionGUID uuid.UUID `gorm:"column:question_guid;type:uuid;not null;index"`

	Text    string  `gorm:"column:text;not null"`
	SubText *string `gorm:"column:sub_text"`

	// IsCorrect хранится как integer 0/1, на границе API преобразуется в bool
	IsCorrect int `gorm:"column:is_correct;not null"`

	IsDeleted int `gorm:"column:is_deleted;not null;default:0"`

	Created   time.Time `gorm:"column:created;autoCreateTime"`
	Updated   time.Time `gorm:"column:updated;autoUpdateTime"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	UpdatedBy uuid.UUID `gorm:"column:updated_by;type:uuid;not null"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answer"
}

// BeforeCreate присваивает GUID до вставки
func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.GUID == uuid.Nil {
		a.GUID = uuid.New()
	}
	return nil
}
