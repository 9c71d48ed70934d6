package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question представляет вопрос теста
type Question struct {
	GUID     uuid.UUID `gorm:"column:guid;type:uuid;primaryKey"`
	TestGUID uuid.UUID `gorm:"column:test_guid;type:uuid;not null;index"`

	Title string `gorm:"column:title;not null"`
	// Type - тип вопроса (свободная строковая метка, не закрытый enum)
	Type string `gorm:"column:type;not null"`

	// Answers - варианты ответа. Загружаются только живые (is_deleted = 0) строки.
	Answers []Answer `gorm:"foreignKey:QuestionGUID;references:GUID"`

	IsDeleted int `gorm:"column:is_deleted;not null;default:0"`

	Created   time.Time `gorm:"column:created;autoCreateTime"`
	Updated   time.Time `gorm:"column:updated;autoUpdateTime"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	UpdatedBy uuid.UUID `gorm:"column:updated_by;type:uuid;not null"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "question"
}

// BeforeCreate присваивает GUID до вставки
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.GUID == uuid.Nil {
		q.GUID = uuid.New()
	}
	return nil
}
