package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Test представляет тест - именованный набор вопросов
type Test struct {
	GUID  uuid.UUID `gorm:"column:guid;type:uuid;primaryKey"`
	Title string    `gorm:"column:title;not null"`

	// Questions - вопросы теста. Загружаются только живые (is_deleted = 0) строки,
	// порядок - естественный порядок хранения.
	Questions []Question `gorm:"foreignKey:TestGUID;references:GUID"`

	IsDeleted int `gorm:"column:is_deleted;not null;default:0"`

	Created   time.Time `gorm:"column:created;autoCreateTime"`
	Updated   time.Time `gorm:"column:updated;autoUpdateTime"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	UpdatedBy uuid.UUID `gorm:"column:updated_by;type:uuid;not null"`
}

// TableName определяет имя таблицы для GORM
func (Test) TableName() string {
	return "test"
}

// BeforeCreate присваивает GUID до вставки
func (t *Test) BeforeCreate(tx *gorm.DB) error {
	if t.GUID == uuid.Nil {
		t.GUID = uuid.New()
	}
	return nil
}
