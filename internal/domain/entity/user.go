package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User представляет пользователя в системе.
// Пользователь создается явно через API либо неявно при первом входе через Google OAuth2.
type User struct {
	GUID    uuid.UUID `gorm:"column:guid;type:uuid;primaryKey"`
	Name    string    `gorm:"column:name;not null"`
	Surname string    `gorm:"column:surname;not null"`
	// Email уникален среди живых строк (частичный уникальный индекс в миграции)
	Email string `gorm:"column:email;not null;index"`

	// IsDeleted - флаг мягкого удаления (0/1). Строка физически никогда не удаляется.
	IsDeleted int `gorm:"column:is_deleted;not null;default:0"`

	Created time.Time `gorm:"column:created;autoCreateTime"`
	Updated time.Time `gorm:"column:updated;autoUpdateTime"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "user"
}

// BeforeCreate присваивает GUID до вставки, чтобы идентификатор был известен приложению
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.GUID == uuid.Nil {
		u.GUID = uuid.New()
	}
	return nil
}
