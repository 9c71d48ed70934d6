package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreateRequest - модель создания или полного обновления пользователя
type UserCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

// Updates возвращает полный набор полей для применения в хранилище
func (r *UserCreateRequest) Updates() map[string]interface{} {
	return map[string]interface{}{
		"name":    r.Name,
		"surname": r.Surname,
		"email":   r.Email,
	}
}

// UserPatchRequest - модель частичного обновления пользователя.
// Указатели отличают "поле не передано" от "поле передано пустым":
// не переданные поля не затрагиваются.
type UserPatchRequest struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Email   *string `json:"email"`
}

// Updates возвращает только явно переданные поля
func (r *UserPatchRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Surname != nil {
		updates["surname"] = *r.Surname
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	return updates
}

// UserResponse - модель пользователя в ответе API
type UserResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
	Email   string    `json:"email"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}
