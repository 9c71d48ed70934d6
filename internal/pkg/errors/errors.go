package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок авторизации (неверный токен, истекший срок действия).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict используется для конфликтов уникальности (например, два создания пользователя с одним email).
	ErrConflict = errors.New("resource state conflict")
)
