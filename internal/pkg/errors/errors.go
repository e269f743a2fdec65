package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ключ не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable используется, когда удалённый источник контента недоступен
	// (ошибка транспорта или запроса). Вызывающий код переходит на fallback.
	ErrUnavailable = errors.New("content source unavailable")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")
)
