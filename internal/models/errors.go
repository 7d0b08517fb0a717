package models

import "errors"

// Доменные ошибки. Репозитории и сервисы оборачивают их через %w,
// хэндлеры сопоставляют их с HTTP-статусами.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrDuplicate         = errors.New("duplicate record")
	ErrInvalidTransition = errors.New("invalid status transition")
)
