package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrStoreUnavailable означает, что хранилище не было инициализировано при старте
	// (например, отсутствуют или неверны учетные данные сервисного аккаунта).
	// Отличается от ошибок, возникающих во время запроса к хранилищу.
	ErrStoreUnavailable = errors.New("database not connected")
)
