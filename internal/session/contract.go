package session

import "context"

// TokenStore персистентное key-value хранилище (аналог localStorage браузера)
// Отсутствующий ключ - не ошибка: Get возвращает пустую строку
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
