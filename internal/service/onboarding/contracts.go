package onboarding

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
)

// Source операции backend для одного ресурса
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload map[string]interface{}) (*backend.Created[T], error)
}

// Tracker метрики и аудит изменяющих действий
type Tracker interface {
	Track(ctx context.Context, resource, action, targetID string, err error, message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
