package phlebotomists

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
)

// BackendClient операции backend над флеботомистами
type BackendClient interface {
	ListPhlebotomists(ctx context.Context, labID domain.ID) ([]domain.Phlebotomist, error)
	CreatePhlebotomist(ctx context.Context, payload map[string]interface{}) (*backend.Created[domain.Phlebotomist], error)
	TogglePhlebotomist(ctx context.Context, id domain.ID) (*backend.Acted[domain.Phlebotomist], error)
	DeletePhlebotomist(ctx context.Context, id domain.ID) error
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
