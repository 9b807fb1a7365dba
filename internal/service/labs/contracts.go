package labs

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
)

// BackendClient операции backend над лабораториями и их администраторами
type BackendClient interface {
	ListLabs(ctx context.Context) ([]domain.Lab, error)
	CreateLab(ctx context.Context, payload map[string]interface{}) (*backend.Created[domain.Lab], error)
	CreatePackage(ctx context.Context, labID domain.ID, payload map[string]interface{}) (*backend.Created[domain.Package], error)
	CreateTest(ctx context.Context, labID domain.ID, payload map[string]interface{}) (*backend.Created[domain.Test], error)
	ListLabAdmins(ctx context.Context) ([]domain.LabAdmin, error)
	RegisterLabAdmin(ctx context.Context, payload map[string]interface{}) (*backend.Created[domain.LabAdmin], error)
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
