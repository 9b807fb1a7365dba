package create_resource

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

type ResourcesUseCase interface {
	Create(ctx context.Context, name string, values map[string]interface{}) (*resources.Created, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
