package refresh_resource

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

type ResourcesUseCase interface {
	Refresh(ctx context.Context, name string, p resources.Params) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
