package get_form

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/usecase/resources"
)

type ResourcesUseCase interface {
	Form(ctx context.Context, name string) (*resources.FormView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
