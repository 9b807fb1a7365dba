package add_lab_item

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
)

type LabsService interface {
	EnsureLoaded(ctx context.Context) error
	AddPackage(ctx context.Context, labID domain.ID, values map[string]interface{}) (*onboarding.Result[domain.Package], error)
	AddTest(ctx context.Context, labID domain.ID, values map[string]interface{}) (*onboarding.Result[domain.Test], error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
