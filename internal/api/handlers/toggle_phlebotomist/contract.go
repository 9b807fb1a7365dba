package toggle_phlebotomist

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type PhlebotomistsService interface {
	EnsureLoaded(ctx context.Context) error
	Toggle(ctx context.Context, id domain.ID) (*domain.Phlebotomist, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
