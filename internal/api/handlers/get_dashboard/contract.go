package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type DashboardService interface {
	ParseRange(from, to string) (domain.DateRange, error)
	Snapshot(ctx context.Context, r domain.DateRange) (*domain.DashboardSnapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
