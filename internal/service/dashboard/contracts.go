package dashboard

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// StatsClient эндпоинты метрик backend
type StatsClient interface {
	Stats(ctx context.Context, r domain.DateRange) (domain.Stats, error)
	UsersTrend(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error)
	RevenueTrend(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error)
	OrdersTrend(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error)
	BookingsByLab(ctx context.Context, r domain.DateRange) ([]domain.LabBookings, error)
	PaymentMethods(ctx context.Context, r domain.DateRange) ([]domain.PaymentMethodShare, error)
	TopTests(ctx context.Context, r domain.DateRange) ([]domain.TopTest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
