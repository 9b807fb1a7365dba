package upload_pricing

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/pricing"
)

type PricingService interface {
	Upload(ctx context.Context, req pricing.Request) (*domain.PricingResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
