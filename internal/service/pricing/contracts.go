package pricing

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
)

// BackendClient загрузка прайс-листа в backend
type BackendClient interface {
	UploadPricingCSV(ctx context.Context, upload backend.PricingUpload) (*domain.PricingResult, error)
}

// Archive хранилище копий загруженных файлов
type Archive interface {
	Put(ctx context.Context, prefix, fileName string, content []byte, contentType string) (string, error)
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
