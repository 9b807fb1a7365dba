package partners

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
)

// BackendClient операции backend над заявками партнёров
type BackendClient interface {
	ListPartnerRequests(ctx context.Context) ([]domain.PartnerRequest, error)
	ApprovePartnerRequest(ctx context.Context, id domain.ID) (*backend.Acted[domain.PartnerRequest], error)
	RejectPartnerRequest(ctx context.Context, id domain.ID) (*backend.Acted[domain.PartnerRequest], error)
	RegisterPartner(ctx context.Context, payload map[string]interface{}) (*backend.Created[domain.PartnerRequest], error)
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
