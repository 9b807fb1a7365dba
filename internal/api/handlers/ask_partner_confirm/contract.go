package ask_partner_confirm

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
)

type PartnersService interface {
	EnsureLoaded(ctx context.Context) error
	AskConfirm(id domain.ID, action string) (resource.Prompt, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
