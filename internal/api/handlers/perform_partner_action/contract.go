package perform_partner_action

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/service/partners"
)

type PartnersService interface {
	Perform(ctx context.Context, id domain.ID, action string) (*partners.ActionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
