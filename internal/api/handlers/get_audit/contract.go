package get_audit

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
