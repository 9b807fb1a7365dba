package audit

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// Nop журнал-заглушка, когда аудит выключен
type Nop struct{}

func (Nop) Record(context.Context, domain.AuditEntry) error { return nil }

func (Nop) Recent(context.Context, int) ([]domain.AuditEntry, error) {
	return []domain.AuditEntry{}, nil
}
