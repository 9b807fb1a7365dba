package tracker

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/toast"
	"github.com/m04kA/SMC-AdminConsole/pkg/requestid"
)

// AuditRecorder журнал действий администратора
type AuditRecorder interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}

// Metrics счётчик действий
type Metrics interface {
	ObserveAction(resource, action string, err error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Tracker фиксирует результат каждого изменяющего действия: метрика + запись аудита
// Ошибка записи аудита не влияет на результат действия
type Tracker struct {
	audit   AuditRecorder
	metrics Metrics
	log     Logger
	now     func() time.Time
}

// New создает трекер; audit и metrics могут быть nil
func New(audit AuditRecorder, metrics Metrics, log Logger) *Tracker {
	return &Tracker{
		audit:   audit,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// Track записывает действие над ресурсом
func (t *Tracker) Track(ctx context.Context, resource, action, targetID string, err error, message string) {
	if t == nil {
		return
	}
	if t.metrics != nil {
		t.metrics.ObserveAction(resource, action, err)
	}
	if t.audit == nil {
		return
	}

	if err != nil {
		message = toast.Message(err, err.Error())
	}
	entry := domain.AuditEntry{
		Resource:  resource,
		Action:    action,
		TargetID:  targetID,
		Success:   err == nil,
		Message:   message,
		RequestID: requestid.FromContext(ctx),
		CreatedAt: t.now().UTC(),
	}

	// Аудит не должен зависеть от отмены исходного запроса
	if rerr := t.audit.Record(context.WithoutCancel(ctx), entry); rerr != nil {
		t.log.Warn("Track: failed to record audit entry resource=%s action=%s target=%s: %v", resource, action, targetID, rerr)
	}
}
