package backend

import (
	"context"
	"time"
)

// Session источник bearer токена
type Session interface {
	Token(ctx context.Context) (string, error)
}

// Metrics сбор метрик вызовов backend
type Metrics interface {
	ObserveBackendCall(operation string, err error, elapsed time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
