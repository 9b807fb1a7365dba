package get_session

import "context"

type SessionService interface {
	Authenticated(ctx context.Context) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
