package requestid

import "context"

type ctxKey struct{}

// Header заголовок с идентификатором запроса
const Header = "X-Request-ID"

// WithID кладёт идентификатор запроса в контекст
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext идентификатор запроса или пустая строка
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
