package onboarding

import (
	"context"

	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
)

// Funcs адаптер пары функций клиента backend к Source
type Funcs[T any] struct {
	ListFunc   func(ctx context.Context) ([]T, error)
	CreateFunc func(ctx context.Context, payload map[string]interface{}) (*backend.Created[T], error)
}

func (f Funcs[T]) List(ctx context.Context) ([]T, error) {
	return f.ListFunc(ctx)
}

func (f Funcs[T]) Create(ctx context.Context, payload map[string]interface{}) (*backend.Created[T], error) {
	return f.CreateFunc(ctx, payload)
}
