package onboarding

import "errors"

var (
	// ErrLoad не удалось загрузить список из backend
	ErrLoad = errors.New("onboarding: failed to load records")

	// ErrCreate backend не создал запись
	ErrCreate = errors.New("onboarding: failed to create record")
)
