package resources

import "errors"

var (
	// ErrUnknownResource экрана с таким именем нет
	ErrUnknownResource = errors.New("resources: unknown resource")

	// ErrInvalidParams некорректные параметры списка
	ErrInvalidParams = errors.New("resources: invalid list parameters")
)
