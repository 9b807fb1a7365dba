package labs

import "errors"

var (
	// ErrLabNotFound лаборатории нет в загруженном списке
	ErrLabNotFound = errors.New("labs: lab not found")

	// ErrCreateFailed backend не создал пакет или тест
	ErrCreateFailed = errors.New("labs: failed to create lab item")
)
