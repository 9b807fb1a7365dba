package resource

import "errors"

var (
	// ErrNotReady мутация списка до успешной загрузки
	ErrNotReady = errors.New("resource: list is not loaded")

	// ErrNotFound запись с таким ключом отсутствует в списке
	ErrNotFound = errors.New("resource: record not found")

	// ErrBusy по этой записи уже выполняется действие
	ErrBusy = errors.New("resource: action already in progress for this record")

	// ErrNoConfirmation действие не было подтверждено
	ErrNoConfirmation = errors.New("resource: action was not confirmed")
)
