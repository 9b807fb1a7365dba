package session

import "errors"

var (
	// ErrStorage возвращается при ошибке чтения/записи хранилища
	ErrStorage = errors.New("session: storage error")

	// ErrEmptyToken возвращается при попытке сохранить пустой токен
	ErrEmptyToken = errors.New("session: empty token")
)
