package archive

import "errors"

var (
	// ErrBucket не удалось проверить или создать bucket
	ErrBucket = errors.New("archive: bucket unavailable")

	// ErrPut не удалось сохранить объект
	ErrPut = errors.New("archive: failed to store object")
)
