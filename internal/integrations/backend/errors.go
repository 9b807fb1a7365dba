package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport сеть недоступна или backend ответил не 2xx
	ErrTransport = errors.New("backend: transport error")

	// ErrAPI backend ответил {success: false}
	ErrAPI = errors.New("backend: api error")

	// ErrInvalidResponse тело ответа не удалось разобрать
	ErrInvalidResponse = errors.New("backend: invalid response")

	// ErrAuth не удалось прочитать токен из хранилища сессии
	ErrAuth = errors.New("backend: cannot read auth token")

	// ErrInternal ошибка построения запроса
	ErrInternal = errors.New("backend: internal client error")
)

// FetchError ошибка получения списка или данных
type FetchError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *FetchError) Unwrap() error { return e.Err }

// UserMessage сообщение для уведомления администратора
func (e *FetchError) UserMessage() string { return e.Message }

// CreateError ошибка создания записи (JSON или multipart)
type CreateError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *CreateError) Unwrap() error { return e.Err }

func (e *CreateError) UserMessage() string { return e.Message }

// ActionError ошибка изменяющего действия (approve, reject, toggle, delete)
type ActionError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ActionError) Unwrap() error { return e.Err }

func (e *ActionError) UserMessage() string { return e.Message }

// callError промежуточный результат вызова до классификации по типу операции
type callError struct {
	status  int
	message string
	err     error
}

func (c *callError) fetch(op string) error {
	return &FetchError{Op: op, Status: c.status, Message: c.message, Err: c.err}
}

func (c *callError) create(op string) error {
	return &CreateError{Op: op, Status: c.status, Message: c.message, Err: c.err}
}

func (c *callError) action(op string) error {
	return &ActionError{Op: op, Status: c.status, Message: c.message, Err: c.err}
}
