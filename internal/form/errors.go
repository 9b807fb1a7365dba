package form

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation форма не прошла проверку, запрос в backend не отправлялся
var ErrValidation = errors.New("form: validation failed")

// Errors ошибки полей: имя поля -> сообщение
type Errors map[string]string

// ValidationError ошибка валидации формы с ошибками по полям
type ValidationError struct {
	Form   string
	Fields Errors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s: invalid fields: %s", e.Form, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func (e *ValidationError) ValidationFailed() bool { return true }
