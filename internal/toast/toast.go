package toast

import (
	"errors"
	"strings"
)

// Level уровень уведомления
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// GenericError сообщение, когда ни API, ни транспорт не дали текста
const GenericError = "Something went wrong. Please try again."

// ValidationMessage сообщение для ошибок валидации формы
const ValidationMessage = "Please fix the highlighted fields"

// Toast однострочное уведомление для администратора
type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// userMessager ошибки, которые несут текст для пользователя (ответ backend или транспорт)
type userMessager interface {
	UserMessage() string
}

// validationError ошибки валидации формы
type validationError interface {
	ValidationFailed() bool
}

func Success(message string) Toast {
	return Toast{Level: LevelSuccess, Message: message}
}

// FromError строит уведомление об ошибке
// Порядок: сообщение ответа backend -> текст транспортной ошибки -> fallback -> GenericError
func FromError(err error, fallback string) Toast {
	return Toast{Level: LevelError, Message: Message(err, fallback)}
}

// Message текст ошибки для уведомления
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var ve validationError
	if errors.As(err, &ve) && ve.ValidationFailed() {
		return ValidationMessage
	}

	var um userMessager
	if errors.As(err, &um) {
		if msg := strings.TrimSpace(um.UserMessage()); msg != "" {
			return msg
		}
	}

	if fallback != "" {
		return fallback
	}
	return GenericError
}
