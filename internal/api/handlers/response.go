package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/integrations/backend"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/toast"
)

// maxBodySize ограничение JSON тела запроса
const maxBodySize = 1 << 20

// Result общий ответ на изменяющие операции консоли
type Result struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Toast   *toast.Toast      `json:"toast,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondSuccess успешный результат операции с уведомлением
func RespondSuccess(w http.ResponseWriter, message string, data interface{}) {
	t := toast.Success(message)
	RespondJSON(w, http.StatusOK, Result{
		Success: true,
		Message: message,
		Toast:   &t,
		Data:    data,
	})
}

// RespondFailure неуспешный результат операции
// Текст уведомления и HTTP статус выводятся из ошибки, ошибки полей формы передаются в errors
func RespondFailure(w http.ResponseWriter, err error, fallback string) {
	RespondFailureData(w, err, fallback, nil)
}

// RespondFailureData неуспешный результат с данными (например, список в состоянии ошибки)
func RespondFailureData(w http.ResponseWriter, err error, fallback string, data interface{}) {
	t := toast.FromError(err, fallback)
	res := Result{
		Success: false,
		Message: t.Message,
		Toast:   &t,
		Data:    data,
	}

	var verr *form.ValidationError
	if errors.As(err, &verr) {
		res.Errors = verr.Fields
	}

	RespondJSON(w, StatusOf(err), res)
}

// RespondError ответ с сообщением и статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	t := toast.Toast{Level: toast.LevelError, Message: message}
	RespondJSON(w, status, Result{Success: false, Message: message, Toast: &t})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, toast.GenericError)
}

// DecodeJSON декодирует JSON тело запроса
// Пустое тело - ошибка
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty request body")
		}
		return err
	}
	return nil
}

// StatusOf HTTP статус для ошибки сервисного слоя
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, form.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, resource.ErrNotReady),
		errors.Is(err, resource.ErrBusy),
		errors.Is(err, resource.ErrNoConfirmation):
		return http.StatusConflict
	case errors.Is(err, resource.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, backend.ErrAuth), backendStatus(err) == http.StatusUnauthorized:
		return http.StatusUnauthorized
	case errors.Is(err, backend.ErrAPI):
		return http.StatusUnprocessableEntity
	case errors.Is(err, backend.ErrTransport), errors.Is(err, backend.ErrInvalidResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// backendStatus HTTP статус ответа backend, если ошибка его несёт
func backendStatus(err error) int {
	var (
		fe *backend.FetchError
		ce *backend.CreateError
		ae *backend.ActionError
	)
	switch {
	case errors.As(err, &fe):
		return fe.Status
	case errors.As(err, &ce):
		return ce.Status
	case errors.As(err, &ae):
		return ae.Status
	}
	return 0
}
