package backend

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// envelope общий конверт ответа backend: {success, message, <data>}
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// DecodeList приводит ответ списка к упорядоченному срезу
// Поддерживаются голый массив и объект с массивом под одним из ключей (например {"labs": [...]})
func DecodeList[T any](body []byte, keys ...string) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidResponse)
	}

	if body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("%w: decode array: %v", ErrInvalidResponse, err)
		}
		return nonNil(items), nil
	}

	if body[0] != '{' {
		return nil, fmt.Errorf("%w: expected array or object", ErrInvalidResponse)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("%w: decode object: %v", ErrInvalidResponse, err)
	}

	candidates := append(append([]string{}, keys...), "data", "items")
	for _, key := range candidates {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if bytes.Equal(raw, []byte("null")) {
			return []T{}, nil
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: decode %q: %v", ErrInvalidResponse, key, err)
		}
		return nonNil(items), nil
	}

	return nil, fmt.Errorf("%w: no list under keys %s", ErrInvalidResponse, strings.Join(keys, ", "))
}

// decodeRecord извлекает запись из конверта по ключу сущности
// Если ключа нет, пробует "data", затем тело целиком
func decodeRecord[T any](body []byte, key string) (T, error) {
	var zero T

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return zero, fmt.Errorf("%w: decode object: %v", ErrInvalidResponse, err)
	}

	for _, k := range []string{key, "data"} {
		if k == "" {
			continue
		}
		raw, ok := obj[k]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return zero, fmt.Errorf("%w: decode %q: %v", ErrInvalidResponse, k, err)
		}
		return record, nil
	}

	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return zero, fmt.Errorf("%w: decode record: %v", ErrInvalidResponse, err)
	}
	return record, nil
}

// hasKey проверяет наличие непустого ключа верхнего уровня
func hasKey(body []byte, key string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return false
	}
	raw, ok := obj[key]
	return ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// messageFromBody достаёт поле message (или error) из тела ответа
func messageFromBody(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if msg := strings.TrimSpace(env.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(env.Error)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
