package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	mimeJSON            = "application/json"
)

// Client клиент REST backend платформы
// Один базовый URL на все ресурсы, токен берётся из сессии на каждый запрос
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    Session
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента backend
// timeout = 0 означает таймаут транспорта по умолчанию (без ограничения)
func NewClient(baseURL string, timeout time.Duration, session Session, log Logger, metrics Metrics) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		session: session,
		log:     log,
		metrics: metrics,
	}
}

// request описание одного вызова backend
type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// call выполняет запрос и возвращает тело успешного (2xx) ответа
// Любая ошибка возвращается как *callError для последующей классификации
func (c *Client) call(ctx context.Context, r request) (body []byte, cerr *callError) {
	started := time.Now()
	defer func() {
		var err error
		if cerr != nil {
			err = cerr.err
		}
		if c.metrics != nil {
			c.metrics.ObserveBackendCall(r.op, err, time.Since(started))
		}
	}()

	token, err := c.session.Token(ctx)
	if err != nil {
		c.log.Error("%s: failed to read auth token: %v", r.op, err)
		return nil, &callError{message: err.Error(), err: fmt.Errorf("%w: %v", ErrAuth, err)}
	}

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, r.body)
	if err != nil {
		return nil, &callError{message: err.Error(), err: fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)}
	}

	if token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	} else {
		req.Header.Set(headerAuthorization, "")
	}
	if r.contentType != "" {
		req.Header.Set(headerContentType, r.contentType)
	}
	req.Header.Set("Accept", mimeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s: %s %s failed: %v", r.op, r.method, r.path, err)
		return nil, &callError{message: err.Error(), err: fmt.Errorf("%w: %v", ErrTransport, err)}
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("%s: failed to read response body: %v", r.op, err)
		return nil, &callError{status: resp.StatusCode, message: err.Error(), err: fmt.Errorf("%w: read body: %v", ErrTransport, err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := messageFromBody(body)
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		c.log.Warn("%s: %s %s returned status %d: %s", r.op, r.method, r.path, resp.StatusCode, msg)
		return nil, &callError{
			status:  resp.StatusCode,
			message: msg,
			err:     fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode),
		}
	}

	return body, nil
}

// checkEnvelope проверяет {success: false} в успешном по HTTP ответе
// Отсутствие поля success трактуется как успех
func checkEnvelope(body []byte, status int) (string, *callError) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// Тело не объект (например голый массив) - конверта нет
		return "", nil
	}
	msg := strings.TrimSpace(env.Message)
	if env.Success != nil && !*env.Success {
		if msg == "" {
			msg = strings.TrimSpace(env.Error)
		}
		if msg == "" {
			msg = "request was not successful"
		}
		return msg, &callError{status: status, message: msg, err: fmt.Errorf("%w: %s", ErrAPI, msg)}
	}
	return msg, nil
}

// jsonBody кодирует payload запроса
func jsonBody(payload interface{}) (io.Reader, *callError) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &callError{message: err.Error(), err: fmt.Errorf("%w: encode payload: %v", ErrInternal, err)}
	}
	return bytes.NewReader(data), nil
}

// fetchList GET запрос списка с нормализацией формы ответа
func fetchList[T any](ctx context.Context, c *Client, op, path string, query url.Values, keys ...string) ([]T, error) {
	body, cerr := c.call(ctx, request{op: op, method: http.MethodGet, path: path, query: query})
	if cerr != nil {
		return nil, cerr.fetch(op)
	}
	if _, cerr := checkEnvelope(body, http.StatusOK); cerr != nil {
		return nil, cerr.fetch(op)
	}

	items, err := DecodeList[T](body, keys...)
	if err != nil {
		c.log.Error("%s: %v", op, err)
		return nil, &FetchError{Op: op, Status: http.StatusOK, Message: err.Error(), Err: err}
	}

	c.log.Info("%s: fetched %d records", op, len(items))
	return items, nil
}

// fetchRecord GET запрос одиночного объекта
func fetchRecord[T any](ctx context.Context, c *Client, op, path string, query url.Values, key string) (T, error) {
	var zero T

	body, cerr := c.call(ctx, request{op: op, method: http.MethodGet, path: path, query: query})
	if cerr != nil {
		return zero, cerr.fetch(op)
	}
	if _, cerr := checkEnvelope(body, http.StatusOK); cerr != nil {
		return zero, cerr.fetch(op)
	}

	record, err := decodeRecord[T](body, key)
	if err != nil {
		c.log.Error("%s: %v", op, err)
		return zero, &FetchError{Op: op, Status: http.StatusOK, Message: err.Error(), Err: err}
	}
	return record, nil
}

// Created результат создания записи
type Created[T any] struct {
	Record  T
	Message string
}

// create POST запрос с JSON телом
// Возвращает созданную запись из конверта, чтобы вызывающий мог вставить её без повторного запроса
func create[T any](ctx context.Context, c *Client, op, path string, payload interface{}, key string) (*Created[T], error) {
	reader, cerr := jsonBody(payload)
	if cerr != nil {
		return nil, cerr.create(op)
	}

	body, cerr := c.call(ctx, request{op: op, method: http.MethodPost, path: path, body: reader, contentType: mimeJSON})
	if cerr != nil {
		return nil, cerr.create(op)
	}

	msg, cerr := checkEnvelope(body, http.StatusOK)
	if cerr != nil {
		c.log.Warn("%s: backend rejected request: %s", op, cerr.message)
		return nil, cerr.create(op)
	}

	record, err := decodeCreated[T](body, key, payload)
	if err != nil {
		c.log.Error("%s: %v", op, err)
		return nil, &CreateError{Op: op, Status: http.StatusOK, Message: err.Error(), Err: err}
	}

	c.log.Info("%s: record created", op)
	return &Created[T]{Record: record, Message: msg}, nil
}

// decodeCreated запись из ответа; без ключа сущности и "data" - отправленный payload
func decodeCreated[T any](body []byte, key string, payload interface{}) (T, error) {
	if hasKey(body, key) || hasKey(body, "data") {
		return decodeRecord[T](body, key)
	}

	var record T
	data, err := json.Marshal(payload)
	if err != nil {
		return record, fmt.Errorf("%w: re-encode payload: %v", ErrInternal, err)
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("%w: decode payload as record: %v", ErrInvalidResponse, err)
	}
	return record, nil
}

// Acted результат изменяющего действия
// Record заполнен, только если backend вернул обновлённую запись
type Acted[T any] struct {
	Record  *T
	Message string
}

// act PATCH/DELETE запрос без тела
func act[T any](ctx context.Context, c *Client, op, method, path, key string) (*Acted[T], error) {
	body, cerr := c.call(ctx, request{op: op, method: method, path: path})
	if cerr != nil {
		return nil, cerr.action(op)
	}

	result := &Acted[T]{}
	if len(bytes.TrimSpace(body)) == 0 {
		return result, nil
	}

	msg, cerr := checkEnvelope(body, http.StatusOK)
	if cerr != nil {
		c.log.Warn("%s: backend rejected action: %s", op, cerr.message)
		return nil, cerr.action(op)
	}
	result.Message = msg

	if key != "" && (hasKey(body, key) || hasKey(body, "data")) {
		record, err := decodeRecord[T](body, key)
		if err != nil {
			// Действие выполнено, запись не разобрана - вызывающий обновит состояние сам
			c.log.Warn("%s: action succeeded but record is malformed: %v", op, err)
			return result, nil
		}
		result.Record = &record
	}

	c.log.Info("%s: action completed", op)
	return result, nil
}
