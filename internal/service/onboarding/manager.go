package onboarding

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
)

const actionCreate = "create"

// Query параметры представления списка
type Query struct {
	Search string
	Status string
	Page   int
}

// Result результат создания записи
type Result[T any] struct {
	Record  T
	Message string
}

// Manager экран онбординга: список + форма создания + вызовы backend
// Один тип на все ресурсы (лаборатории, админы, флеботомисты, промокоды, партнёры)
type Manager[T resource.Record] struct {
	name    string
	list    *resource.List[T]
	schema  form.Schema
	source  Source[T]
	tracker Tracker
	logger  Logger
}

// NewManager создает менеджер ресурса name
func NewManager[T resource.Record](
	name string,
	pageSize int,
	schema form.Schema,
	source Source[T],
	tracker Tracker,
	logger Logger,
) *Manager[T] {
	return &Manager[T]{
		name:    name,
		list:    resource.NewList[T](pageSize),
		schema:  schema,
		source:  source,
		tracker: tracker,
		logger:  logger,
	}
}

// Name имя ресурса
func (m *Manager[T]) Name() string { return m.name }

// List список, которым владеет менеджер
func (m *Manager[T]) List() *resource.List[T] { return m.list }

// Schema схема формы создания
func (m *Manager[T]) Schema() form.Schema { return m.schema }

// Refresh перезагружает список из backend
// При ошибке список переходит в состояние Error и очищается
func (m *Manager[T]) Refresh(ctx context.Context) error {
	m.logger.Info("Refresh: loading %s", m.name)

	if err := m.list.Load(ctx, m.source.List); err != nil {
		m.logger.Error("Refresh: failed to load %s: %v", m.name, err)
		return fmt.Errorf("%w: %s: %w", ErrLoad, m.name, err)
	}

	m.logger.Info("Refresh: %s loaded, total=%d", m.name, len(m.list.Items()))
	return nil
}

// EnsureLoaded загружает список при первом обращении
func (m *Manager[T]) EnsureLoaded(ctx context.Context) error {
	if m.list.State() != resource.StateIdle {
		return nil
	}
	return m.Refresh(ctx)
}

// View возвращает страницу списка по параметрам запроса.
// Общее состояние фильтров не меняется: каждый запрос видит только свои параметры
func (m *Manager[T]) View(q Query) resource.View[T] {
	return m.list.ViewFor(q.Search, q.Status, q.Page)
}

// Submit валидирует форму, создаёт запись в backend и вставляет её в начало списка
// Ошибка валидации возвращается до сетевого вызова
func (m *Manager[T]) Submit(ctx context.Context, values map[string]interface{}) (*Result[T], error) {
	return m.SubmitWith(ctx, m.schema, values)
}

// SubmitWith как Submit, но со схемой, дополненной вариантами (например списком лабораторий)
func (m *Manager[T]) SubmitWith(ctx context.Context, schema form.Schema, values map[string]interface{}) (*Result[T], error) {
	payload, err := schema.Submit(values)
	if err != nil {
		m.logger.Warn("Submit: %s form is invalid: %v", m.name, err)
		return nil, err
	}

	if m.list.State() != resource.StateReady {
		m.logger.Warn("Submit: %s list is not loaded", m.name)
		return nil, resource.ErrNotReady
	}

	created, err := m.source.Create(ctx, payload)
	if err != nil {
		m.logger.Error("Submit: failed to create %s: %v", m.name, err)
		m.tracker.Track(ctx, m.name, actionCreate, "", err, "")
		return nil, fmt.Errorf("%w: %s: %w", ErrCreate, m.name, err)
	}

	if err := m.list.Prepend(created.Record); err != nil {
		// Список перезагружается: запись уже создана в backend и придёт с новой загрузкой
		m.logger.Warn("Submit: %s created but not inserted, key=%s: %v", m.name, created.Record.Key(), err)
	}

	m.tracker.Track(ctx, m.name, actionCreate, created.Record.Key(), nil, created.Message)
	m.logger.Info("Submit: %s created, key=%s", m.name, created.Record.Key())
	return &Result[T]{Record: created.Record, Message: created.Message}, nil
}
