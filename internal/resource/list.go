package resource

import (
	"context"
	"strings"
	"sync"

	"github.com/m04kA/SMC-AdminConsole/internal/toast"
)

// DefaultPageSize размер страницы списка
const DefaultPageSize = 8

// StatusAll вкладка без фильтра по статусу
const StatusAll = "ALL"

// State состояние загрузки списка
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Record запись списка
type Record interface {
	Key() string
	SearchFields() []string
}

// StatusRecord запись со статусом (для вкладок)
type StatusRecord interface {
	StatusValue() string
}

// FetchFunc загрузка записей из backend
type FetchFunc[T Record] func(ctx context.Context) ([]T, error)

// View производное представление списка для рендеринга
type View[T Record] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	Filtered   int    `json:"filtered"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	PageSize   int    `json:"pageSize"`
	Query      string `json:"query"`
	Status     string `json:"status"`
	State      State  `json:"state"`
	Error      string `json:"error,omitempty"`
}

// List единственный владелец списка записей одного экрана
// Сетевые вызовы выполняются вне блокировки
type List[T Record] struct {
	mu       sync.RWMutex
	items    []T
	state    State
	errMsg   string
	query    string
	status   string
	page     int
	pageSize int
	loadSeq  uint64
}

// NewList создает пустой список в состоянии Idle
func NewList[T Record](pageSize int) *List[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &List[T]{
		items:    []T{},
		state:    StateIdle,
		status:   StatusAll,
		page:     1,
		pageSize: pageSize,
	}
}

// Load Idle/Ready/Error -> Loading -> Ready | Error
// При ошибке список очищается. Результат устаревшей загрузки (если началась новая) отбрасывается
func (l *List[T]) Load(ctx context.Context, fetch FetchFunc[T]) error {
	l.mu.Lock()
	l.state = StateLoading
	l.errMsg = ""
	l.loadSeq++
	seq := l.loadSeq
	l.mu.Unlock()

	items, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if seq != l.loadSeq {
		return err
	}

	if err != nil {
		l.state = StateError
		l.errMsg = toast.Message(err, "Failed to load records")
		l.items = []T{}
		l.page = 1
		return err
	}

	if items == nil {
		items = []T{}
	}
	l.items = items
	l.state = StateReady
	l.page = 1
	return nil
}

// SetQuery меняет поисковую строку и возвращает на первую страницу
func (l *List[T]) SetQuery(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = query
	l.page = 1
}

// SetStatus меняет вкладку статуса; пустая строка = ALL
func (l *List[T]) SetStatus(status string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = normalizeStatus(status)
	l.page = 1
}

// SetPage выбирает страницу (приводится к допустимому диапазону при рендеринге)
func (l *List[T]) SetPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = normalizePage(page)
}

// View пересчитывает отфильтрованное и постраничное представление
func (l *List[T]) View() View[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.render(l.query, l.status, l.page)
}

// ViewFor строит представление по переданным параметрам, не меняя состояние списка.
// Параллельные запросы с разными фильтрами не влияют друг на друга
func (l *List[T]) ViewFor(query, status string, page int) View[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.render(query, normalizeStatus(status), normalizePage(page))
}

// render вызывается под l.mu
func (l *List[T]) render(query, status string, page int) View[T] {
	filtered := Filter(l.items, query, status)
	pageItems, page, totalPages := Paginate(filtered, page, l.pageSize)

	return View[T]{
		Items:      pageItems,
		Total:      len(l.items),
		Filtered:   len(filtered),
		Page:       page,
		TotalPages: totalPages,
		PageSize:   l.pageSize,
		Query:      query,
		Status:     status,
		State:      l.state,
		Error:      l.errMsg,
	}
}

func normalizeStatus(status string) string {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		return StatusAll
	}
	return status
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// State текущее состояние загрузки
func (l *List[T]) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Items копия всех записей (без фильтра)
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Get запись по ключу
func (l *List[T]) Get(key string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Prepend вставляет созданную запись в начало списка
func (l *List[T]) Prepend(item T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateReady {
		return ErrNotReady
	}
	items := make([]T, 0, len(l.items)+1)
	items = append(items, item)
	l.items = append(items, l.items...)
	return nil
}

// Update заменяет запись с ключом key результатом fn
func (l *List[T]) Update(key string, fn func(T) T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateReady {
		return ErrNotReady
	}
	for i, item := range l.items {
		if item.Key() == key {
			l.items[i] = fn(item)
			return nil
		}
	}
	return ErrNotFound
}

// Remove удаляет запись с ключом key
func (l *List[T]) Remove(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != StateReady {
		return ErrNotReady
	}
	for i, item := range l.items {
		if item.Key() == key {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Filter подстрочный поиск без учёта регистра по полям записи + фильтр вкладки статуса
func Filter[T Record](items []T, query, status string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	status = strings.ToUpper(strings.TrimSpace(status))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if status != "" && status != StatusAll {
			sr, ok := any(item).(StatusRecord)
			if !ok || !strings.EqualFold(sr.StatusValue(), status) {
				continue
			}
		}
		if query != "" && !matches(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches[T Record](item T, query string) bool {
	for _, field := range item.SearchFields() {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Paginate возвращает элементы страницы, фактический номер страницы и число страниц
// totalPages = ceil(len/size), минимум 1; страница приводится к [1, totalPages]
func Paginate[T any](items []T, page, size int) ([]T, int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}, page, totalPages
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, page, totalPages
}
