package resource

import "sync"

// InFlight учёт выполняющихся действий по ключам записей
// Действия по разным записям не блокируют друг друга, повторное действие по той же записи отклоняется
type InFlight struct {
	mu   sync.Mutex
	keys map[string]string
}

func NewInFlight() *InFlight {
	return &InFlight{keys: make(map[string]string)}
}

// Begin занимает ключ; false - по записи уже идёт действие
func (f *InFlight) Begin(key, action string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.keys[key]; busy {
		return false
	}
	f.keys[key] = action
	return true
}

// End освобождает ключ (вызывать через defer независимо от результата)
func (f *InFlight) End(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.keys, key)
}

// Active возвращает действие, выполняющееся по ключу
func (f *InFlight) Active(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	action, ok := f.keys[key]
	return action, ok
}

// Snapshot копия занятых ключей (для отключения кнопок в UI)
func (f *InFlight) Snapshot() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.keys))
	for k, v := range f.keys {
		out[k] = v
	}
	return out
}
