package resource

import (
	"fmt"
	"sync"
)

// Prompt ожидающее подтверждения действие
type Prompt struct {
	Key    string `json:"id"`
	Action string `json:"action"`
	Name   string `json:"name"`
}

// Confirmation модальное подтверждение деструктивных действий
// Одновременно открыт не более одного запроса; новый Ask заменяет предыдущий
type Confirmation struct {
	mu     sync.Mutex
	prompt *Prompt
}

func NewConfirmation() *Confirmation {
	return &Confirmation{}
}

// Ask открывает подтверждение для записи и действия
func (c *Confirmation) Ask(key, action, name string) Prompt {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := Prompt{Key: key, Action: action, Name: name}
	c.prompt = &p
	return p
}

// Pending текущее открытое подтверждение
func (c *Confirmation) Pending() (Prompt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prompt == nil {
		return Prompt{}, false
	}
	return *c.prompt, true
}

// Open true, если подтверждение открыто
func (c *Confirmation) Open() bool {
	_, ok := c.Pending()
	return ok
}

// Cancel закрывает подтверждение без действия
func (c *Confirmation) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompt = nil
}

// Take подтверждает действие: проверяет совпадение ключа и действия и закрывает подтверждение
func (c *Confirmation) Take(key, action string) (Prompt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prompt == nil {
		return Prompt{}, ErrNoConfirmation
	}
	if c.prompt.Key != key || c.prompt.Action != action {
		return Prompt{}, fmt.Errorf("%w: pending %s for %s", ErrNoConfirmation, c.prompt.Action, c.prompt.Key)
	}
	p := *c.prompt
	c.prompt = nil
	return p, nil
}
