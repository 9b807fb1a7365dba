package session

import (
	"context"
	"fmt"
	"strings"
)

// Session доступ к bearer токену администратора
// Создаётся один раз при старте и явно передаётся в клиент backend
type Session struct {
	store     TokenStore
	tokenKey  string
	legacyKey string
	logger    Logger
}

// New создает сессию поверх хранилища
// legacyKey может быть пустым - тогда запасной ключ не читается
func New(store TokenStore, tokenKey, legacyKey string, logger Logger) *Session {
	return &Session{
		store:     store,
		tokenKey:  tokenKey,
		legacyKey: legacyKey,
		logger:    logger,
	}
}

// Token возвращает сохранённый токен или пустую строку
// Ошибки хранилища пробрасываются без обработки
func (s *Session) Token(ctx context.Context) (string, error) {
	token, err := s.store.Get(ctx, s.tokenKey)
	if err != nil {
		return "", err
	}
	if token != "" || s.legacyKey == "" {
		return token, nil
	}

	token, err = s.store.Get(ctx, s.legacyKey)
	if err != nil {
		return "", err
	}
	if token != "" {
		s.logger.Warn("Session: token read from legacy key %q", s.legacyKey)
	}
	return token, nil
}

// Login сохраняет токен (обрезая префикс "Bearer ")
func (s *Session) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.store.Set(ctx, s.tokenKey, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	s.logger.Info("Session: token stored")
	return nil
}

// Logout удаляет токен из обоих ключей
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.tokenKey); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	if s.legacyKey != "" {
		if err := s.store.Delete(ctx, s.legacyKey); err != nil {
			return fmt.Errorf("delete legacy token: %w", err)
		}
	}
	s.logger.Info("Session: token removed")
	return nil
}

// Authenticated возвращает true, если токен сохранён
func (s *Session) Authenticated(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
