package phlebotomists

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/internal/form"
	"github.com/m04kA/SMC-AdminConsole/internal/resource"
	"github.com/m04kA/SMC-AdminConsole/internal/service/onboarding"
)

const (
	ResourceName = "phlebotomists"

	actionToggle = "toggle"
	actionDelete = "delete"
)

// Screen состояние экрана флеботомистов
type Screen struct {
	List     resource.View[domain.Phlebotomist] `json:"list"`
	LabID    domain.ID                          `json:"labId,omitempty"`
	InFlight map[string]string                  `json:"inFlight"`
}

// Service флеботомисты: список с фильтром по лаборатории, создание, toggle и delete
type Service struct {
	*onboarding.Manager[domain.Phlebotomist]

	client   BackendClient
	inFlight *resource.InFlight
	tracker  Tracker
	logger   Logger

	mu    sync.RWMutex
	labID domain.ID
}

// NewService создает новый экземпляр сервиса флеботомистов
func NewService(client BackendClient, pageSize int, tracker Tracker, logger Logger) *Service {
	s := &Service{
		client:   client,
		inFlight: resource.NewInFlight(),
		tracker:  tracker,
		logger:   logger,
	}
	source := onboarding.Funcs[domain.Phlebotomist]{
		ListFunc: func(ctx context.Context) ([]domain.Phlebotomist, error) {
			return client.ListPhlebotomists(ctx, s.LabFilter())
		},
		CreateFunc: client.CreatePhlebotomist,
	}
	s.Manager = onboarding.NewManager[domain.Phlebotomist](ResourceName, pageSize, form.PhlebotomistSchema(), source, tracker, logger)
	return s
}

// LabFilter текущий фильтр по лаборатории (пусто - все)
func (s *Service) LabFilter() domain.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labID
}

// SetLabFilter меняет фильтр; при изменении список перезагружается
func (s *Service) SetLabFilter(ctx context.Context, labID domain.ID) error {
	s.mu.Lock()
	changed := s.labID != labID
	s.labID = labID
	s.mu.Unlock()

	if !changed {
		return s.EnsureLoaded(ctx)
	}
	s.logger.Info("SetLabFilter: lab filter changed to %q", labID)
	return s.Refresh(ctx)
}

// Screen список + занятые строки
func (s *Service) Screen(q onboarding.Query) Screen {
	return Screen{
		List:     s.View(q),
		LabID:    s.LabFilter(),
		InFlight: s.inFlight.Snapshot(),
	}
}

// Toggle активирует/деактивирует флеботомиста
// Если backend не вернул запись, IsActive инвертируется локально
func (s *Service) Toggle(ctx context.Context, id domain.ID) (*domain.Phlebotomist, string, error) {
	key := id.String()
	if _, ok := s.List().Get(key); !ok {
		s.logger.Warn("Toggle: phlebotomist id=%s not found", id)
		return nil, "", ErrNotFound
	}

	if !s.inFlight.Begin(key, actionToggle) {
		s.logger.Warn("Toggle: action already in progress for id=%s", id)
		return nil, "", resource.ErrBusy
	}
	defer s.inFlight.End(key)

	acted, err := s.client.TogglePhlebotomist(ctx, id)
	if err != nil {
		s.logger.Error("Toggle: failed for id=%s: %v", id, err)
		s.tracker.Track(ctx, ResourceName, actionToggle, key, err, "")
		return nil, "", fmt.Errorf("%w: toggle: %w", ErrActionFailed, err)
	}

	var updated domain.Phlebotomist
	err = s.List().Update(key, func(p domain.Phlebotomist) domain.Phlebotomist {
		if acted.Record != nil && acted.Record.ID == p.ID {
			p = *acted.Record
		} else {
			p.IsActive = !p.IsActive
		}
		updated = p
		return p
	})
	if err != nil {
		s.logger.Warn("Toggle: done for id=%s but local list not updated: %v", id, err)
		if acted.Record == nil {
			return nil, "", fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		updated = *acted.Record
	}

	message := acted.Message
	if message == "" {
		message = "Phlebotomist deactivated"
		if updated.IsActive {
			message = "Phlebotomist activated"
		}
	}

	s.tracker.Track(ctx, ResourceName, actionToggle, key, nil, message)
	s.logger.Info("Toggle: phlebotomist id=%s active=%v", id, updated.IsActive)
	return &updated, message, nil
}

// Delete удаляет флеботомиста в backend и из локального списка
func (s *Service) Delete(ctx context.Context, id domain.ID) (string, error) {
	key := id.String()
	if _, ok := s.List().Get(key); !ok {
		s.logger.Warn("Delete: phlebotomist id=%s not found", id)
		return "", ErrNotFound
	}

	if !s.inFlight.Begin(key, actionDelete) {
		s.logger.Warn("Delete: action already in progress for id=%s", id)
		return "", resource.ErrBusy
	}
	defer s.inFlight.End(key)

	if err := s.client.DeletePhlebotomist(ctx, id); err != nil {
		s.logger.Error("Delete: failed for id=%s: %v", id, err)
		s.tracker.Track(ctx, ResourceName, actionDelete, key, err, "")
		return "", fmt.Errorf("%w: delete: %w", ErrActionFailed, err)
	}

	if err := s.List().Remove(key); err != nil && !errors.Is(err, resource.ErrNotFound) {
		s.logger.Warn("Delete: done for id=%s but local list not updated: %v", id, err)
	}

	const message = "Phlebotomist deleted"
	s.tracker.Track(ctx, ResourceName, actionDelete, key, nil, message)
	s.logger.Info("Delete: phlebotomist id=%s deleted", id)
	return message, nil
}
