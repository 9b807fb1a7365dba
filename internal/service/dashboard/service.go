package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	// DefaultDays период по умолчанию
	DefaultDays = 30
)

// Service дашборд: параллельная загрузка метрик за период
type Service struct {
	client      StatsClient
	demoMode    bool
	defaultDays int
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса дашборда
// demoMode = true: при ошибке backend отдаётся фиксированный набор данных с флагом Demo
func NewService(client StatsClient, demoMode bool, defaultDays int, logger Logger) *Service {
	if defaultDays <= 0 {
		defaultDays = DefaultDays
	}
	return &Service{
		client:      client,
		demoMode:    demoMode,
		defaultDays: defaultDays,
		logger:      logger,
		now:         time.Now,
	}
}

// ParseRange разбирает период из строк YYYY-MM-DD; пустые значения - последние defaultDays дней
func (s *Service) ParseRange(from, to string) (domain.DateRange, error) {
	today := s.now().UTC().Truncate(24 * time.Hour)
	r := domain.DateRange{
		From: today.AddDate(0, 0, -s.defaultDays),
		To:   today,
	}

	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%w: from: %v", ErrInvalidRange, err)
		}
		r.From = t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return domain.DateRange{}, fmt.Errorf("%w: to: %v", ErrInvalidRange, err)
		}
		r.To = t
	}
	if r.From.After(r.To) {
		return domain.DateRange{}, fmt.Errorf("%w: from is after to", ErrInvalidRange)
	}
	return r, nil
}

// Snapshot загружает все метрики параллельно
// Любая ошибка: в demo-режиме - mock с Demo=true, иначе ошибка ErrUnavailable
func (s *Service) Snapshot(ctx context.Context, r domain.DateRange) (*domain.DashboardSnapshot, error) {
	s.logger.Info("Snapshot: loading dashboard from=%s to=%s", r.From.Format(dateLayout), r.To.Format(dateLayout))

	snap := &domain.DashboardSnapshot{
		Range: r,
		From:  r.From.Format(dateLayout),
		To:    r.To.Format(dateLayout),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Stats, err = s.client.Stats(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.UsersTrend, err = s.client.UsersTrend(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.RevenueTrend, err = s.client.RevenueTrend(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.OrdersTrend, err = s.client.OrdersTrend(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.BookingsByLab, err = s.client.BookingsByLab(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.PaymentMethods, err = s.client.PaymentMethods(gctx, r)
		return err
	})
	g.Go(func() (err error) {
		snap.TopTests, err = s.client.TopTests(gctx, r)
		return err
	})

	if err := g.Wait(); err != nil {
		if s.demoMode {
			s.logger.Warn("Snapshot: backend metrics failed, serving demo data: %v", err)
			return mockSnapshot(r), nil
		}
		s.logger.Error("Snapshot: backend metrics failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	s.logger.Info("Snapshot: dashboard loaded")
	return snap, nil
}
