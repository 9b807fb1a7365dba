package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
	"github.com/m04kA/SMC-AdminConsole/pkg/logger"
)

type fakeStats struct {
	calls   int32
	failTop error
	ranges  chan domain.DateRange
}

func (f *fakeStats) seen(r domain.DateRange) {
	atomic.AddInt32(&f.calls, 1)
	if f.ranges != nil {
		f.ranges <- r
	}
}

func (f *fakeStats) Stats(_ context.Context, r domain.DateRange) (domain.Stats, error) {
	f.seen(r)
	return domain.Stats{TotalUsers: 10, TotalOrders: 4}, nil
}

func (f *fakeStats) UsersTrend(_ context.Context, r domain.DateRange) ([]domain.TrendPoint, error) {
	f.seen(r)
	return []domain.TrendPoint{{Date: "2026-01-01", Value: 3}}, nil
}

func (f *fakeStats) RevenueTrend(_ context.Context, r domain.DateRange) ([]domain.TrendPoint, error) {
	f.seen(r)
	return []domain.TrendPoint{{Date: "2026-01-01", Value: 900}}, nil
}

func (f *fakeStats) OrdersTrend(_ context.Context, r domain.DateRange) ([]domain.TrendPoint, error) {
	f.seen(r)
	return []domain.TrendPoint{}, nil
}

func (f *fakeStats) BookingsByLab(_ context.Context, r domain.DateRange) ([]domain.LabBookings, error) {
	f.seen(r)
	return []domain.LabBookings{{Lab: "City Lab", Bookings: 2}}, nil
}

func (f *fakeStats) PaymentMethods(_ context.Context, r domain.DateRange) ([]domain.PaymentMethodShare, error) {
	f.seen(r)
	return []domain.PaymentMethodShare{{Method: "UPI", Count: 4}}, nil
}

func (f *fakeStats) TopTests(_ context.Context, r domain.DateRange) ([]domain.TopTest, error) {
	f.seen(r)
	if f.failTop != nil {
		return nil, f.failTop
	}
	return []domain.TopTest{{Name: "CBC", Orders: 3}}, nil
}

func testRange() domain.DateRange {
	return domain.DateRange{
		From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestSnapshot_AggregatesAllEndpoints(t *testing.T) {
	stats := &fakeStats{ranges: make(chan domain.DateRange, 7)}
	s := NewService(stats, false, 30, logger.NewNop())

	snap, err := s.Snapshot(context.Background(), testRange())
	require.NoError(t, err)

	assert.Equal(t, int32(7), atomic.LoadInt32(&stats.calls))
	close(stats.ranges)
	for r := range stats.ranges {
		assert.Equal(t, testRange(), r)
	}

	assert.False(t, snap.Demo)
	assert.Equal(t, "2026-01-01", snap.From)
	assert.Equal(t, "2026-01-31", snap.To)
	assert.Equal(t, 10, snap.Stats.TotalUsers)
	assert.Len(t, snap.UsersTrend, 1)
	assert.Equal(t, "CBC", snap.TopTests[0].Name)
	assert.NotNil(t, snap.OrdersTrend)
}

func TestSnapshot_FailureWithoutDemoMode(t *testing.T) {
	boom := errors.New("top tests down")
	s := NewService(&fakeStats{failTop: boom}, false, 30, logger.NewNop())

	_, err := s.Snapshot(context.Background(), testRange())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestSnapshot_DemoModeFallsBackToMock(t *testing.T) {
	s := NewService(&fakeStats{failTop: errors.New("down")}, true, 30, logger.NewNop())

	snap, err := s.Snapshot(context.Background(), testRange())
	require.NoError(t, err)
	assert.True(t, snap.Demo)
	assert.NotZero(t, snap.Stats.TotalUsers)
	assert.NotEmpty(t, snap.TopTests)
	require.NotEmpty(t, snap.RevenueTrend)
	assert.Equal(t, "2026-01-31", snap.RevenueTrend[len(snap.RevenueTrend)-1].Date)
}

func TestParseRange(t *testing.T) {
	s := NewService(&fakeStats{}, false, 0, logger.NewNop())
	s.now = func() time.Time { return time.Date(2026, 3, 31, 15, 30, 0, 0, time.UTC) }

	r, err := s.ParseRange("", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.From, "default range is the last 30 days")
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), r.To)

	r, err = s.ParseRange("2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, testRange(), r)

	_, err = s.ParseRange("2026-02-01", "2026-01-01")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = s.ParseRange("01/02/2026", "")
	assert.ErrorIs(t, err, ErrInvalidRange)
}
