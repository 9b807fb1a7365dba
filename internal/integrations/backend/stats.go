package backend

import (
	"context"
	"net/url"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

func rangeQuery(r domain.DateRange) url.Values {
	q := url.Values{}
	if !r.From.IsZero() {
		q.Set("from", r.From.Format("2006-01-02"))
	}
	if !r.To.IsZero() {
		q.Set("to", r.To.Format("2006-01-02"))
	}
	return q
}

// Stats GET /admin/stats
func (c *Client) Stats(ctx context.Context, r domain.DateRange) (domain.Stats, error) {
	return fetchRecord[domain.Stats](ctx, c, "Stats", "/admin/stats", rangeQuery(r), "stats")
}

// UsersTrend GET /admin/users-trend
func (c *Client) UsersTrend(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error) {
	return fetchList[domain.TrendPoint](ctx, c, "UsersTrend", "/admin/users-trend", rangeQuery(r), "trend", "users")
}

// RevenueTrend GET /admin/revenue-trend
func (c *Client) RevenueTrend(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error) {
	return fetchList[domain.TrendPoint](ctx, c, "RevenueTrend", "/admin/revenue-trend", rangeQuery(r), "trend", "revenue")
}

// OrdersTrend GET /admin/orders-trend
func (c *Client) OrdersTrend(ctx context.Context, r domain.DateRange) ([]domain.TrendPoint, error) {
	return fetchList[domain.TrendPoint](ctx, c, "OrdersTrend", "/admin/orders-trend", rangeQuery(r), "trend", "orders")
}

// BookingsByLab GET /admin/bookings-by-lab
func (c *Client) BookingsByLab(ctx context.Context, r domain.DateRange) ([]domain.LabBookings, error) {
	return fetchList[domain.LabBookings](ctx, c, "BookingsByLab", "/admin/bookings-by-lab", rangeQuery(r), "bookings", "labs")
}

// PaymentMethods GET /admin/payment-methods
func (c *Client) PaymentMethods(ctx context.Context, r domain.DateRange) ([]domain.PaymentMethodShare, error) {
	return fetchList[domain.PaymentMethodShare](ctx, c, "PaymentMethods", "/admin/payment-methods", rangeQuery(r), "methods", "paymentMethods")
}

// TopTests GET /admin/top-tests
func (c *Client) TopTests(ctx context.Context, r domain.DateRange) ([]domain.TopTest, error) {
	return fetchList[domain.TopTest](ctx, c, "TopTests", "/admin/top-tests", rangeQuery(r), "tests", "topTests")
}
