package dashboard

import (
	"time"

	"github.com/m04kA/SMC-AdminConsole/internal/domain"
)

// mockSnapshot фиксированный набор данных для demo-режима
func mockSnapshot(r domain.DateRange) *domain.DashboardSnapshot {
	return &domain.DashboardSnapshot{
		Range: r,
		From:  r.From.Format(dateLayout),
		To:    r.To.Format(dateLayout),
		Stats: domain.Stats{
			TotalUsers:    1280,
			TotalOrders:   342,
			TotalRevenue:  485600,
			TotalLabs:     12,
			TotalPartners: 37,
			PendingOrders: 18,
		},
		UsersTrend:   mockTrend(r, []float64{32, 41, 38, 52, 47, 61, 58}),
		RevenueTrend: mockTrend(r, []float64{42000, 51000, 48500, 63000, 59000, 71000, 68500}),
		OrdersTrend:  mockTrend(r, []float64{28, 35, 31, 44, 40, 52, 49}),
		BookingsByLab: []domain.LabBookings{
			{Lab: "City Diagnostics", Bookings: 124},
			{Lab: "Metro Labs", Bookings: 98},
			{Lab: "Wellness Path", Bookings: 76},
			{Lab: "Care Point", Bookings: 44},
		},
		PaymentMethods: []domain.PaymentMethodShare{
			{Method: "UPI", Count: 198, Amount: 281000},
			{Method: "CARD", Count: 96, Amount: 142500},
			{Method: "CASH", Count: 48, Amount: 62100},
		},
		TopTests: []domain.TopTest{
			{Name: "Complete Blood Count", Orders: 86, Amount: 25800},
			{Name: "Thyroid Profile", Orders: 64, Amount: 31360},
			{Name: "Lipid Profile", Orders: 52, Amount: 31200},
			{Name: "HbA1c", Orders: 41, Amount: 16400},
			{Name: "Vitamin D", Orders: 33, Amount: 39600},
		},
		Demo: true,
	}
}

// mockTrend раскладывает значения равномерно по периоду
func mockTrend(r domain.DateRange, values []float64) []domain.TrendPoint {
	span := r.To.Sub(r.From)
	points := make([]domain.TrendPoint, len(values))
	for i, v := range values {
		offset := span * time.Duration(i+1) / time.Duration(len(values))
		points[i] = domain.TrendPoint{
			Date:  r.From.Add(offset).Format(dateLayout),
			Value: v,
		}
	}
	return points
}
