package domain

import "time"

// DateRange период выборки метрик дашборда
type DateRange struct {
	From time.Time
	To   time.Time
}

// Stats сводные показатели платформы
type Stats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalLabs     int     `json:"totalLabs"`
	TotalPartners int     `json:"totalPartners"`
	PendingOrders int     `json:"pendingOrders"`
}

// TrendPoint точка временного ряда
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// LabBookings число бронирований по лаборатории
type LabBookings struct {
	Lab      string `json:"lab"`
	Bookings int    `json:"bookings"`
}

// PaymentMethodShare доля способа оплаты
type PaymentMethodShare struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount,omitempty"`
}

// TopTest популярный анализ
type TopTest struct {
	Name   string  `json:"name"`
	Orders int     `json:"orders"`
	Amount float64 `json:"amount,omitempty"`
}

// DashboardSnapshot агрегированные данные дашборда
// Demo = true означает, что вместо данных backend подставлен mock-набор
type DashboardSnapshot struct {
	Range          DateRange            `json:"-"`
	From           string               `json:"from"`
	To             string               `json:"to"`
	Stats          Stats                `json:"stats"`
	UsersTrend     []TrendPoint         `json:"usersTrend"`
	RevenueTrend   []TrendPoint         `json:"revenueTrend"`
	OrdersTrend    []TrendPoint         `json:"ordersTrend"`
	BookingsByLab  []LabBookings        `json:"bookingsByLab"`
	PaymentMethods []PaymentMethodShare `json:"paymentMethods"`
	TopTests       []TopTest            `json:"topTests"`
	Demo           bool                 `json:"demo"`
}
