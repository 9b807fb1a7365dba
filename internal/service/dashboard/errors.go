package dashboard

import "errors"

var (
	// ErrInvalidRange начало периода позже конца
	ErrInvalidRange = errors.New("dashboard: invalid date range")

	// ErrUnavailable не удалось получить метрики и demo-режим выключен
	ErrUnavailable = errors.New("dashboard: metrics unavailable")
)
