package domain

import "time"

// DiscountType тип скидки промокода
type DiscountType string

const (
	DiscountPercent DiscountType = "PERCENT"
	DiscountFixed   DiscountType = "FIXED"
)

// PromoCode промокод со скидкой и ограничениями использования
type PromoCode struct {
	ID             ID           `json:"id"`
	Code           string       `json:"code"`
	Description    string       `json:"description,omitempty"`
	DiscountType   DiscountType `json:"discountType,omitempty"`
	Amount         float64      `json:"amount,omitempty"`
	MaxDiscount    *float64     `json:"maxDiscount,omitempty"`
	MinOrderAmount *float64     `json:"minOrderAmount,omitempty"`
	StartsAt       *Timestamp   `json:"startsAt,omitempty"`
	ExpiresAt      *Timestamp   `json:"expiresAt,omitempty"`
	UsageLimit     *int         `json:"usageLimit,omitempty"`
	UsedCount      int          `json:"usedCount,omitempty"`
	IsActive       bool         `json:"isActive"`
}

func (p PromoCode) Key() string { return string(p.ID) }

func (p PromoCode) SearchFields() []string {
	return []string{p.Code, p.Description}
}

// IsExpired возвращает true, если срок действия истёк к моменту now
func (p PromoCode) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(p.ExpiresAt.Time)
}

// IsExhausted возвращает true, если лимит использований исчерпан
func (p PromoCode) IsExhausted() bool {
	return p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit
}
