package domain

import "strings"

// PricingType тип прайс-листа партнёра
type PricingType string

const (
	PricingTests    PricingType = "tests"
	PricingPackages PricingType = "packages"
)

// ParsePricingType разбирает тип прайс-листа
func ParsePricingType(s string) (PricingType, bool) {
	switch t := PricingType(strings.ToLower(strings.TrimSpace(s))); t {
	case PricingTests, PricingPackages:
		return t, true
	default:
		return "", false
	}
}

// PricingResult результат загрузки прайс-листа
type PricingResult struct {
	FinalCount int    `json:"finalCount"`
	Message    string `json:"message,omitempty"`
	ArchiveKey string `json:"archiveKey,omitempty"`
}
