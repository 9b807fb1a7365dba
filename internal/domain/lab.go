package domain

// Lab лаборатория с вложенными пакетами и тестами
type Lab struct {
	ID       ID        `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address,omitempty"`
	Rating   float64   `json:"rating,omitempty"`
	IsActive bool      `json:"isActive"`
	Packages []Package `json:"packages,omitempty"`
	Tests    []Test    `json:"tests,omitempty"`
}

func (l Lab) Key() string { return string(l.ID) }

func (l Lab) SearchFields() []string {
	return []string{l.Name, l.Address}
}

// Package пакет анализов лаборатории
type Package struct {
	ID            ID            `json:"id"`
	LabID         ID            `json:"labId"`
	Name          string        `json:"name"`
	IncludedTests IncludedTests `json:"includedTests"`
	TotalParams   int           `json:"totalParams,omitempty"`
	MRP           float64       `json:"mrp"`
	Discounted    float64       `json:"discounted,omitempty"`
	Preparation   string        `json:"preparation,omitempty"`
	ReportTime    string        `json:"reportTime,omitempty"`
}

// Test отдельный анализ лаборатории
type Test struct {
	ID          ID      `json:"id"`
	LabID       ID      `json:"labId"`
	Name        string  `json:"name"`
	Code        string  `json:"code,omitempty"`
	Parameters  int     `json:"parameters,omitempty"`
	MRP         float64 `json:"mrp"`
	Discounted  float64 `json:"discounted,omitempty"`
	Preparation string  `json:"preparation,omitempty"`
	ReportTime  string  `json:"reportTime,omitempty"`
}

// LabName ищет название лаборатории по ID линейным проходом
// Возвращает пустую строку, если лаборатория не найдена
func LabName(labs []Lab, id ID) string {
	for _, lab := range labs {
		if lab.ID == id {
			return lab.Name
		}
	}
	return ""
}
