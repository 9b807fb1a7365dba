package domain

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// IncludedTests упорядоченный список тестов, входящих в пакет
//
// На проводе встречаются три формы:
//   - JSON массив: ["CBC", "ESR"]
//   - строка с JSON массивом: "[\"CBC\",\"ESR\"]"
//   - строка через запятую: "CBC, ESR"
type IncludedTests []string

func (t *IncludedTests) UnmarshalJSON(data []byte) error {
	tests, err := ParseIncludedTests(data)
	if err != nil {
		return err
	}
	*t = tests
	return nil
}

// MarshalJSON всегда отдаёт массив (никогда null)
func (t IncludedTests) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// ParseIncludedTests единственная точка декодирования includedTests
func ParseIncludedTests(data []byte) (IncludedTests, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return IncludedTests{}, nil
	}

	switch data[0] {
	case '[':
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("decode includedTests array: %w", err)
		}
		return cleanTests(items), nil

	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("decode includedTests string: %w", err)
		}
		return ParseIncludedTestsString(s), nil

	default:
		return nil, fmt.Errorf("decode includedTests: unsupported value %s", string(data))
	}
}

// ParseIncludedTestsString разбирает строковую форму (JSON массив в строке или список через запятую)
func ParseIncludedTestsString(s string) IncludedTests {
	s = strings.TrimSpace(s)
	if s == "" {
		return IncludedTests{}
	}

	if strings.HasPrefix(s, "[") {
		var items []string
		if err := json.Unmarshal([]byte(s), &items); err == nil {
			return cleanTests(items)
		}
		// Битый JSON: снимаем скобки и кавычки, дальше как список через запятую
		s = strings.Trim(s, "[]")
	}

	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"'`)
	}
	return cleanTests(parts)
}

func cleanTests(items []string) IncludedTests {
	out := make(IncludedTests, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
