package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldType тип поля ввода
type FieldType string

const (
	TypeText     FieldType = "text"
	TypePassword FieldType = "password"
	TypeEmail    FieldType = "email"
	TypeTel      FieldType = "tel"
	TypeNumber   FieldType = "number"
	TypeDate     FieldType = "date"
	TypeSelect   FieldType = "select"
	TypeTextarea FieldType = "textarea"
	TypeCheckbox FieldType = "checkbox"
	TypeList     FieldType = "list"
)

const dateLayout = "2006-01-02"

// Option вариант выпадающего списка
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field описание поля формы
// Pattern - имя зарегистрированного правила (phone, pincode)
type Field struct {
	Name     string      `json:"name"`
	Label    string      `json:"label"`
	Type     FieldType   `json:"type"`
	Required bool        `json:"required"`
	Pattern  string      `json:"pattern,omitempty"`
	Min      *float64    `json:"min,omitempty"`
	Max      *float64    `json:"max,omitempty"`
	MaxLen   int         `json:"maxLength,omitempty"`
	Integer  bool        `json:"integer,omitempty"`
	Options  []Option    `json:"options,omitempty"`
	Default  interface{} `json:"default,omitempty"`
}

// CrossRule проверка по нескольким полям на нормализованных значениях
// Возвращает имя поля и сообщение, если правило нарушено
type CrossRule func(values map[string]interface{}) (field string, message string, failed bool)

// Schema схема формы
type Schema struct {
	Name   string      `json:"name"`
	Title  string      `json:"title"`
	Fields []Field     `json:"fields"`
	Rules  []CrossRule `json:"-"`
}

// FocusField поле, получающее фокус при открытии формы
func (s Schema) FocusField() string {
	if len(s.Fields) == 0 {
		return ""
	}
	return s.Fields[0].Name
}

// Defaults начальные значения формы
func (s Schema) Defaults() map[string]interface{} {
	out := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Default != nil {
			out[f.Name] = f.Default
			continue
		}
		switch f.Type {
		case TypeCheckbox:
			out[f.Name] = false
		case TypeList:
			out[f.Name] = []string{}
		default:
			out[f.Name] = ""
		}
	}
	return out
}

// Field поле схемы по имени
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate проверяет значения формы; пустой результат - форма валидна
func (s Schema) Validate(values map[string]interface{}) Errors {
	errs := Errors{}
	for _, f := range s.Fields {
		if msg := f.check(values[f.Name]); msg != "" {
			errs[f.Name] = msg
		}
	}

	if len(errs) > 0 {
		return errs
	}

	normalized := s.Normalize(values)
	for _, rule := range s.Rules {
		if field, msg, failed := rule(normalized); failed {
			if _, exists := errs[field]; !exists {
				errs[field] = msg
			}
		}
	}
	return errs
}

// IsValid true, если форму можно отправить
func (s Schema) IsValid(values map[string]interface{}) bool {
	return len(s.Validate(values)) == 0
}

// Normalize готовит payload для backend:
// строки обрезаются, числа приводятся к float64/int, пустые необязательные поля опускаются
// Поля вне схемы отбрасываются
func (s Schema) Normalize(values map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(s.Fields))
	for _, f := range s.Fields {
		raw, ok := values[f.Name]
		if !ok || raw == nil {
			continue
		}
		v, present := f.normalize(raw)
		if !present {
			continue
		}
		out[f.Name] = v
	}
	return out
}

// Submit валидирует и нормализует форму
// При ошибке возвращает *ValidationError, сетевой вызов выполнять нельзя
func (s Schema) Submit(values map[string]interface{}) (map[string]interface{}, error) {
	if errs := s.Validate(values); len(errs) > 0 {
		return nil, &ValidationError{Form: s.Name, Fields: errs}
	}
	return s.Normalize(values), nil
}

// check возвращает сообщение об ошибке поля или пустую строку
func (f Field) check(raw interface{}) string {
	if f.Type == TypeCheckbox {
		if _, ok := toBool(raw); !ok && raw != nil && str(raw) != "" {
			return f.label() + " must be true or false"
		}
		return ""
	}

	if f.Type == TypeList {
		items := toList(raw)
		if f.Required && len(items) == 0 {
			return f.label() + " is required"
		}
		return ""
	}

	value := str(raw)
	if value == "" {
		if f.Required {
			return f.label() + " is required"
		}
		return ""
	}

	if err := validate.Var(value, f.tag()); err != nil {
		return f.message(err)
	}

	if f.Type == TypeNumber {
		n, _ := strconv.ParseFloat(value, 64)
		if f.Integer && n != math.Trunc(n) {
			return f.label() + " must be a whole number"
		}
		if err := validate.Var(n, f.rangeTag()); err != nil {
			return f.message(err)
		}
	}
	return ""
}

// tag строковые правила validator для поля
func (f Field) tag() string {
	tags := []string{}
	switch f.Type {
	case TypeEmail:
		tags = append(tags, "email")
	case TypeNumber:
		tags = append(tags, "numeric")
	case TypeDate:
		tags = append(tags, "datetime="+dateLayout)
	case TypeSelect:
		if len(f.Options) > 0 {
			values := make([]string, 0, len(f.Options))
			for _, o := range f.Options {
				if strings.ContainsAny(o.Value, " \t") {
					values = append(values, "'"+o.Value+"'")
				} else {
					values = append(values, o.Value)
				}
			}
			tags = append(tags, "oneof="+strings.Join(values, " "))
		}
	}
	if f.Pattern != "" {
		tags = append(tags, f.Pattern)
	}
	if f.MaxLen > 0 {
		tags = append(tags, fmt.Sprintf("max=%d", f.MaxLen))
	}
	return strings.Join(tags, ",")
}

// rangeTag правила диапазона для числового поля
func (f Field) rangeTag() string {
	tags := []string{}
	if f.Min != nil {
		tags = append(tags, "gte="+strconv.FormatFloat(*f.Min, 'f', -1, 64))
	}
	if f.Max != nil {
		tags = append(tags, "lte="+strconv.FormatFloat(*f.Max, 'f', -1, 64))
	}
	return strings.Join(tags, ",")
}

func (f Field) message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return f.label() + " is invalid"
	}

	switch verrs[0].Tag() {
	case "email":
		return "Enter a valid email address"
	case "numeric":
		return f.label() + " must be a number"
	case "datetime":
		return f.label() + " must be a date (YYYY-MM-DD)"
	case "oneof":
		return "Select a valid " + strings.ToLower(f.label())
	case "phone":
		return "Enter a valid phone number"
	case "pincode":
		return "Enter a valid 6-digit pincode"
	case "max":
		return fmt.Sprintf("%s must be at most %d characters", f.label(), f.MaxLen)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", f.label(), verrs[0].Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", f.label(), verrs[0].Param())
	default:
		return f.label() + " is invalid"
	}
}

func (f Field) label() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// normalize значение поля для payload; false - поле опускается
func (f Field) normalize(raw interface{}) (interface{}, bool) {
	switch f.Type {
	case TypeCheckbox:
		b, ok := toBool(raw)
		return b, ok
	case TypeList:
		items := toList(raw)
		if len(items) == 0 && !f.Required {
			return nil, false
		}
		return items, true
	case TypeNumber:
		value := str(raw)
		if value == "" {
			return nil, false
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, false
		}
		if f.Integer {
			return int(n), true
		}
		return n, true
	default:
		value := str(raw)
		if value == "" {
			return nil, false
		}
		return value, true
	}
}

// str приводит значение из JSON к обрезанной строке
func str(raw interface{}) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func toBool(raw interface{}) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	default:
		return false, false
	}
}

// toList список строк из массива JSON или строки через запятую
func toList(raw interface{}) []string {
	var parts []string
	switch v := raw.(type) {
	case []string:
		parts = v
	case []interface{}:
		for _, item := range v {
			parts = append(parts, str(item))
		}
	case string:
		parts = strings.Split(v, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
