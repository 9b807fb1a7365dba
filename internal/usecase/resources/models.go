package resources

import (
	"github.com/m04kA/SMC-AdminConsole/internal/form"
)

// Params параметры страницы списка
type Params struct {
	Query  string
	Status string
	Page   int
	LabID  string
}

// FormView схема формы для рендеринга модального окна
type FormView struct {
	Schema   form.Schema            `json:"schema"`
	Defaults map[string]interface{} `json:"defaults"`
	Focus    string                 `json:"focus"`
}

// Created результат создания записи через форму
type Created struct {
	Record  interface{}
	Message string
}

func newFormView(schema form.Schema) FormView {
	return FormView{
		Schema:   schema,
		Defaults: schema.Defaults(),
		Focus:    schema.FocusField(),
	}
}
