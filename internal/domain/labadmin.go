package domain

// LabAdmin администратор лаборатории
type LabAdmin struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	LabID ID     `json:"labId"`
}

func (a LabAdmin) Key() string { return string(a.ID) }

func (a LabAdmin) SearchFields() []string {
	return []string{a.Name, a.Email, a.Phone}
}
