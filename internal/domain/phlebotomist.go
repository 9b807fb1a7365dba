package domain

import "strings"

// Phlebotomist выездной сотрудник лаборатории для забора проб
type Phlebotomist struct {
	ID           ID     `json:"id"`
	LabID        ID     `json:"labId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName,omitempty"`
	Mobile       string `json:"mobile"`
	Alternate    string `json:"alternate,omitempty"`
	Email        string `json:"email,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Pincode      string `json:"pincode,omitempty"`
	IsActive     bool   `json:"isActive"`
}

func (p Phlebotomist) Key() string { return string(p.ID) }

func (p Phlebotomist) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p Phlebotomist) SearchFields() []string {
	return []string{p.FullName(), p.Email, p.Mobile, p.City}
}
