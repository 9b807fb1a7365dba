package domain

import "strings"

// PartnerStatus статус заявки партнёра
type PartnerStatus string

const (
	PartnerPending  PartnerStatus = "PENDING"
	PartnerAccepted PartnerStatus = "ACCEPTED"
	PartnerRejected PartnerStatus = "REJECTED"
)

// PartnerAction действие администратора над заявкой
type PartnerAction string

const (
	ActionApprove PartnerAction = "approve"
	ActionReject  PartnerAction = "reject"
)

// TargetStatus статус, в который переводит действие
func (a PartnerAction) TargetStatus() (PartnerStatus, bool) {
	switch a {
	case ActionApprove:
		return PartnerAccepted, true
	case ActionReject:
		return PartnerRejected, true
	default:
		return "", false
	}
}

// ParsePartnerAction разбирает действие из URL/тела запроса
func ParsePartnerAction(s string) (PartnerAction, bool) {
	a := PartnerAction(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := a.TargetStatus(); !ok {
		return "", false
	}
	return a, true
}

// PartnerRequest заявка внешнего партнёра (аптека, клиника, спортзал)
type PartnerRequest struct {
	ID          ID            `json:"id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName,omitempty"`
	Email       string        `json:"email,omitempty"`
	Mobile      string        `json:"mobile,omitempty"`
	DOB         string        `json:"dob,omitempty"`
	Gender      string        `json:"gender,omitempty"`
	PartnerType string        `json:"partnerType,omitempty"`
	ShopName    string        `json:"shopName,omitempty"`
	Pincode     string        `json:"pincode,omitempty"`
	Address     string        `json:"address,omitempty"`
	Status      PartnerStatus `json:"status"`
	CreatedAt   *Timestamp    `json:"createdAt,omitempty"`
}

func (p PartnerRequest) Key() string { return string(p.ID) }

func (p PartnerRequest) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p PartnerRequest) SearchFields() []string {
	return []string{p.FullName(), p.Email, p.Mobile, p.ShopName}
}

func (p PartnerRequest) StatusValue() string {
	return string(p.Status)
}

// CanTransition переходы только из PENDING, в одну сторону
func (p PartnerRequest) CanTransition() bool {
	return p.Status == PartnerPending
}
