package domain

import "time"

// AuditEntry запись журнала действий администратора
type AuditEntry struct {
	ID        int64     `json:"id"`
	Resource  string    `json:"resource"`
	Action    string    `json:"action"`
	TargetID  string    `json:"targetId,omitempty"`
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
