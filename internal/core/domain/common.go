package domain

import "time"

// AuditFields holds creation/update stamps for domain entities.
type AuditFields struct {
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"` // UserID Reference
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
