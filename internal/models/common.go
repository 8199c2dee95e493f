package models

import "time"

// AuditFields are the audit columns shared by owned rows.
type AuditFields struct {
	CreatedAt time.Time  `db:"created_at"`
	CreatedBy string     `db:"created_by"`
	UpdatedAt *time.Time `db:"updated_at"`
}
