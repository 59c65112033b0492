package domain

import "time"

// AuditFields holds the creation timestamp stamped by services on insert.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
}
