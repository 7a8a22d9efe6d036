package models

import "time"

// AuditRecord is the database representation of an audit log row.
type AuditRecord struct {
	AuditID   string    `json:"auditID"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	JournalID *string   `json:"journalID,omitempty"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}
