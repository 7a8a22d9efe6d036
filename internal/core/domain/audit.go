package domain

import "time"

// AuditAction names the operation an audit record describes.
type AuditAction string

const (
	ActionEventPosted     AuditAction = "EVENT_POSTED"
	ActionJournalReversed AuditAction = "JOURNAL_REVERSED"
	ActionAccountCreated  AuditAction = "ACCOUNT_CREATED"
	ActionAccountDisabled AuditAction = "ACCOUNT_DISABLED"
	ActionPostingRejected AuditAction = "POSTING_REJECTED"
	ActionDuplicateReplay AuditAction = "DUPLICATE_REPLAY"
)

// AuditRecord is a write-once record of who did what. Records correlated with
// a ledger posting carry the journal ID; registry changes and failed attempts
// may carry none. Never updated or deleted.
type AuditRecord struct {
	AuditID   string      `json:"auditID"` // Primary Key (UUID)
	Actor     string      `json:"actor"`   // Opaque principal from the identity provider
	Action    AuditAction `json:"action"`
	JournalID *string     `json:"journalID,omitempty"`
	Details   string      `json:"details,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}
