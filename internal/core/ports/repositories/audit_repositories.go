package repositories

import (
	"context"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
)

// AuditWriter defines write operations for the audit log. The log is
// append-only; there are no update or delete operations.
type AuditWriter interface {
	// SaveAuditRecord persists a new audit record.
	SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error
}

// AuditReader defines read operations for the audit log
type AuditReader interface {
	// ListAuditRecords retrieves a paginated list of audit records, newest first.
	ListAuditRecords(ctx context.Context, limit int, nextToken *string) ([]domain.AuditRecord, *string, error)

	// FindAuditRecordsByJournalID retrieves the audit trail of one journal.
	FindAuditRecordsByJournalID(ctx context.Context, journalID string) ([]domain.AuditRecord, error)
}

// AuditRepositoryFacade combines all audit-related repository interfaces
type AuditRepositoryFacade interface {
	AuditWriter
	AuditReader
}
