package services

import (
	"context"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
)

// AuditSvcFacade defines operations on the append-only audit log
type AuditSvcFacade interface {
	// Record appends an audit record. Audit failures are reported but must
	// never roll back the financial write they describe.
	Record(ctx context.Context, actor string, action domain.AuditAction, journalID *string, details string) error

	// ListAuditRecords retrieves a paginated list of audit records, newest first.
	ListAuditRecords(ctx context.Context, limit int, nextToken *string) ([]domain.AuditRecord, *string, error)

	// GetAuditTrailForJournal retrieves the audit trail of one journal.
	GetAuditTrailForJournal(ctx context.Context, journalID string) ([]domain.AuditRecord, error)
}
