package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
)

// auditService appends and reads the write-once audit log.
type auditService struct {
	BaseService
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends an audit record.
func (s *auditService) Record(ctx context.Context, actor string, action domain.AuditAction, journalID *string, details string) error {
	record := domain.AuditRecord{
		AuditID:   uuid.NewString(),
		Actor:     actor,
		Action:    action,
		JournalID: journalID,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}
	return s.auditRepo.SaveAuditRecord(ctx, record)
}

// ListAuditRecords retrieves a paginated list of audit records, newest first.
func (s *auditService) ListAuditRecords(ctx context.Context, limit int, nextToken *string) ([]domain.AuditRecord, *string, error) {
	return s.auditRepo.ListAuditRecords(ctx, limit, nextToken)
}

// GetAuditTrailForJournal retrieves the audit trail of one journal.
func (s *auditService) GetAuditTrailForJournal(ctx context.Context, journalID string) ([]domain.AuditRecord, error) {
	return s.auditRepo.FindAuditRecordsByJournalID(ctx, journalID)
}
