package mapping

import (
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/parishbooks/church_finance_app/internal/models"
)

// ToModelAuditRecord converts a domain AuditRecord to a model AuditRecord
func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		AuditID:   d.AuditID,
		Actor:     d.Actor,
		Action:    string(d.Action),
		JournalID: d.JournalID,
		Details:   d.Details,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAuditRecord converts a model AuditRecord to a domain AuditRecord
func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		AuditID:   m.AuditID,
		Actor:     m.Actor,
		Action:    domain.AuditAction(m.Action),
		JournalID: m.JournalID,
		Details:   m.Details,
		CreatedAt: m.CreatedAt,
	}
}
