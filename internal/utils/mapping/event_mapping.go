package mapping

import (
	"encoding/json"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/parishbooks/church_finance_app/internal/models"
)

// eventDetails is the JSONB payload stored alongside a business event row.
type eventDetails struct {
	PayrollLines []domain.PayrollLine `json:"payrollLines,omitempty"`
}

// ToModelEvent converts a domain BusinessEvent to a model BusinessEvent.
func ToModelEvent(d domain.BusinessEvent) (models.BusinessEvent, error) {
	var details []byte
	if len(d.PayrollLines) > 0 {
		var err error
		details, err = json.Marshal(eventDetails{PayrollLines: d.PayrollLines})
		if err != nil {
			return models.BusinessEvent{}, err
		}
	}
	return models.BusinessEvent{
		EventID:        d.EventID,
		Kind:           string(d.Kind),
		IdempotencyKey: d.IdempotencyKey,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		FundOrCategory: d.FundOrCategory,
		PartyName:      d.PartyName,
		Description:    d.Description,
		OccurredAt:     d.OccurredAt,
		Details:        details,
		JournalID:      d.JournalID,
		Status:         models.EventStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainEvent converts a model BusinessEvent to a domain BusinessEvent.
func ToDomainEvent(m models.BusinessEvent) (domain.BusinessEvent, error) {
	d := domain.BusinessEvent{
		EventID:        m.EventID,
		Kind:           domain.EventKind(m.Kind),
		IdempotencyKey: m.IdempotencyKey,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		FundOrCategory: m.FundOrCategory,
		PartyName:      m.PartyName,
		Description:    m.Description,
		OccurredAt:     m.OccurredAt,
		JournalID:      m.JournalID,
		Status:         domain.EventStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if len(m.Details) > 0 {
		var details eventDetails
		if err := json.Unmarshal(m.Details, &details); err != nil {
			return domain.BusinessEvent{}, err
		}
		d.PayrollLines = details.PayrollLines
	}
	return d, nil
}
