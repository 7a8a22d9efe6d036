package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus indicates the lifecycle state of a business event row.
type EventStatus string

const (
	EventRecorded EventStatus = "RECORDED"
	EventVoided   EventStatus = "VOIDED"
)

// BusinessEvent is the database representation of a business event. Payroll
// lines and other kind-specific payload are stored as JSON in Details.
type BusinessEvent struct {
	EventID        string          `json:"eventID"`
	Kind           string          `json:"kind"`
	IdempotencyKey string          `json:"idempotencyKey"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	FundOrCategory string          `json:"fundOrCategory"`
	PartyName      string          `json:"partyName"`
	Description    string          `json:"description"`
	OccurredAt     time.Time       `json:"occurredAt"`
	Details        []byte          `json:"details,omitempty"` // JSONB payload
	JournalID      string          `json:"journalID"`
	Status         EventStatus     `json:"status"`
	AuditFields
}
