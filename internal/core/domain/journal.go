package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// Journal represents a single, balanced financial event composed of multiple
// transaction lines. Journals are append-only: corrections are posted as a
// reversing journal, never edited in place.
type Journal struct {
	JournalID          string          `json:"journalID"`   // Primary Key (UUID)
	JournalDate        time.Time       `json:"journalDate"` // Date the business event occurred
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode"`
	Status             JournalStatus   `json:"status"`                       // Default: POSTED
	OriginalJournalID  *string         `json:"originalJournalID,omitempty"`  // Set on reversing journals
	ReversingJournalID *string         `json:"reversingJournalID,omitempty"` // Set on reversed journals
	Amount             decimal.Decimal `json:"amount"`                       // Total of the debit side
	Transactions       []Transaction   `json:"transactions,omitempty"`       // Loaded on demand
	AuditFields
}

// IsReversal reports whether this journal was posted to reverse another one.
func (j *Journal) IsReversal() bool {
	return j.OriginalJournalID != nil
}
