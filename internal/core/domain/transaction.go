package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Opposite returns the mirrored transaction type, used when building reversals.
func (t TransactionType) Opposite() TransactionType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// Transaction represents a single line item within a Journal, affecting one
// account. Lines are immutable once committed.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	JournalID       string          `json:"journalID"`     // FK -> Journal.journalID
	AccountID       string          `json:"accountID"`     // FK -> Account.accountID
	Amount          decimal.Decimal `json:"amount"`        // Positive value
	TransactionType TransactionType `json:"transactionType"`
	CurrencyCode    string          `json:"currencyCode"` // Must match the journal currency
	Notes           string          `json:"notes"`
	AuditFields
	RunningBalance decimal.Decimal `json:"runningBalance"` // Account balance after this line

	// Denormalized journal context, populated on reads that join the journal.
	JournalDate        time.Time `json:"journalDate,omitempty"`
	JournalDescription string    `json:"journalDescription,omitempty"`
}

// Validate checks the structural validity of a single transaction line.
func (t *Transaction) Validate() error {
	if t.AccountID == "" {
		return errors.New("transaction must reference an account")
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("transaction amount must be positive")
	}
	if t.TransactionType != Debit && t.TransactionType != Credit {
		return errors.New("transaction type must be DEBIT or CREDIT")
	}
	if t.CurrencyCode == "" {
		return errors.New("transaction currency code is required")
	}
	return nil
}
