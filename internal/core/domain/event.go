package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EventKind enumerates the business events the posting service accepts.
type EventKind string

const (
	DonationReceived EventKind = "DONATION_RECEIVED"
	ExpensePaid      EventKind = "EXPENSE_PAID"
	BillRecorded     EventKind = "BILL_RECORDED"
	BillPaid         EventKind = "BILL_PAID"
	InvoiceIssued    EventKind = "INVOICE_ISSUED"
	InvoiceCollected EventKind = "INVOICE_COLLECTED"
	PayrollRun       EventKind = "PAYROLL_RUN"
)

// EventStatus indicates the lifecycle state of a business event.
type EventStatus string

const (
	EventRecorded EventStatus = "RECORDED"
	EventVoided   EventStatus = "VOIDED"
)

// PayrollLine is one employee's pay within a payroll run. All lines of a run
// are posted as one journal.
type PayrollLine struct {
	EmployeeName string          `json:"employeeName"`
	Amount       decimal.Decimal `json:"amount"`
}

// BusinessEvent is the business-side record of a financial fact (a donation, an
// expense, a bill, an invoice movement or a payroll run). The ledger core
// consumes its derived postings; the event itself is committed in the same
// database transaction as the journal it produced.
type BusinessEvent struct {
	EventID        string          `json:"eventID"` // Primary Key (UUID)
	Kind           EventKind       `json:"kind"`
	IdempotencyKey string          `json:"idempotencyKey"` // Unique; dedupes caller retries
	Amount         decimal.Decimal `json:"amount"`         // Total value of the event
	CurrencyCode   string          `json:"currencyCode"`
	FundOrCategory string          `json:"fundOrCategory,omitempty"` // Fund for donations, category for expenses/bills
	PartyName      string          `json:"partyName,omitempty"`      // Donor, payee, vendor or customer
	Description    string          `json:"description"`
	OccurredAt     time.Time       `json:"occurredAt"`
	PayrollLines   []PayrollLine   `json:"payrollLines,omitempty"` // PAYROLL_RUN only
	JournalID      string          `json:"journalID"`              // Journal committed alongside this event
	Status         EventStatus     `json:"status"`
	AuditFields
}

// Validate checks the event before any entries are built from it.
func (e *BusinessEvent) Validate() error {
	switch e.Kind {
	case DonationReceived, ExpensePaid, BillRecorded, BillPaid, InvoiceIssued, InvoiceCollected:
		if e.Amount.LessThanOrEqual(decimal.Zero) {
			return errors.New("event amount must be positive")
		}
		if len(e.PayrollLines) > 0 {
			return fmt.Errorf("payroll lines are only valid for %s events", PayrollRun)
		}
	case PayrollRun:
		if len(e.PayrollLines) == 0 {
			return errors.New("payroll run must contain at least one employee line")
		}
		total := decimal.Zero
		for _, line := range e.PayrollLines {
			if line.Amount.LessThanOrEqual(decimal.Zero) {
				return fmt.Errorf("payroll amount must be positive for employee %q", line.EmployeeName)
			}
			total = total.Add(line.Amount)
		}
		if !e.Amount.IsZero() && !e.Amount.Equal(total) {
			return fmt.Errorf("payroll run amount %s does not match the sum of its lines %s", e.Amount, total)
		}
	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}

	switch e.Kind {
	case DonationReceived, ExpensePaid, BillRecorded:
		if e.FundOrCategory == "" {
			return fmt.Errorf("%s events require a fund or category", e.Kind)
		}
	}
	return nil
}

// PostingResult is what the posting service hands back after accepting an
// event. Duplicate is true when the idempotency key had already been committed
// and the original posting was returned unchanged.
type PostingResult struct {
	Event     BusinessEvent `json:"event"`
	JournalID string        `json:"journalID"`
	Duplicate bool          `json:"duplicate"`
}

// TotalAmount returns the economic value of the event; for payroll runs it is
// the sum of the employee lines.
func (e *BusinessEvent) TotalAmount() decimal.Decimal {
	if e.Kind != PayrollRun {
		return e.Amount
	}
	total := decimal.Zero
	for _, line := range e.PayrollLines {
		total = total.Add(line.Amount)
	}
	return total
}
