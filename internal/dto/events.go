package dto

import (
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordDonationRequest defines the data needed to record a donation.
type RecordDonationRequest struct {
	MemberName     string          `json:"memberName" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Fund           string          `json:"fund" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Description    string          `json:"description"`
}

// RecordExpenseRequest defines the data needed to record a cash expense.
type RecordExpenseRequest struct {
	Payee          string          `json:"payee" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Description    string          `json:"description"`
}

// RecordBillRequest defines the data needed to record a vendor bill on credit.
type RecordBillRequest struct {
	Vendor         string          `json:"vendor" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Category       string          `json:"category" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Description    string          `json:"description"`
}

// PayBillRequest defines the data needed to record settlement of a bill.
type PayBillRequest struct {
	Vendor         string          `json:"vendor" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Description    string          `json:"description"`
}

// IssueInvoiceRequest defines the data needed to record an invoice issued to a customer.
type IssueInvoiceRequest struct {
	Customer       string          `json:"customer" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Description    string          `json:"description"`
}

// CollectInvoiceRequest defines the data needed to record cash collected on an invoice.
type CollectInvoiceRequest struct {
	Customer       string          `json:"customer" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	IdempotencyKey string          `json:"idempotencyKey" binding:"required"`
	Description    string          `json:"description"`
}

// PayrollLineRequest is one employee's pay within a payroll run request.
type PayrollLineRequest struct {
	EmployeeName string          `json:"employeeName" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
}

// RunPayrollRequest defines the data needed to post a payroll run.
// All lines are posted as a single journal.
type RunPayrollRequest struct {
	Lines          []PayrollLineRequest `json:"lines" binding:"required,min=1,dive"`
	Date           time.Time            `json:"date" binding:"required"`
	IdempotencyKey string               `json:"idempotencyKey" binding:"required"`
	Description    string               `json:"description"`
}

// EventResponse defines the data returned for a business event.
type EventResponse struct {
	EventID        string          `json:"eventID"`
	Kind           string          `json:"kind"`
	IdempotencyKey string          `json:"idempotencyKey"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	FundOrCategory string          `json:"fundOrCategory,omitempty"`
	PartyName      string          `json:"partyName,omitempty"`
	Description    string          `json:"description"`
	OccurredAt     time.Time       `json:"occurredAt"`
	JournalID      string          `json:"journalID"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// PostingResponse is returned after an event is accepted. Duplicate reports an
// idempotent replay; the body then describes the original posting.
type PostingResponse struct {
	Event     EventResponse `json:"event"`
	JournalID string        `json:"journalID"`
	Duplicate bool          `json:"duplicate"`
}

// ListEventsParams defines query parameters for listing business events.
type ListEventsParams struct {
	Kind      *string `form:"kind"`
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListEventsResponse wraps a paginated list of business events.
type ListEventsResponse struct {
	Events    []EventResponse `json:"events"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// VoidEventRequest carries the reason for voiding a business event.
type VoidEventRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ToEventResponse converts a domain.BusinessEvent to EventResponse DTO.
func ToEventResponse(e *domain.BusinessEvent) EventResponse {
	return EventResponse{
		EventID:        e.EventID,
		Kind:           string(e.Kind),
		IdempotencyKey: e.IdempotencyKey,
		Amount:         e.TotalAmount(),
		CurrencyCode:   e.CurrencyCode,
		FundOrCategory: e.FundOrCategory,
		PartyName:      e.PartyName,
		Description:    e.Description,
		OccurredAt:     e.OccurredAt,
		JournalID:      e.JournalID,
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToPostingResponse converts a domain.PostingResult to PostingResponse DTO.
func ToPostingResponse(r *domain.PostingResult) PostingResponse {
	return PostingResponse{
		Event:     ToEventResponse(&r.Event),
		JournalID: r.JournalID,
		Duplicate: r.Duplicate,
	}
}

// ToListEventsResponse converts events plus a pagination token to the list DTO.
func ToListEventsResponse(events []domain.BusinessEvent, nextToken *string) ListEventsResponse {
	res := make([]EventResponse, len(events))
	for i, e := range events {
		res[i] = ToEventResponse(&e)
	}
	return ListEventsResponse{Events: res, NextToken: nextToken}
}
