package dto

import (
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a journal line.
type TransactionResponse struct {
	TransactionID      string          `json:"transactionID"`
	JournalID          string          `json:"journalID"`
	AccountID          string          `json:"accountID"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type"` // DEBIT or CREDIT
	CurrencyCode       string          `json:"currencyCode"`
	Notes              string          `json:"notes,omitempty"`
	RunningBalance     decimal.Decimal `json:"runningBalance"`
	JournalDate        time.Time       `json:"journalDate,omitempty"`
	JournalDescription string          `json:"journalDescription,omitempty"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID          string          `json:"journalID"`
	Date               time.Time       `json:"date"`
	Description        string          `json:"description"`
	CurrencyCode       string          `json:"currencyCode"`
	Status             string          `json:"status"`
	Amount             decimal.Decimal `json:"amount"`
	OriginalJournalID  *string         `json:"originalJournalID,omitempty"`
	ReversingJournalID *string         `json:"reversingJournalID,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	CreatedBy          string          `json:"createdBy"`
}

// GetJournalResponse defines the combined response for getting a journal and its lines.
type GetJournalResponse struct {
	Journal      JournalResponse       `json:"journal"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit            int     `form:"limit,default=20"`
	NextToken        *string `form:"nextToken"`
	IncludeReversals bool    `form:"includeReversals,default=true"`
}

// ListJournalsResponse wraps a paginated list of journals.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListTransactionsParams defines query parameters for an account statement.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a paginated account statement.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ReverseJournalRequest carries the reason for voiding a posted journal.
type ReverseJournalRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:      txn.TransactionID,
		JournalID:          txn.JournalID,
		AccountID:          txn.AccountID,
		Amount:             txn.Amount,
		Type:               string(txn.TransactionType),
		CurrencyCode:       txn.CurrencyCode,
		Notes:              txn.Notes,
		RunningBalance:     txn.RunningBalance,
		JournalDate:        txn.JournalDate,
		JournalDescription: txn.JournalDescription,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		JournalID:          j.JournalID,
		Date:               j.JournalDate,
		Description:        j.Description,
		CurrencyCode:       j.CurrencyCode,
		Status:             string(j.Status),
		Amount:             j.Amount,
		OriginalJournalID:  j.OriginalJournalID,
		ReversingJournalID: j.ReversingJournalID,
		CreatedAt:          j.CreatedAt,
		CreatedBy:          j.CreatedBy,
	}
}

// ToListJournalsResponse converts journals plus a pagination token to the list DTO.
func ToListJournalsResponse(journals []domain.Journal, nextToken *string) ListJournalsResponse {
	res := make([]JournalResponse, len(journals))
	for i, j := range journals {
		res[i] = ToJournalResponse(&j)
	}
	return ListJournalsResponse{Journals: res, NextToken: nextToken}
}
