package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// FundSummaryRow aggregates donation income per fund for the giving report.
type FundSummaryRow struct {
	AccountID   string          `json:"accountID"`
	FundAccount string          `json:"fundAccount"`
	Total       decimal.Decimal `json:"total"`
}

// Budget is the allocation for an expense account over a period. One account
// carries at most one budget per period.
type Budget struct {
	BudgetID    string          `json:"budgetID"`
	AccountID   string          `json:"accountID"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Amount      decimal.Decimal `json:"amount"`
	AuditFields
}

// BudgetVsActualRow compares an expense account's budget to its ledger spend
// over the report window.
type BudgetVsActualRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Actual      decimal.Decimal `json:"actual"`
	Variance    decimal.Decimal `json:"variance"`
}
