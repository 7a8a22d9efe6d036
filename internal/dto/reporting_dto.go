package dto

import (
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one account row of the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse is the full trial balance report. TotalDebits and
// TotalCredits are equal whenever the ledger is consistent.
type TrialBalanceResponse struct {
	AsOf         time.Time                 `json:"asOf"`
	Rows         []TrialBalanceRowResponse `json:"rows"`
	TotalDebits  decimal.Decimal           `json:"totalDebits"`
	TotalCredits decimal.Decimal           `json:"totalCredits"`
	Balanced     bool                      `json:"balanced"`
}

// FundSummaryRowResponse is one fund row of the giving summary report.
type FundSummaryRowResponse struct {
	AccountID   string          `json:"accountID"`
	FundAccount string          `json:"fundAccount"`
	Total       decimal.Decimal `json:"total"`
}

// FundSummaryResponse is the giving summary report over a period.
type FundSummaryResponse struct {
	From time.Time                `json:"from"`
	To   time.Time                `json:"to"`
	Rows []FundSummaryRowResponse `json:"rows"`
}

// CreateBudgetRequest sets the allocation for an expense account over a period.
type CreateBudgetRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	PeriodStart time.Time       `json:"periodStart" binding:"required"`
	PeriodEnd   time.Time       `json:"periodEnd" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse is the stored budget allocation.
type BudgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	AccountID   string          `json:"accountID"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	Amount      decimal.Decimal `json:"amount"`
}

// BudgetVsActualRowResponse is one account row of the budget vs actuals report.
type BudgetVsActualRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Actual      decimal.Decimal `json:"actual"`
	Variance    decimal.Decimal `json:"variance"`
}

// BudgetVsActualsResponse is the budget vs actuals report over a window.
type BudgetVsActualsResponse struct {
	From time.Time                   `json:"from"`
	To   time.Time                   `json:"to"`
	Rows []BudgetVsActualRowResponse `json:"rows"`
}

// TrialBalanceParams defines query parameters for the trial balance report.
type TrialBalanceParams struct {
	AsOf *time.Time `form:"asOf" time_format:"2006-01-02"`
}

// FundSummaryParams defines query parameters for the giving summary report.
type FundSummaryParams struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// BudgetVsActualsParams defines query parameters for the budget vs actuals report.
type BudgetVsActualsParams struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// ToTrialBalanceResponse builds the report DTO from domain rows, totalling the
// two sides along the way.
func ToTrialBalanceResponse(asOf time.Time, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	res := make([]TrialBalanceRowResponse, len(rows))
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for i, row := range rows {
		res[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
		totalDebits = totalDebits.Add(row.Debit)
		totalCredits = totalCredits.Add(row.Credit)
	}
	return TrialBalanceResponse{
		AsOf:         asOf,
		Rows:         res,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Balanced:     totalDebits.Equal(totalCredits),
	}
}

// ToBudgetResponse builds the budget DTO from the domain budget.
func ToBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    budget.BudgetID,
		AccountID:   budget.AccountID,
		PeriodStart: budget.PeriodStart,
		PeriodEnd:   budget.PeriodEnd,
		Amount:      budget.Amount,
	}
}

// ToBudgetVsActualsResponse builds the report DTO from domain rows.
func ToBudgetVsActualsResponse(from, to time.Time, rows []domain.BudgetVsActualRow) BudgetVsActualsResponse {
	res := make([]BudgetVsActualRowResponse, len(rows))
	for i, row := range rows {
		res[i] = BudgetVsActualRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			Budgeted:    row.Budgeted,
			Actual:      row.Actual,
			Variance:    row.Variance,
		}
	}
	return BudgetVsActualsResponse{From: from, To: to, Rows: res}
}

// ToFundSummaryResponse builds the giving summary DTO from domain rows.
func ToFundSummaryResponse(from, to time.Time, rows []domain.FundSummaryRow) FundSummaryResponse {
	res := make([]FundSummaryRowResponse, len(rows))
	for i, row := range rows {
		res[i] = FundSummaryRowResponse{
			AccountID:   row.AccountID,
			FundAccount: row.FundAccount,
			Total:       row.Total,
		}
	}
	return FundSummaryResponse{From: from, To: to, Rows: res}
}
