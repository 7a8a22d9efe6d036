package repositories

import (
	"context"
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
)

// ReportingRepository defines read operations for financial reports
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account debit/credit totals as of a date.
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetFundSummaryData aggregates donation income per fund account over a period.
	GetFundSummaryData(ctx context.Context, from, to time.Time) ([]domain.FundSummaryRow, error)

	// SaveBudget inserts a budget, replacing the amount when the account
	// already carries one for the same period.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// GetBudgetVsActualsData compares budgets falling inside the window
	// against the ledger spend of their accounts over the same window.
	GetBudgetVsActualsData(ctx context.Context, from, to time.Time) ([]domain.BudgetVsActualRow, error)
}
