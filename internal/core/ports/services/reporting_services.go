package services

import (
	"context"
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/parishbooks/church_finance_app/internal/dto"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance lists every account with activity and its debit/credit
	// totals as of a date. A ledger in good standing always reports equal
	// grand totals.
	TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// FundSummary aggregates donation income per fund over a period.
	FundSummary(ctx context.Context, from, to time.Time) ([]domain.FundSummaryRow, error)

	// SetBudget records the allocation for an expense account over a period,
	// replacing an earlier allocation for the same account and period.
	SetBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// BudgetVsActuals compares budget allocations to the ledger spend of
	// their accounts over a reporting window.
	BudgetVsActuals(ctx context.Context, from, to time.Time) ([]domain.BudgetVsActualRow, error)
}
