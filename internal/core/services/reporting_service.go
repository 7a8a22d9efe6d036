package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
)

// reportingService generates financial reports off the ledger.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountSvc    portssvc.AccountSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, accountSvc portssvc.AccountSvcFacade) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo, accountSvc: accountSvc}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance lists every account with activity and its debit/credit totals
// as of a date.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate trial balance")
		return nil, fmt.Errorf("failed to generate trial balance: %w", err)
	}
	return rows, nil
}

// FundSummary aggregates donation income per fund over a period.
func (s *reportingService) FundSummary(ctx context.Context, from, to time.Time) ([]domain.FundSummaryRow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("report period end %s is before start %s", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	rows, err := s.reportingRepo.GetFundSummaryData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate fund summary")
		return nil, fmt.Errorf("failed to generate fund summary: %w", err)
	}
	return rows, nil
}

// SetBudget records the allocation for an expense account over a period. A
// second allocation for the same account and period replaces the amount.
func (s *reportingService) SetBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, fmt.Errorf("%w: budget period end %s is before start %s", apperrors.ErrValidation,
			req.PeriodEnd.Format(time.DateOnly), req.PeriodStart.Format(time.DateOnly))
	}

	account, err := s.accountSvc.GetAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.AccountType != domain.Expense {
		return nil, fmt.Errorf("%w: budgets apply to EXPENSE accounts, %q is %s", apperrors.ErrValidation, account.Name, account.AccountType)
	}

	now := time.Now().UTC()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		AccountID:   req.AccountID,
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
		Amount:      req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.reportingRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", "account_id", req.AccountID)
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}
	return &budget, nil
}

// BudgetVsActuals compares budget allocations to ledger spend over a window.
func (s *reportingService) BudgetVsActuals(ctx context.Context, from, to time.Time) ([]domain.BudgetVsActualRow, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("report period end %s is before start %s", to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	rows, err := s.reportingRepo.GetBudgetVsActualsData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate budget vs actuals report")
		return nil, fmt.Errorf("failed to generate budget vs actuals report: %w", err)
	}
	return rows, nil
}
