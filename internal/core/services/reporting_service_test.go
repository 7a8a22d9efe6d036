package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/core/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReportingRepository struct {
	mock.Mock
}

// Ensure MockReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetFundSummaryData(ctx context.Context, from, to time.Time) ([]domain.FundSummaryRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundSummaryRow), args.Error(1)
}

func (m *MockReportingRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockReportingRepository) GetBudgetVsActualsData(ctx context.Context, from, to time.Time) ([]domain.BudgetVsActualRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetVsActualRow), args.Error(1)
}

func newReportingFixture() (*MockReportingRepository, *MockAccountService, portssvc.ReportingService) {
	mockRepo := new(MockReportingRepository)
	mockAccountSvc := new(MockAccountService)
	return mockRepo, mockAccountSvc, services.NewReportingService(mockRepo, mockAccountSvc)
}

func TestTrialBalance(t *testing.T) {
	mockRepo, _, svc := newReportingFixture()
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	rows := []domain.TrialBalanceRow{
		{AccountName: domain.AccountCash, AccountType: domain.Asset, Debit: decimal.NewFromInt(7000)},
		{AccountName: "Building Fund Income", AccountType: domain.Income, Credit: decimal.NewFromInt(7000)},
	}

	mockRepo.On("GetTrialBalanceData", mock.Anything, asOf).Return(rows, nil).Once()

	got, err := svc.TrialBalance(context.Background(), asOf)

	require.NoError(t, err)
	require.Len(t, got, 2)

	debits, credits := decimal.Zero, decimal.Zero
	for _, row := range got {
		debits = debits.Add(row.Debit)
		credits = credits.Add(row.Credit)
	}
	assert.True(t, debits.Equal(credits), "trial balance totals must agree: debits %s, credits %s", debits, credits)
	mockRepo.AssertExpectations(t)
}

func TestFundSummary_InvertedPeriod(t *testing.T) {
	mockRepo, _, svc := newReportingFixture()
	from := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.FundSummary(context.Background(), from, to)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetFundSummaryData", mock.Anything, mock.Anything, mock.Anything)
}

func TestFundSummary(t *testing.T) {
	mockRepo, _, svc := newReportingFixture()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	rows := []domain.FundSummaryRow{
		{FundAccount: "Tithes & Offering Income", Total: decimal.NewFromInt(120000)},
		{FundAccount: "Missions Income", Total: decimal.NewFromInt(45000)},
	}

	mockRepo.On("GetFundSummaryData", mock.Anything, from, to).Return(rows, nil).Once()

	got, err := svc.FundSummary(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	mockRepo.AssertExpectations(t)
}

func budgetRequest(accountID string) dto.CreateBudgetRequest {
	return dto.CreateBudgetRequest{
		AccountID:   accountID,
		PeriodStart: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(50000),
	}
}

func TestSetBudget(t *testing.T) {
	mockRepo, mockAccountSvc, svc := newReportingFixture()
	userID := uuid.NewString()
	account := domain.Account{AccountID: uuid.NewString(), Name: "Utilities Expense", AccountType: domain.Expense, IsActive: true}
	req := budgetRequest(account.AccountID)

	mockAccountSvc.On("GetAccountByID", mock.Anything, account.AccountID).Return(&account, nil).Once()

	var saved domain.Budget
	mockRepo.On("SaveBudget", mock.Anything, mock.AnythingOfType("domain.Budget")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Budget)
		}).Return(nil).Once()

	budget, err := svc.SetBudget(context.Background(), userID, req)

	require.NoError(t, err)
	require.NotNil(t, budget)
	assert.NotEmpty(t, budget.BudgetID)
	assert.Equal(t, account.AccountID, saved.AccountID)
	assert.True(t, req.Amount.Equal(saved.Amount))
	assert.Equal(t, userID, saved.CreatedBy)
	mockRepo.AssertExpectations(t)
}

func TestSetBudget_Invalid(t *testing.T) {
	account := domain.Account{AccountID: uuid.NewString(), Name: "Utilities Expense", AccountType: domain.Expense, IsActive: true}
	incomeAccount := domain.Account{AccountID: uuid.NewString(), Name: "Building Fund Income", AccountType: domain.Income, IsActive: true}

	testCases := []struct {
		name    string
		mutate  func(req *dto.CreateBudgetRequest)
		account *domain.Account
	}{
		{
			name:   "zero amount",
			mutate: func(req *dto.CreateBudgetRequest) { req.Amount = decimal.Zero },
		},
		{
			name:   "inverted period",
			mutate: func(req *dto.CreateBudgetRequest) { req.PeriodStart, req.PeriodEnd = req.PeriodEnd, req.PeriodStart },
		},
		{
			name:    "non-expense account",
			mutate:  func(req *dto.CreateBudgetRequest) { req.AccountID = incomeAccount.AccountID },
			account: &incomeAccount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo, mockAccountSvc, svc := newReportingFixture()
			req := budgetRequest(account.AccountID)
			tc.mutate(&req)
			if tc.account != nil {
				mockAccountSvc.On("GetAccountByID", mock.Anything, tc.account.AccountID).Return(tc.account, nil).Once()
			}

			_, err := svc.SetBudget(context.Background(), uuid.NewString(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			mockRepo.AssertNotCalled(t, "SaveBudget", mock.Anything, mock.Anything)
		})
	}
}

func TestSetBudget_UnknownAccount(t *testing.T) {
	mockRepo, mockAccountSvc, svc := newReportingFixture()
	req := budgetRequest(uuid.NewString())

	mockAccountSvc.On("GetAccountByID", mock.Anything, req.AccountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.SetBudget(context.Background(), uuid.NewString(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "SaveBudget", mock.Anything, mock.Anything)
}

func TestBudgetVsActuals(t *testing.T) {
	mockRepo, _, svc := newReportingFixture()
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	rows := []domain.BudgetVsActualRow{
		{AccountName: "Utilities Expense", Budgeted: decimal.NewFromInt(50000), Actual: decimal.NewFromInt(42000), Variance: decimal.NewFromInt(8000)},
	}

	mockRepo.On("GetBudgetVsActualsData", mock.Anything, from, to).Return(rows, nil).Once()

	got, err := svc.BudgetVsActuals(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Variance.Equal(got[0].Budgeted.Sub(got[0].Actual)))
	mockRepo.AssertExpectations(t)
}

func TestBudgetVsActuals_InvertedPeriod(t *testing.T) {
	mockRepo, _, svc := newReportingFixture()
	from := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.BudgetVsActuals(context.Background(), from, to)

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "GetBudgetVsActualsData", mock.Anything, mock.Anything, mock.Anything)
}
