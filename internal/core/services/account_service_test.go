package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/core/services"
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockAuditSvc    *MockAuditService
	service         portssvc.AccountSvcFacade
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewAccountService(
		suite.mockAccountRepo,
		services.WithDefaultCurrency("KES"),
		services.WithAuditService(suite.mockAuditSvc),
	)
	suite.userID = uuid.NewString()

	suite.mockAuditSvc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:        "Youth Camp Fund Income",
		AccountType: domain.Income,
	}

	var saved domain.Account
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Account)
		}).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(req.Name, account.Name)
	suite.Equal("KES", account.CurrencyCode, "empty currency falls back to the default")
	suite.True(account.IsActive)
	suite.True(account.Balance.IsZero())
	suite.Equal(suite.userID, account.CreatedBy)
	suite.Equal(saved.AccountID, account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_MissingName() {
	ctx := context.Background()

	_, err := suite.service.CreateAccount(ctx, suite.userID, dto.CreateAccountRequest{AccountType: domain.Income})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolveAccount_Found() {
	ctx := context.Background()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Cash",
		AccountType:  domain.Asset,
		CurrencyCode: "KES",
		IsActive:     true,
	}

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Cash").Return(&account, nil).Once()

	resolved, err := suite.service.ResolveAccount(ctx, suite.userID, "Cash", domain.Asset)

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, resolved.AccountID)
}

func (suite *AccountServiceTestSuite) TestResolveAccount_Inactive() {
	ctx := context.Background()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Old Fund Income",
		AccountType: domain.Income,
		IsActive:    false,
	}

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Old Fund Income").Return(&account, nil).Once()

	_, err := suite.service.ResolveAccount(ctx, suite.userID, "Old Fund Income", domain.Income)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountInactive)
}

func (suite *AccountServiceTestSuite) TestResolveAccount_UnknownWithoutAutoCreate() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Mystery Fund Income").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveAccount(ctx, suite.userID, "Mystery Fund Income", domain.Income)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownAccount)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolveAccount_AutoCreate() {
	ctx := context.Background()
	autoCreateSvc := services.NewAccountService(
		suite.mockAccountRepo,
		services.WithDefaultCurrency("KES"),
		services.WithAutoCreateAccounts(true),
		services.WithAuditService(suite.mockAuditSvc),
	)

	suite.mockAccountRepo.On("FindAccountByName", ctx, "New Fund Income").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	resolved, err := autoCreateSvc.ResolveAccount(ctx, suite.userID, "New Fund Income", domain.Income)

	suite.Require().NoError(err)
	suite.Require().NotNil(resolved)
	suite.Equal("New Fund Income", resolved.Name)
	suite.Equal(domain.Income, resolved.AccountType)
	suite.True(resolved.IsActive)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestResolveAccount_AutoCreateWithoutDeclaredType() {
	ctx := context.Background()
	autoCreateSvc := services.NewAccountService(
		suite.mockAccountRepo,
		services.WithAutoCreateAccounts(true),
	)

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Typeless").Return(nil, apperrors.ErrNotFound).Once()

	_, err := autoCreateSvc.ResolveAccount(ctx, suite.userID, "Typeless", "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownAccount)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestResolveAccount_AutoCreateLosesRace() {
	ctx := context.Background()
	autoCreateSvc := services.NewAccountService(
		suite.mockAccountRepo,
		services.WithAutoCreateAccounts(true),
	)
	winner := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        "Raced Fund Income",
		AccountType: domain.Income,
		IsActive:    true,
	}

	suite.mockAccountRepo.On("FindAccountByName", ctx, "Raced Fund Income").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("FindAccountByName", ctx, "Raced Fund Income").Return(&winner, nil).Once()

	resolved, err := autoCreateSvc.ResolveAccount(ctx, suite.userID, "Raced Fund Income", domain.Income)

	suite.Require().NoError(err)
	suite.Equal(winner.AccountID, resolved.AccountID, "the concurrently created account is returned")
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeactivateAccount", ctx, accountID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.userID, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
