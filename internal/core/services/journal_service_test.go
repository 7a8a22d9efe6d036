package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockEventRepo   *MockEventRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.JournalSvcFacade
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockEventRepo, suite.mockAccountSvc)
}

func (suite *JournalServiceTestSuite) TestGetJournalByID_PopulatesLines() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journalDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	journal := domain.Journal{
		JournalID:   journalID,
		JournalDate: journalDate,
		Description: "Donation from Mary",
		Status:      domain.Posted,
	}
	lines := []domain.Transaction{
		{TransactionID: uuid.NewString(), JournalID: journalID, TransactionType: domain.Debit, Amount: decimal.NewFromInt(5000)},
		{TransactionID: uuid.NewString(), JournalID: journalID, TransactionType: domain.Credit, Amount: decimal.NewFromInt(5000)},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(&journal, nil).Once()
	suite.mockJournalRepo.On("FindTransactionsByJournalID", ctx, journalID).Return(lines, nil).Once()

	got, err := suite.service.GetJournalByID(ctx, journalID)

	suite.Require().NoError(err)
	suite.Require().Len(got.Transactions, 2)
	for _, txn := range got.Transactions {
		suite.Equal(journalDate, txn.JournalDate, "lines carry the journal date")
		suite.Equal("Donation from Mary", txn.JournalDescription)
	}
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetJournalByID_NotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetJournalByID(ctx, journalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindTransactionsByJournalID", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestEntriesForReference_PostedOnly() {
	ctx := context.Background()
	eventID := uuid.NewString()
	journalID := uuid.NewString()
	event := domain.BusinessEvent{EventID: eventID, JournalID: journalID}
	journal := domain.Journal{JournalID: journalID, Status: domain.Posted, Description: "Bill from Roofers Ltd"}
	lines := []domain.Transaction{
		{TransactionID: uuid.NewString(), JournalID: journalID, TransactionType: domain.Debit, Amount: decimal.NewFromInt(800)},
		{TransactionID: uuid.NewString(), JournalID: journalID, TransactionType: domain.Credit, Amount: decimal.NewFromInt(800)},
	}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(&event, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(&journal, nil).Once()
	suite.mockJournalRepo.On("FindTransactionsByJournalID", ctx, journalID).Return(lines, nil).Once()

	entries, err := suite.service.EntriesForReference(ctx, eventID)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestEntriesForReference_IncludesReversalLines() {
	ctx := context.Background()
	eventID := uuid.NewString()
	journalID := uuid.NewString()
	reversingID := uuid.NewString()
	event := domain.BusinessEvent{EventID: eventID, JournalID: journalID, Status: domain.EventVoided}
	journal := domain.Journal{
		JournalID:          journalID,
		Status:             domain.Reversed,
		Description:        "Donation from Mary",
		ReversingJournalID: &reversingID,
	}
	reversing := domain.Journal{
		JournalID:         reversingID,
		Status:            domain.Posted,
		Description:       "Reversal of: Donation from Mary",
		OriginalJournalID: &journalID,
	}
	originalLines := []domain.Transaction{
		{TransactionID: uuid.NewString(), JournalID: journalID, TransactionType: domain.Debit, Amount: decimal.NewFromInt(5000)},
		{TransactionID: uuid.NewString(), JournalID: journalID, TransactionType: domain.Credit, Amount: decimal.NewFromInt(5000)},
	}
	reversalLines := []domain.Transaction{
		{TransactionID: uuid.NewString(), JournalID: reversingID, TransactionType: domain.Credit, Amount: decimal.NewFromInt(5000)},
		{TransactionID: uuid.NewString(), JournalID: reversingID, TransactionType: domain.Debit, Amount: decimal.NewFromInt(5000)},
	}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(&event, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(&journal, nil).Once()
	suite.mockJournalRepo.On("FindTransactionsByJournalID", ctx, journalID).Return(originalLines, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, reversingID).Return(&reversing, nil).Once()
	suite.mockJournalRepo.On("FindTransactionsByJournalID", ctx, reversingID).Return(reversalLines, nil).Once()

	entries, err := suite.service.EntriesForReference(ctx, eventID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 4, "voided events report both the original and the reversing lines")
	suite.Equal("Reversal of: Donation from Mary", entries[2].JournalDescription)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListTransactionsByAccount_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountSvc.On("GetAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.ListTransactionsByAccount(ctx, accountID, 10, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ListTransactionsByAccountID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestListTransactionsByAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := domain.Account{AccountID: accountID, Name: domain.AccountCash, AccountType: domain.Asset, IsActive: true}
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), AccountID: accountID, TransactionType: domain.Debit, Amount: decimal.NewFromInt(5000)},
	}

	suite.mockAccountSvc.On("GetAccountByID", ctx, accountID).Return(&account, nil).Once()
	suite.mockJournalRepo.On("ListTransactionsByAccountID", ctx, accountID, 10, (*string)(nil)).Return(txns, "next-page", nil).Once()

	got, token, err := suite.service.ListTransactionsByAccount(ctx, accountID, 10, nil)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Require().NotNil(token)
	suite.Equal("next-page", *token)
}

func (suite *JournalServiceTestSuite) TestBalanceOf_DebitNormal() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := domain.Account{AccountID: accountID, Name: domain.AccountCash, AccountType: domain.Asset, IsActive: true}

	suite.mockAccountSvc.On("GetAccountByID", ctx, accountID).Return(&account, nil).Once()
	suite.mockJournalRepo.On("SumEntriesForAccount", ctx, accountID, (*time.Time)(nil)).
		Return(decimal.NewFromInt(7000), decimal.NewFromInt(2000), nil).Once()

	balance, err := suite.service.BalanceOf(ctx, accountID, nil)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(5000).Equal(balance), "asset balance is debits minus credits, got %s", balance)
}

func (suite *JournalServiceTestSuite) TestBalanceOf_CreditNormal() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := domain.Account{AccountID: accountID, Name: "Building Fund Income", AccountType: domain.Income, IsActive: true}
	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	suite.mockAccountSvc.On("GetAccountByID", ctx, accountID).Return(&account, nil).Once()
	suite.mockJournalRepo.On("SumEntriesForAccount", ctx, accountID, &asOf).
		Return(decimal.NewFromInt(1000), decimal.NewFromInt(9000), nil).Once()

	balance, err := suite.service.BalanceOf(ctx, accountID, &asOf)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(8000).Equal(balance), "income balance is credits minus debits, got %s", balance)
}

func (suite *JournalServiceTestSuite) TestBalanceOf_UnknownAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountSvc.On("GetAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.BalanceOf(ctx, accountID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SumEntriesForAccount", mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
