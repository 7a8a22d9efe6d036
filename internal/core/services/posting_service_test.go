package services_test

import (
	"context"
	"fmt"
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

type PostingServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockEventRepo   *MockEventRepository
	mockAccountSvc  *MockAccountService
	mockAuditSvc    *MockAuditService
	service         portssvc.PostingSvcFacade

	userID      string
	cashAccount domain.Account
	fundAccount domain.Account
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewPostingService(suite.mockJournalRepo, suite.mockEventRepo, suite.mockAccountSvc, suite.mockAuditSvc, "KES")

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         domain.AccountCash,
		AccountType:  domain.Asset,
		CurrencyCode: "KES",
		IsActive:     true,
	}
	suite.fundAccount = domain.Account{
		AccountID:    uuid.NewString(),
		Name:         "Tithes & Offering Income",
		AccountType:  domain.Income,
		CurrencyCode: "KES",
		IsActive:     true,
	}

	// The audit trail is best-effort; tests assert on the financial path.
	suite.mockAuditSvc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *PostingServiceTestSuite) donationEvent() domain.BusinessEvent {
	return domain.BusinessEvent{
		Kind:           domain.DonationReceived,
		IdempotencyKey: uuid.NewString(),
		Amount:         decimal.NewFromInt(5000),
		FundOrCategory: "Tithes & Offering",
		PartyName:      "Mary",
		OccurredAt:     time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *PostingServiceTestSuite) TestPostEvent_Donation_Success() {
	ctx := context.Background()
	event := suite.donationEvent()

	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, domain.AccountCash, domain.Asset).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, "Tithes & Offering Income", domain.Income).Return(&suite.fundAccount, nil).Once()

	var savedJournal domain.Journal
	var savedTxns []domain.Transaction
	var savedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("SavePosting", ctx, mock.AnythingOfType("domain.BusinessEvent"), mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.Transaction"), mock.AnythingOfType("map[string]decimal.Decimal")).
		Run(func(args mock.Arguments) {
			savedJournal = args.Get(2).(domain.Journal)
			savedTxns = args.Get(3).([]domain.Transaction)
			savedChanges = args.Get(4).(map[string]decimal.Decimal)
		}).Return(nil).Once()

	result, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.False(result.Duplicate)
	suite.NotEmpty(result.JournalID)
	suite.Equal(result.JournalID, result.Event.JournalID)
	suite.Equal(domain.EventRecorded, result.Event.Status)

	// The committed journal must be a balanced double entry.
	suite.Equal(domain.Posted, savedJournal.Status)
	suite.True(decimal.NewFromInt(5000).Equal(savedJournal.Amount))
	suite.Require().Len(savedTxns, 2)
	debits, credits := decimal.Zero, decimal.Zero
	for _, txn := range savedTxns {
		if txn.TransactionType == domain.Debit {
			suite.Equal(suite.cashAccount.AccountID, txn.AccountID)
			debits = debits.Add(txn.Amount)
		} else {
			suite.Equal(suite.fundAccount.AccountID, txn.AccountID)
			credits = credits.Add(txn.Amount)
		}
	}
	suite.True(debits.Equal(credits))

	// Both balances move up: cash is debit-normal, fund income credit-normal.
	suite.True(decimal.NewFromInt(5000).Equal(savedChanges[suite.cashAccount.AccountID]))
	suite.True(decimal.NewFromInt(5000).Equal(savedChanges[suite.fundAccount.AccountID]))

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_MissingIdempotencyKey() {
	ctx := context.Background()
	event := suite.donationEvent()
	event.IdempotencyKey = ""

	_, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrMissingIdempotencyKey)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SavePosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_ValidationFailure() {
	ctx := context.Background()
	event := suite.donationEvent()
	event.Amount = decimal.Zero

	_, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "FindEventByIdempotencyKey", mock.Anything, mock.Anything)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SavePosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_IdempotentReplay() {
	ctx := context.Background()
	event := suite.donationEvent()

	existing := event
	existing.EventID = uuid.NewString()
	existing.JournalID = uuid.NewString()
	existing.Status = domain.EventRecorded

	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(&existing, nil).Once()

	result, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Duplicate)
	suite.Equal(existing.EventID, result.Event.EventID)
	suite.Equal(existing.JournalID, result.JournalID)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SavePosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountSvc.AssertNotCalled(suite.T(), "ResolveAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_DuplicateCommitRace() {
	ctx := context.Background()
	event := suite.donationEvent()

	existing := event
	existing.EventID = uuid.NewString()
	existing.JournalID = uuid.NewString()

	// Pre-check misses, the unique constraint catches the race, and the
	// committed original is re-fetched.
	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, domain.AccountCash, domain.Asset).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, "Tithes & Offering Income", domain.Income).Return(&suite.fundAccount, nil).Once()
	suite.mockJournalRepo.On("SavePosting", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: idempotency key already committed", apperrors.ErrDuplicate)).Once()
	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(&existing, nil).Once()

	result, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.True(result.Duplicate)
	suite.Equal(existing.EventID, result.Event.EventID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_StoreUnavailable() {
	ctx := context.Background()
	event := suite.donationEvent()

	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, domain.AccountCash, domain.Asset).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, "Tithes & Offering Income", domain.Income).Return(&suite.fundAccount, nil).Once()
	suite.mockJournalRepo.On("SavePosting", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: connection refused", apperrors.ErrStoreUnavailable)).Once()

	_, err := suite.service.PostEvent(ctx, suite.userID, event)

	// A transient commit failure must keep its retryable identity so the
	// caller can retry with the same idempotency key.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostEvent_UnknownAccount() {
	ctx := context.Background()
	event := suite.donationEvent()
	event.FundOrCategory = "Mystery Fund"

	resolveErr := fmt.Errorf("%w: %q", apperrors.ErrUnknownAccount, "Mystery Fund Income")
	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, domain.AccountCash, domain.Asset).Return(&suite.cashAccount, nil).Maybe()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, "Mystery Fund Income", domain.Income).Return(nil, resolveErr).Once()

	_, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownAccount)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SavePosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_CurrencyMismatch() {
	ctx := context.Background()
	event := suite.donationEvent()
	event.CurrencyCode = "USD"

	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, domain.AccountCash, domain.Asset).Return(&suite.cashAccount, nil).Once()

	_, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrCurrencyMismatch)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SavePosting", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostEvent_PayrollRun() {
	ctx := context.Background()
	salariesAccount := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         domain.AccountSalariesExpense,
		AccountType:  domain.Expense,
		CurrencyCode: "KES",
		IsActive:     true,
	}
	event := domain.BusinessEvent{
		Kind:           domain.PayrollRun,
		IdempotencyKey: uuid.NewString(),
		PayrollLines: []domain.PayrollLine{
			{EmployeeName: "Grace", Amount: decimal.NewFromInt(30000)},
			{EmployeeName: "John", Amount: decimal.NewFromInt(25000)},
		},
	}

	suite.mockEventRepo.On("FindEventByIdempotencyKey", ctx, event.IdempotencyKey).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, domain.AccountSalariesExpense, domain.Expense).Return(&salariesAccount, nil).Once()
	suite.mockAccountSvc.On("ResolveAccount", ctx, suite.userID, domain.AccountCash, domain.Asset).Return(&suite.cashAccount, nil).Once()

	var savedTxns []domain.Transaction
	suite.mockJournalRepo.On("SavePosting", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedTxns = args.Get(3).([]domain.Transaction)
		}).Return(nil).Once()

	result, err := suite.service.PostEvent(ctx, suite.userID, event)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(55000).Equal(result.Event.Amount), "event amount should be the run total")
	suite.Require().Len(savedTxns, 4, "a salary debit and a cash credit per employee")

	debits, credits := decimal.Zero, decimal.Zero
	for _, txn := range savedTxns {
		if txn.TransactionType == domain.Debit {
			suite.Equal(salariesAccount.AccountID, txn.AccountID)
			debits = debits.Add(txn.Amount)
		} else {
			suite.Equal(suite.cashAccount.AccountID, txn.AccountID)
			credits = credits.Add(txn.Amount)
		}
	}
	suite.True(debits.Equal(credits))
	suite.True(decimal.NewFromInt(55000).Equal(credits))
}

func (suite *PostingServiceTestSuite) TestReverseJournal_Success() {
	ctx := context.Background()
	journalID := uuid.NewString()
	original := domain.Journal{
		JournalID:    journalID,
		JournalDate:  time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		Description:  "Donation from Mary to Tithes & Offering",
		CurrencyCode: "KES",
		Status:       domain.Posted,
		Amount:       decimal.NewFromInt(5000),
	}
	originalTxns := []domain.Transaction{
		{TransactionID: uuid.NewString(), JournalID: journalID, AccountID: suite.cashAccount.AccountID, Amount: decimal.NewFromInt(5000), TransactionType: domain.Debit, CurrencyCode: "KES"},
		{TransactionID: uuid.NewString(), JournalID: journalID, AccountID: suite.fundAccount.AccountID, Amount: decimal.NewFromInt(5000), TransactionType: domain.Credit, CurrencyCode: "KES"},
	}
	owningEvent := domain.BusinessEvent{EventID: uuid.NewString(), JournalID: journalID, Status: domain.EventRecorded}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(&original, nil).Once()
	suite.mockJournalRepo.On("FindTransactionsByJournalID", ctx, journalID).Return(originalTxns, nil).Once()
	suite.mockAccountSvc.On("GetAccountByIDs", ctx, mock.AnythingOfType("[]string")).Return(map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
		suite.fundAccount.AccountID: suite.fundAccount,
	}, nil).Once()

	var reversedTxns []domain.Transaction
	var savedChanges map[string]decimal.Decimal
	suite.mockJournalRepo.On("SaveReversal", ctx, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.Transaction"), mock.AnythingOfType("map[string]decimal.Decimal"), journalID, owningEvent.EventID).
		Run(func(args mock.Arguments) {
			reversedTxns = args.Get(2).([]domain.Transaction)
			savedChanges = args.Get(3).(map[string]decimal.Decimal)
		}).Return(nil).Once()
	suite.mockEventRepo.On("FindEventByJournalID", ctx, journalID).Return(&owningEvent, nil).Once()

	reversing, err := suite.service.ReverseJournal(ctx, suite.userID, journalID, "duplicate entry")

	suite.Require().NoError(err)
	suite.Require().NotNil(reversing)
	suite.Require().NotNil(reversing.OriginalJournalID)
	suite.Equal(journalID, *reversing.OriginalJournalID)
	suite.Contains(reversing.Description, "Reversal of:")
	suite.Contains(reversing.Description, "duplicate entry")

	// Every line is mirrored: same account and amount, opposite side.
	suite.Require().Len(reversedTxns, 2)
	for i, txn := range reversedTxns {
		suite.Equal(originalTxns[i].AccountID, txn.AccountID)
		suite.True(originalTxns[i].Amount.Equal(txn.Amount))
		suite.Equal(originalTxns[i].TransactionType.Opposite(), txn.TransactionType)
	}

	// The balance effect of the reversal cancels the original posting.
	suite.True(decimal.NewFromInt(-5000).Equal(savedChanges[suite.cashAccount.AccountID]))
	suite.True(decimal.NewFromInt(-5000).Equal(savedChanges[suite.fundAccount.AccountID]))

	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestReverseJournal_AlreadyReversed() {
	ctx := context.Background()
	journalID := uuid.NewString()
	original := domain.Journal{JournalID: journalID, Status: domain.Reversed}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(&original, nil).Once()

	_, err := suite.service.ReverseJournal(ctx, suite.userID, journalID, "again")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAlreadyReversed)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveReversal", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestReverseJournal_OfReversal() {
	ctx := context.Background()
	journalID := uuid.NewString()
	originalID := uuid.NewString()
	reversal := domain.Journal{JournalID: journalID, Status: domain.Posted, OriginalJournalID: &originalID}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(&reversal, nil).Once()

	_, err := suite.service.ReverseJournal(ctx, suite.userID, journalID, "no")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrReversalOfReversal)
}

func (suite *PostingServiceTestSuite) TestVoidEvent_AlreadyVoided() {
	ctx := context.Background()
	eventID := uuid.NewString()
	event := domain.BusinessEvent{EventID: eventID, JournalID: uuid.NewString(), Status: domain.EventVoided}

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(&event, nil).Once()

	_, err := suite.service.VoidEvent(ctx, suite.userID, eventID, "again")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FindJournalByID", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestVoidEvent_NotFound() {
	ctx := context.Background()
	eventID := uuid.NewString()

	suite.mockEventRepo.On("FindEventByID", ctx, eventID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.VoidEvent(ctx, suite.userID, eventID, "gone")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
