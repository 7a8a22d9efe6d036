package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// journalService provides read and derivation operations over the ledger.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	eventRepo   portsrepo.EventRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade, accountSvc portssvc.AccountSvcFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		eventRepo:   eventRepo,
		accountSvc:  accountSvc,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// GetJournalByID retrieves a journal together with its lines.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := s.GetLogger(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", "error", err, "journal_id", journalID)
		}
		return nil, err
	}

	transactions, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch transactions for journal", "error", err, "journal_id", journalID)
		return nil, fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, apperrors.ErrInternal)
	}

	// Carry the journal context onto each line.
	for i := range transactions {
		transactions[i].JournalDate = journal.JournalDate
		transactions[i].JournalDescription = journal.Description
	}
	journal.Transactions = transactions

	return journal, nil
}

// ListJournals retrieves a paginated list of journals.
func (s *journalService) ListJournals(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	journals, token, err := s.journalRepo.ListJournals(ctx, limit, nextToken, includeReversals)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals from repository")
		return nil, nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}
	return journals, token, nil
}

// EntriesForReference retrieves every line a business event produced: the
// lines of its journal plus, when the event was voided, the lines of the
// reversing journal.
func (s *journalService) EntriesForReference(ctx context.Context, eventID string) ([]domain.Transaction, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, event.JournalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find journal %s of event %s: %w", event.JournalID, eventID, err)
	}

	entries, err := s.journalRepo.FindTransactionsByJournalID(ctx, journal.JournalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines of journal %s: %w", journal.JournalID, err)
	}
	for i := range entries {
		entries[i].JournalDate = journal.JournalDate
		entries[i].JournalDescription = journal.Description
	}

	if journal.ReversingJournalID != nil {
		reversing, err := s.journalRepo.FindJournalByID(ctx, *journal.ReversingJournalID)
		if err != nil {
			return nil, fmt.Errorf("failed to find reversing journal %s: %w", *journal.ReversingJournalID, err)
		}
		reversalEntries, err := s.journalRepo.FindTransactionsByJournalID(ctx, reversing.JournalID)
		if err != nil {
			return nil, fmt.Errorf("failed to load lines of reversing journal %s: %w", reversing.JournalID, err)
		}
		for i := range reversalEntries {
			reversalEntries[i].JournalDate = reversing.JournalDate
			reversalEntries[i].JournalDescription = reversing.Description
		}
		entries = append(entries, reversalEntries...)
	}

	return entries, nil
}

// ListTransactionsByAccount retrieves a paginated account statement.
func (s *journalService) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if _, err := s.accountSvc.GetAccountByID(ctx, accountID); err != nil {
		return nil, nil, err
	}

	transactions, token, err := s.journalRepo.ListTransactionsByAccountID(ctx, accountID, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by account", "account_id", accountID)
		return nil, nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return transactions, token, nil
}

// BalanceOf derives an account's signed balance from its immutable journal
// lines. The cached balance column on the account row is never consulted;
// summing the lines is what keeps reversals and replays honest.
func (s *journalService) BalanceOf(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	account, err := s.accountSvc.GetAccountByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	debits, credits, err := s.journalRepo.SumEntriesForAccount(ctx, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum entries for account", "account_id", accountID)
		return decimal.Zero, err
	}

	if account.AccountType.IsDebitNormal() {
		return debits.Sub(credits), nil
	}
	return credits.Sub(debits), nil
}
