package repositories

import (
	"context"
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a paginated list of journals using token-based
	// pagination. It returns the journals, a token for the next page, and an error.
	ListJournals(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error)
}

// PostingWriter defines the atomic write operations of the ledger store. Both
// methods commit every row they touch in a single database transaction;
// partial writes are never visible.
type PostingWriter interface {
	// SavePosting persists a business event, its journal, the journal lines
	// and the account balance updates as one atomic unit.
	SavePosting(ctx context.Context, event domain.BusinessEvent, journal domain.Journal, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// SaveReversal persists a reversing journal with its lines and balance
	// updates, marks the original journal REVERSED with reversal links, and
	// flips the owning business event to VOIDED, all atomically.
	SaveReversal(ctx context.Context, reversing domain.Journal, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal, originalJournalID string, voidEventID string) error
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionsByJournalID retrieves all lines of a single journal.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)

	// ListTransactionsByAccountID retrieves a paginated list of lines for a
	// specific account using token-based pagination.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SumEntriesForAccount returns the debit and credit totals of all lines
	// posted to an account, optionally up to a point in time. Balances are
	// always derived from these immutable sums, never from the cached counter.
	SumEntriesForAccount(ctx context.Context, accountID string, asOf *time.Time) (debits, credits decimal.Decimal, err error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	PostingWriter
	TransactionReader
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
