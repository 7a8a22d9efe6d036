package services

import (
	"context"
	"time"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReaderSvc defines read operations for journals
type JournalReaderSvc interface {
	// GetJournalByID retrieves a journal with its lines.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a paginated list of journals.
	ListJournals(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error)

	// EntriesForReference retrieves every line a business event produced,
	// including the lines of its reversing journal when one exists.
	EntriesForReference(ctx context.Context, eventID string) ([]domain.Transaction, error)
}

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// ListTransactionsByAccount retrieves a paginated account statement.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// JournalCalculatorSvc defines balance derivation operations
type JournalCalculatorSvc interface {
	// BalanceOf derives an account's signed balance from its immutable journal
	// lines, optionally as of a point in time. Debit-normal accounts report
	// debits minus credits; credit-normal accounts the opposite.
	BalanceOf(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, error)
}

// JournalSvcFacade combines all journal service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	TransactionReaderSvc
	JournalCalculatorSvc
}
