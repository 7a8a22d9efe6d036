package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	"github.com/parishbooks/church_finance_app/internal/models"
	"github.com/parishbooks/church_finance_app/internal/utils/accounting"
	"github.com/parishbooks/church_finance_app/internal/utils/mapping"
	"github.com/parishbooks/church_finance_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxJournalRepository creates a new repository for journal and transaction data.
func newPgxJournalRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const insertJournalQuery = `
	INSERT INTO journals (
		journal_id, journal_date, description, currency_code, status,
		original_journal_id, reversing_journal_id, amount,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, journal_id, account_id, amount, transaction_type, currency_code, notes, created_at, created_by, last_updated_at, last_updated_by, running_balance)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
`

// SavePosting persists a business event, its journal, the journal lines and the
// account balance updates in one database transaction.
func (r *PgxJournalRepository) SavePosting(ctx context.Context, event domain.BusinessEvent, journal domain.Journal, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	modelEvent, err := mapping.ToModelEvent(event)
	if err != nil {
		return apperrors.NewAppError(500, "failed to encode event details for "+event.EventID, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once the transaction is committed

	// 1. Insert the business event; the unique idempotency key catches
	// concurrent replays that slipped past the service-level pre-check.
	eventQuery := `
		INSERT INTO business_events (
			event_id, kind, idempotency_key, amount, currency_code, fund_or_category,
			party_name, description, occurred_at, details, journal_id, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, eventQuery,
		modelEvent.EventID,
		modelEvent.Kind,
		modelEvent.IdempotencyKey,
		modelEvent.Amount,
		modelEvent.CurrencyCode,
		modelEvent.FundOrCategory,
		modelEvent.PartyName,
		modelEvent.Description,
		modelEvent.OccurredAt,
		modelEvent.Details,
		modelEvent.JournalID,
		modelEvent.Status,
		modelEvent.CreatedAt,
		modelEvent.CreatedBy,
		modelEvent.LastUpdatedAt,
		modelEvent.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: idempotency key %q already committed", apperrors.ErrDuplicate, modelEvent.IdempotencyKey)
		}
		return apperrors.NewAppError(500, "failed to insert business event "+modelEvent.EventID, err)
	}

	// 2. Insert the journal and its lines, updating account balances.
	if err := r.writeJournalInTx(ctx, tx, journal, transactions, balanceChanges); err != nil {
		return err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit posting for event "+modelEvent.EventID, err)
	}

	return nil
}

// SaveReversal persists a reversing journal, marks the original REVERSED and
// the owning business event VOIDED, all in one database transaction.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversing domain.Journal, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal, originalJournalID string, voidEventID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.writeJournalInTx(ctx, tx, reversing, transactions, balanceChanges); err != nil {
		return err
	}

	now := reversing.CreatedAt
	userID := reversing.CreatedBy

	// Flip the original journal to REVERSED and link the pair. The guard on
	// status makes concurrent double-reversals lose cleanly.
	linkQuery := `
		UPDATE journals
		SET status = $2,
		    reversing_journal_id = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE journal_id = $1 AND status = 'POSTED';
	`
	cmdTag, err := tx.Exec(ctx, linkQuery, originalJournalID, domain.Reversed, reversing.JournalID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark journal "+originalJournalID+" reversed", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is not in POSTED status", apperrors.ErrConflict, originalJournalID)
	}

	if voidEventID != "" {
		eventQuery := `
			UPDATE business_events
			SET status = $2, last_updated_at = $3, last_updated_by = $4
			WHERE event_id = $1 AND status = 'RECORDED';
		`
		cmdTag, err := tx.Exec(ctx, eventQuery, voidEventID, domain.EventVoided, now, userID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to void business event "+voidEventID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: business event %s is not in RECORDED status", apperrors.ErrConflict, voidEventID)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit reversal of journal "+originalJournalID, err)
	}

	return nil
}

// writeJournalInTx inserts a journal with its lines and applies balance deltas
// using an already open transaction. Lines get running balances computed off
// the locked account rows.
func (r *PgxJournalRepository) writeJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal, transactions []domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	now := journal.CreatedAt
	userID := journal.CreatedBy

	modelJournal := mapping.ToModelJournal(journal)
	_, err := tx.Exec(ctx, insertJournalQuery,
		modelJournal.JournalID,
		modelJournal.JournalDate,
		modelJournal.Description,
		modelJournal.CurrencyCode,
		modelJournal.Status,
		modelJournal.OriginalJournalID,
		modelJournal.ReversingJournalID,
		modelJournal.Amount,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+modelJournal.JournalID, err)
	}

	// Lock accounts and capture their balances before applying the deltas.
	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}

	batch := &pgx.Batch{}

	currentRunningBalances := make(map[string]decimal.Decimal)
	for accID, lockedAcc := range lockedAccounts {
		currentRunningBalances[accID] = lockedAcc.Balance
	}

	// Sort by TransactionID for deterministic running balance order.
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].TransactionID < transactions[j].TransactionID
	})

	for _, txn := range transactions {
		modelTxn := mapping.ToModelTransaction(txn)
		modelTxn.CreatedAt = now
		modelTxn.LastUpdatedAt = now
		modelTxn.CreatedBy = userID
		modelTxn.LastUpdatedBy = userID

		lockedAccount, ok := lockedAccounts[txn.AccountID]
		if !ok {
			return apperrors.NewAppError(500, "internal error: locked account "+txn.AccountID+" not found during transaction processing", nil)
		}

		signedAmount, err := accounting.CalculateSignedAmount(txn, lockedAccount.AccountType)
		if err != nil {
			return apperrors.NewAppError(500, "failed to calculate signed amount for transaction "+txn.TransactionID, err)
		}

		newRunningBalance := currentRunningBalances[txn.AccountID].Add(signedAmount)
		modelTxn.RunningBalance = newRunningBalance
		currentRunningBalances[txn.AccountID] = newRunningBalance

		batch.Queue(insertTransactionQuery,
			modelTxn.TransactionID,
			modelTxn.JournalID,
			modelTxn.AccountID,
			modelTxn.Amount,
			modelTxn.TransactionType,
			modelTxn.CurrencyCode,
			modelTxn.Notes,
			modelTxn.CreatedAt,
			modelTxn.CreatedBy,
			modelTxn.LastUpdatedAt,
			modelTxn.LastUpdatedBy,
			modelTxn.RunningBalance,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute transaction batch for journal "+modelJournal.JournalID, err)
	}

	return nil
}

// FindJournalByID retrieves a journal by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, journal_date, description, currency_code, status,
		       original_journal_id, reversing_journal_id, amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`
	var modelJournal models.Journal
	var originalID sql.NullString
	var reversingID sql.NullString

	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&modelJournal.JournalID,
		&modelJournal.JournalDate,
		&modelJournal.Description,
		&modelJournal.CurrencyCode,
		&modelJournal.Status,
		&originalID,
		&reversingID,
		&modelJournal.Amount,
		&modelJournal.CreatedAt,
		&modelJournal.CreatedBy,
		&modelJournal.LastUpdatedAt,
		&modelJournal.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	if originalID.Valid {
		modelJournal.OriginalJournalID = &originalID.String
	}
	if reversingID.Valid {
		modelJournal.ReversingJournalID = &reversingID.String
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	return &domainJournal, nil
}

// FindTransactionsByJournalID retrieves all transactions associated with a specific journal.
func (r *PgxJournalRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, journal_id, account_id, amount, transaction_type, currency_code, notes, created_at, created_by, last_updated_at, last_updated_by, running_balance
		FROM transactions
		WHERE journal_id = $1
		ORDER BY transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for journal "+journalID, err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.TransactionID,
			&t.JournalID,
			&t.AccountID,
			&t.Amount,
			&t.TransactionType,
			&t.CurrencyCode,
			&t.Notes,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
			&t.RunningBalance,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for journal "+journalID, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for journal "+journalID, err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}

// ListTransactionsByAccountID retrieves a paginated list of transactions for a specific account using token-based pagination.
// It returns the transactions, a token for the next page, and an error.
func (r *PgxJournalRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT t.transaction_id, t.journal_id, t.account_id, t.amount, t.transaction_type, t.currency_code, t.notes,
		       t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, t.running_balance, j.journal_date, j.description
		FROM transactions t
		JOIN journals j ON t.journal_id = j.journal_id
		WHERE t.account_id = $1
	`
	// Ordering must be stable: journal_date DESC with created_at as tie-breaker.
	orderByClause := `ORDER BY j.journal_date DESC, t.created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{accountID}

	if nextToken != nil && *nextToken != "" {
		lastJournalDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (j.journal_date, t.created_at) < ($2, $3)`
		args = append(args, lastJournalDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)

		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for account "+accountID, err)
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.TransactionID,
			&t.JournalID,
			&t.AccountID,
			&t.Amount,
			&t.TransactionType,
			&t.CurrencyCode,
			&t.Notes,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
			&t.RunningBalance,
			&t.JournalDate,
			&t.JournalDescription,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for account "+accountID, err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for account "+accountID, err)
	}

	var nextTokenVal *string
	results := transactions
	if len(transactions) > limit {
		lastTxn := transactions[limit-1] // The last item included in this page
		token := pagination.EncodeToken(lastTxn.JournalDate, lastTxn.CreatedAt)
		nextTokenVal = &token
		results = transactions[:limit]
	}

	return mapping.ToDomainTransactionSlice(results), nextTokenVal, nil
}

// sumEntriesQuery builds the aggregate query for an account's lines. The as-of
// bound filters on the line's commit timestamp, not the journal date: a
// backdated journal must not appear in balances taken before it was committed.
func sumEntriesQuery(accountID string, asOf *time.Time) (string, []interface{}) {
	query := `
		SELECT
		    COALESCE(SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN t.amount ELSE 0 END), 0) AS total_debit,
		    COALESCE(SUM(CASE WHEN t.transaction_type = 'CREDIT' THEN t.amount ELSE 0 END), 0) AS total_credit
		FROM transactions t
		WHERE t.account_id = $1
	`
	args := []interface{}{accountID}
	if asOf != nil {
		query += ` AND t.created_at <= $2`
		args = append(args, *asOf)
	}
	return query, args
}

// SumEntriesForAccount totals the debit and credit lines posted to an account,
// optionally bounded by commit time. Reversal lines are included; a reversed
// pair contributes equally to both sides and cancels out.
func (r *PgxJournalRepository) SumEntriesForAccount(ctx context.Context, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query, args := sumEntriesQuery(accountID, asOf)

	var debits, credits decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum entries for account "+accountID, err)
	}

	return debits, credits, nil
}

// ListJournals retrieves a paginated list of journals using token-based pagination.
// It returns the list of journals, a token for the next page (if any), and an error.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT journal_id, journal_date, description, currency_code, status,
		       original_journal_id, reversing_journal_id, amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journals
	`
	filterClause := `WHERE 1=1`
	if !includeReversals {
		filterClause = `WHERE status != 'REVERSED' AND reversing_journal_id IS NULL AND original_journal_id IS NULL`
	}

	orderByClause := `ORDER BY journal_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (journal_date, created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)

		query := baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)

		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals", err)
	}
	defer rows.Close()

	modelJournals := make([]models.Journal, 0, fetchLimit)
	for rows.Next() {
		var m models.Journal
		var originalID sql.NullString
		var reversingID sql.NullString

		scanErr := rows.Scan(
			&m.JournalID,
			&m.JournalDate,
			&m.Description,
			&m.CurrencyCode,
			&m.Status,
			&originalID,
			&reversingID,
			&m.Amount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row", scanErr)
		}

		if originalID.Valid {
			m.OriginalJournalID = &originalID.String
		}
		if reversingID.Valid {
			m.ReversingJournalID = &reversingID.String
		}
		modelJournals = append(modelJournals, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}

	var nextTokenVal *string
	results := modelJournals
	if len(modelJournals) > limit {
		lastJournal := modelJournals[limit-1]
		newToken := pagination.EncodeToken(lastJournal.JournalDate, lastJournal.CreatedAt)
		nextTokenVal = &newToken
		results = modelJournals[:limit]
	}

	domainJournals := make([]domain.Journal, len(results))
	for i, m := range results {
		domainJournals[i] = mapping.ToDomainJournal(m)
	}

	return domainJournals, nextTokenVal, nil
}
