package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// trialBalanceQuery cuts off on each line's commit timestamp so a backdated
// journal never shows up in a trial balance taken before it was committed.
const trialBalanceQuery = `
	SELECT
		a.account_id,
		a.name AS account_name,
		a.account_type,
		SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN t.amount ELSE 0 END) AS total_debit,
		SUM(CASE WHEN t.transaction_type = 'CREDIT' THEN t.amount ELSE 0 END) AS total_credit
	FROM transactions t
	JOIN accounts a ON t.account_id = a.account_id
	WHERE t.created_at <= $1
	GROUP BY a.account_id, a.name, a.account_type
	ORDER BY a.name
`

// GetTrialBalanceData retrieves per-account debit/credit totals as of a date.
// Reversal journals are included so a reversed posting shows up on both sides
// and the report still balances.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	rows, err := r.Pool.Query(ctx, trialBalanceQuery, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountName,
			&accountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.TrialBalanceRow{}, nil
	}

	return result, nil
}

// GetFundSummaryData aggregates donation income per fund account over a period.
// Only fund income accounts carry donation credits, so the credit net per
// INCOME account named "<fund> Income" is the giving total for that fund.
func (r *reportingRepository) GetFundSummaryData(ctx context.Context, from, to time.Time) ([]domain.FundSummaryRow, error) {
	query := `
		SELECT
			a.account_id,
			a.name,
			SUM(CASE WHEN t.transaction_type = 'CREDIT' THEN t.amount ELSE -t.amount END) AS total
		FROM transactions t
		JOIN accounts a ON t.account_id = a.account_id
		JOIN journals j ON t.journal_id = j.journal_id
		WHERE j.journal_date BETWEEN $1 AND $2
			AND j.status = 'POSTED'
			AND j.original_journal_id IS NULL
			AND a.account_type = 'INCOME'
		GROUP BY a.account_id, a.name
		ORDER BY a.name
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying fund summary data: %w", err)
	}
	defer rows.Close()

	var result []domain.FundSummaryRow
	for rows.Next() {
		var row domain.FundSummaryRow
		if err := rows.Scan(&row.AccountID, &row.FundAccount, &row.Total); err != nil {
			return nil, fmt.Errorf("error scanning fund summary row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund summary rows: %w", err)
	}

	if result == nil {
		result = []domain.FundSummaryRow{}
	}

	return result, nil
}

// SaveBudget upserts a budget row; the account/period unique constraint makes
// a second allocation for the same window an amount update.
func (r *reportingRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (budget_id, account_id, period_start, period_end, amount,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (account_id, period_start, period_end)
		DO UPDATE SET amount = EXCLUDED.amount,
		              last_updated_at = EXCLUDED.last_updated_at,
		              last_updated_by = EXCLUDED.last_updated_by
	`

	_, err := r.Pool.Exec(ctx, query,
		budget.BudgetID,
		budget.AccountID,
		budget.PeriodStart,
		budget.PeriodEnd,
		budget.Amount,
		budget.CreatedAt,
		budget.CreatedBy,
		budget.LastUpdatedAt,
		budget.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error saving budget for account %s: %w", budget.AccountID, err)
	}
	return nil
}

// GetBudgetVsActualsData pairs every budget falling inside the window with the
// net debit spend of its account over the same window. Spend nets reversals
// out, so a voided expense does not count against the budget.
func (r *reportingRepository) GetBudgetVsActualsData(ctx context.Context, from, to time.Time) ([]domain.BudgetVsActualRow, error) {
	query := `
		SELECT
			a.account_id,
			a.name,
			b.total_budget,
			COALESCE(s.total_spent, 0) AS total_spent
		FROM (
			SELECT account_id, SUM(amount) AS total_budget
			FROM budgets
			WHERE period_start >= $1 AND period_end <= $2
			GROUP BY account_id
		) b
		JOIN accounts a ON a.account_id = b.account_id
		LEFT JOIN (
			SELECT t.account_id,
			       SUM(CASE WHEN t.transaction_type = 'DEBIT' THEN t.amount ELSE -t.amount END) AS total_spent
			FROM transactions t
			JOIN journals j ON t.journal_id = j.journal_id
			WHERE j.journal_date BETWEEN $1 AND $2
			GROUP BY t.account_id
		) s ON s.account_id = b.account_id
		ORDER BY a.name
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying budget vs actuals data: %w", err)
	}
	defer rows.Close()

	var result []domain.BudgetVsActualRow
	for rows.Next() {
		var row domain.BudgetVsActualRow
		if err := rows.Scan(&row.AccountID, &row.AccountName, &row.Budgeted, &row.Actual); err != nil {
			return nil, fmt.Errorf("error scanning budget vs actuals row: %w", err)
		}
		row.Variance = row.Budgeted.Sub(row.Actual)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget vs actuals rows: %w", err)
	}

	if result == nil {
		result = []domain.BudgetVsActualRow{}
	}

	return result, nil
}
