package pgsql

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	"github.com/parishbooks/church_finance_app/internal/models"
	"github.com/parishbooks/church_finance_app/internal/utils/mapping"
	"github.com/parishbooks/church_finance_app/internal/utils/pagination"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for audit log data.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// SaveAuditRecord persists a new audit record. The table is insert-only.
func (r *PgxAuditRepository) SaveAuditRecord(ctx context.Context, record domain.AuditRecord) error {
	modelRecord := mapping.ToModelAuditRecord(record)

	query := `
		INSERT INTO audit_records (audit_id, actor, action, journal_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRecord.AuditID,
		modelRecord.Actor,
		modelRecord.Action,
		modelRecord.JournalID,
		modelRecord.Details,
		modelRecord.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save audit record "+modelRecord.AuditID, err)
	}
	return nil
}

// ListAuditRecords retrieves a paginated list of audit records, newest first.
func (r *PgxAuditRepository) ListAuditRecords(ctx context.Context, limit int, nextToken *string) ([]domain.AuditRecord, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT audit_id, actor, action, journal_id, details, created_at
		FROM audit_records
	`
	filterClause := ``
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, decodeErr := pagination.DecodeDateBasedToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastCreatedAt)
		filterClause = `WHERE created_at < $1`
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query audit records", err)
	}
	defer rows.Close()

	modelRecords := make([]models.AuditRecord, 0, fetchLimit)
	for rows.Next() {
		var m models.AuditRecord
		var journalID sql.NullString
		if scanErr := rows.Scan(&m.AuditID, &m.Actor, &m.Action, &journalID, &m.Details, &m.CreatedAt); scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan audit record row", scanErr)
		}
		if journalID.Valid {
			m.JournalID = &journalID.String
		}
		modelRecords = append(modelRecords, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating audit record rows", err)
	}

	var nextTokenVal *string
	results := modelRecords
	if len(modelRecords) > limit {
		lastRecord := modelRecords[limit-1]
		newToken := pagination.EncodeDateBasedToken(lastRecord.CreatedAt)
		nextTokenVal = &newToken
		results = modelRecords[:limit]
	}

	domainRecords := make([]domain.AuditRecord, len(results))
	for i, m := range results {
		domainRecords[i] = mapping.ToDomainAuditRecord(m)
	}

	return domainRecords, nextTokenVal, nil
}

// FindAuditRecordsByJournalID retrieves the audit trail of one journal.
func (r *PgxAuditRepository) FindAuditRecordsByJournalID(ctx context.Context, journalID string) ([]domain.AuditRecord, error) {
	query := `
		SELECT audit_id, actor, action, journal_id, details, created_at
		FROM audit_records
		WHERE journal_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query audit records for journal "+journalID, err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		var m models.AuditRecord
		var jid sql.NullString
		if scanErr := rows.Scan(&m.AuditID, &m.Actor, &m.Action, &jid, &m.Details, &m.CreatedAt); scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit record row for journal "+journalID, scanErr)
		}
		if jid.Valid {
			m.JournalID = &jid.String
		}
		records = append(records, mapping.ToDomainAuditRecord(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit record rows for journal "+journalID, err)
	}

	return records, nil
}
