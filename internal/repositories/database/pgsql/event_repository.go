package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	"github.com/parishbooks/church_finance_app/internal/models"
	"github.com/parishbooks/church_finance_app/internal/utils/mapping"
	"github.com/parishbooks/church_finance_app/internal/utils/pagination"
)

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for business event data.
func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, kind, idempotency_key, amount, currency_code, fund_or_category, party_name, description, occurred_at, details, journal_id, status, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (models.BusinessEvent, error) {
	var m models.BusinessEvent
	err := row.Scan(
		&m.EventID,
		&m.Kind,
		&m.IdempotencyKey,
		&m.Amount,
		&m.CurrencyCode,
		&m.FundOrCategory,
		&m.PartyName,
		&m.Description,
		&m.OccurredAt,
		&m.Details,
		&m.JournalID,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) findEventWhere(ctx context.Context, whereClause string, arg any) (*domain.BusinessEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM business_events
		` + whereClause + `;
	`
	modelEvent, err := scanEvent(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find business event", err)
	}

	domainEvent, err := mapping.ToDomainEvent(modelEvent)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode event details for "+modelEvent.EventID, err)
	}
	return &domainEvent, nil
}

// FindEventByID retrieves a business event by its ID.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.BusinessEvent, error) {
	return r.findEventWhere(ctx, `WHERE event_id = $1`, eventID)
}

// FindEventByIdempotencyKey retrieves the event committed under the given key.
func (r *PgxEventRepository) FindEventByIdempotencyKey(ctx context.Context, key string) (*domain.BusinessEvent, error) {
	return r.findEventWhere(ctx, `WHERE idempotency_key = $1`, key)
}

// FindEventByJournalID retrieves the event that owns the given journal.
func (r *PgxEventRepository) FindEventByJournalID(ctx context.Context, journalID string) (*domain.BusinessEvent, error) {
	return r.findEventWhere(ctx, `WHERE journal_id = $1`, journalID)
}

// ListEvents retrieves a paginated list of events using token-based pagination,
// optionally filtered by kind.
func (r *PgxEventRepository) ListEvents(ctx context.Context, kind *domain.EventKind, limit int, nextToken *string) ([]domain.BusinessEvent, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + eventColumns + `
		FROM business_events
	`
	filterClause := `WHERE 1=1`
	args := []interface{}{}
	if kind != nil {
		args = append(args, string(*kind))
		filterClause += ` AND kind = $` + strconv.Itoa(len(args))
	}

	orderByClause := `ORDER BY occurred_at DESC, created_at DESC`

	if nextToken != nil && *nextToken != "" {
		lastOccurredAt, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		args = append(args, lastOccurredAt, lastCreatedAt)
		filterClause += ` AND (occurred_at, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query business events", err)
	}
	defer rows.Close()

	modelEvents := make([]models.BusinessEvent, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanEvent(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan business event row", scanErr)
		}
		modelEvents = append(modelEvents, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating business event rows", err)
	}

	var nextTokenVal *string
	results := modelEvents
	if len(modelEvents) > limit {
		lastEvent := modelEvents[limit-1]
		newToken := pagination.EncodeToken(lastEvent.OccurredAt, lastEvent.CreatedAt)
		nextTokenVal = &newToken
		results = modelEvents[:limit]
	}

	domainEvents := make([]domain.BusinessEvent, len(results))
	for i, m := range results {
		domainEvent, mapErr := mapping.ToDomainEvent(m)
		if mapErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to decode event details for "+m.EventID, mapErr)
		}
		domainEvents[i] = domainEvent
	}

	return domainEvents, nextTokenVal, nil
}
