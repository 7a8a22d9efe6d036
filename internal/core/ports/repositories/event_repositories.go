package repositories

import (
	"context"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
)

// EventReader defines read operations for business event data. Event writes
// only happen through the PostingWriter, inside the posting transaction.
type EventReader interface {
	// FindEventByID retrieves a business event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.BusinessEvent, error)

	// FindEventByIdempotencyKey retrieves the event previously committed under
	// the given idempotency key, or apperrors.ErrNotFound.
	FindEventByIdempotencyKey(ctx context.Context, key string) (*domain.BusinessEvent, error)

	// FindEventByJournalID retrieves the event that owns the given journal.
	FindEventByJournalID(ctx context.Context, journalID string) (*domain.BusinessEvent, error)

	// ListEvents retrieves a paginated list of events, optionally filtered by kind.
	ListEvents(ctx context.Context, kind *domain.EventKind, limit int, nextToken *string) ([]domain.BusinessEvent, *string, error)
}

// EventRepositoryFacade combines all event-related repository interfaces
type EventRepositoryFacade interface {
	EventReader
}
