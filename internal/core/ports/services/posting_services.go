package services

import (
	"context"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
)

// EventReaderSvc defines read operations for business events
type EventReaderSvc interface {
	// GetEventByID retrieves a business event by its ID.
	GetEventByID(ctx context.Context, eventID string) (*domain.BusinessEvent, error)

	// ListEvents retrieves a paginated list of events, optionally filtered by kind.
	ListEvents(ctx context.Context, kind *domain.EventKind, limit int, nextToken *string) ([]domain.BusinessEvent, *string, error)
}

// PostingWriterSvc defines the write operations of the posting pipeline
type PostingWriterSvc interface {
	// PostEvent validates a business event, builds its balanced journal and
	// commits both atomically. Replaying an idempotency key returns the
	// original posting with Duplicate set instead of writing anything.
	PostEvent(ctx context.Context, userID string, event domain.BusinessEvent) (*domain.PostingResult, error)

	// ReverseJournal voids a posted journal by committing a mirrored reversing
	// journal. The original journal and its lines are never mutated beyond
	// status and reversal links.
	ReverseJournal(ctx context.Context, userID string, journalID string, reason string) (*domain.Journal, error)

	// VoidEvent reverses the journal owned by the given business event.
	VoidEvent(ctx context.Context, userID string, eventID string, reason string) (*domain.Journal, error)
}

// PostingSvcFacade combines all posting service interfaces
type PostingSvcFacade interface {
	EventReaderSvc
	PostingWriterSvc
}
