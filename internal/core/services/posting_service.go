package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/parishbooks/church_finance_app/internal/apperrors"
	"github.com/parishbooks/church_finance_app/internal/core/domain"
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/utils/accounting"
)

var (
	ErrMissingIdempotencyKey = errors.New("idempotency key is required")
	ErrAlreadyReversed       = errors.New("journal has already been reversed")
	ErrReversalOfReversal    = errors.New("a reversing journal cannot itself be reversed")
	ErrCurrencyMismatch      = errors.New("account currency does not match event currency")
)

// postingService turns business events into committed double-entry postings.
type postingService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	eventRepo   portsrepo.EventRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	auditSvc    portssvc.AuditSvcFacade

	defaultCurrency string
}

// NewPostingService creates a new PostingService.
func NewPostingService(journalRepo portsrepo.JournalRepositoryFacade, eventRepo portsrepo.EventRepositoryFacade, accountSvc portssvc.AccountSvcFacade, auditSvc portssvc.AuditSvcFacade, defaultCurrency string) portssvc.PostingSvcFacade {
	if defaultCurrency == "" {
		defaultCurrency = "KES"
	}
	return &postingService{
		journalRepo:     journalRepo,
		eventRepo:       eventRepo,
		accountSvc:      accountSvc,
		auditSvc:        auditSvc,
		defaultCurrency: defaultCurrency,
	}
}

// Ensure postingService implements the portssvc.PostingSvcFacade interface
var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostEvent validates a business event, builds its balanced journal and
// commits both in one database transaction. Replays of an already committed
// idempotency key return the original posting unchanged.
func (s *postingService) PostEvent(ctx context.Context, userID string, event domain.BusinessEvent) (*domain.PostingResult, error) {
	logger := s.GetLogger(ctx)

	if event.IdempotencyKey == "" {
		return nil, fmt.Errorf("%w", ErrMissingIdempotencyKey)
	}
	if err := event.Validate(); err != nil {
		s.recordAudit(ctx, userID, domain.ActionPostingRejected, nil, fmt.Sprintf("%s rejected: %s", event.Kind, err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	// Replay check before doing any work. The unique constraint on the
	// idempotency key still backstops a concurrent first-time race.
	if existing, err := s.eventRepo.FindEventByIdempotencyKey(ctx, event.IdempotencyKey); err == nil {
		logger.Info("Idempotent replay detected", "idempotency_key", event.IdempotencyKey, "event_id", existing.EventID)
		s.recordAudit(ctx, userID, domain.ActionDuplicateReplay, &existing.JournalID, "replay of idempotency key "+event.IdempotencyKey)
		return &domain.PostingResult{Event: *existing, JournalID: existing.JournalID, Duplicate: true}, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	now := time.Now().UTC()
	if event.CurrencyCode == "" {
		event.CurrencyCode = s.defaultCurrency
	}
	event.EventID = uuid.NewString()
	event.Amount = event.TotalAmount()
	event.Status = domain.EventRecorded
	if event.OccurredAt.IsZero() {
		event.OccurredAt = now
	}
	event.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	specs, err := BuildEntrySpecs(event)
	if err != nil {
		s.recordAudit(ctx, userID, domain.ActionPostingRejected, nil, fmt.Sprintf("%s rejected: %s", event.Kind, err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	journalID := uuid.NewString()
	event.JournalID = journalID

	// Resolve every named account once, then build the journal lines.
	accountsByName := make(map[string]*domain.Account, len(specs))
	accountTypes := make(map[string]domain.AccountType, len(specs))
	transactions := make([]domain.Transaction, len(specs))
	for i, spec := range specs {
		account, ok := accountsByName[spec.AccountName]
		if !ok {
			account, err = s.accountSvc.ResolveAccount(ctx, userID, spec.AccountName, spec.DeclaredType)
			if err != nil {
				s.recordAudit(ctx, userID, domain.ActionPostingRejected, nil, fmt.Sprintf("%s rejected: %s", event.Kind, err))
				return nil, err
			}
			if account.CurrencyCode != event.CurrencyCode {
				err = fmt.Errorf("%w: account %q is %s, event is %s", ErrCurrencyMismatch, account.Name, account.CurrencyCode, event.CurrencyCode)
				s.recordAudit(ctx, userID, domain.ActionPostingRejected, nil, fmt.Sprintf("%s rejected: %s", event.Kind, err))
				return nil, err
			}
			accountsByName[spec.AccountName] = account
			accountTypes[account.AccountID] = account.AccountType
		}

		transactions[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       journalID,
			AccountID:       account.AccountID,
			Amount:          spec.Amount,
			TransactionType: spec.Type,
			CurrencyCode:    event.CurrencyCode,
			Notes:           spec.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}

	// The builder guarantees balance; this guards against regressions.
	if err := accounting.ValidateJournalBalance(transactions); err != nil {
		s.recordAudit(ctx, userID, domain.ActionPostingRejected, nil, fmt.Sprintf("%s rejected: %s", event.Kind, err))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	balanceChanges, err := accounting.BalanceChanges(transactions, accountTypes)
	if err != nil {
		return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
	}

	debits, _ := accounting.SumsByType(transactions)
	journal := domain.Journal{
		JournalID:    journalID,
		JournalDate:  event.OccurredAt,
		Description:  journalDescription(event),
		CurrencyCode: event.CurrencyCode,
		Status:       domain.Posted,
		Amount:       debits,
		AuditFields:  event.AuditFields,
	}

	if err := s.journalRepo.SavePosting(ctx, event, journal, transactions, balanceChanges); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost a first-time race; the committed posting is the answer.
			existing, findErr := s.eventRepo.FindEventByIdempotencyKey(ctx, event.IdempotencyKey)
			if findErr != nil {
				return nil, fmt.Errorf("failed to load original posting after duplicate commit: %w", findErr)
			}
			logger.Info("Idempotent replay resolved after commit race", "idempotency_key", event.IdempotencyKey, "event_id", existing.EventID)
			s.recordAudit(ctx, userID, domain.ActionDuplicateReplay, &existing.JournalID, "replay of idempotency key "+event.IdempotencyKey)
			return &domain.PostingResult{Event: *existing, JournalID: existing.JournalID, Duplicate: true}, nil
		}
		logger.Error("Failed to save posting", "error", err, "event_kind", string(event.Kind))
		return nil, fmt.Errorf("failed to save posting: %w", err)
	}

	s.recordAudit(ctx, userID, domain.ActionEventPosted, &journalID, fmt.Sprintf("%s posted as journal %s", event.Kind, journalID))

	logger.Info("Event posted", "event_id", event.EventID, "journal_id", journalID, "kind", string(event.Kind), "amount", event.Amount.String())
	return &domain.PostingResult{Event: event, JournalID: journalID, Duplicate: false}, nil
}

// ReverseJournal voids a posted journal by committing a mirrored reversing
// journal. The original lines are never touched; only the journal status and
// reversal links change.
func (s *postingService) ReverseJournal(ctx context.Context, userID string, journalID string, reason string) (*domain.Journal, error) {
	logger := s.GetLogger(ctx)

	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if original.IsReversal() {
		return nil, fmt.Errorf("%w: journal %s", ErrReversalOfReversal, journalID)
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: journal %s", ErrAlreadyReversed, journalID)
	}

	originalTxns, err := s.journalRepo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines of journal %s: %w", journalID, err)
	}

	now := time.Now().UTC()
	reversingID := uuid.NewString()

	// Mirror every line: same account, same amount, opposite side.
	reversedTxns := make([]domain.Transaction, len(originalTxns))
	accountIDs := make([]string, 0, len(originalTxns))
	for i, txn := range originalTxns {
		reversedTxns[i] = domain.Transaction{
			TransactionID:   uuid.NewString(),
			JournalID:       reversingID,
			AccountID:       txn.AccountID,
			Amount:          txn.Amount,
			TransactionType: txn.TransactionType.Opposite(),
			CurrencyCode:    txn.CurrencyCode,
			Notes:           txn.Notes,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
		accountIDs = append(accountIDs, txn.AccountID)
	}

	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for reversal: %w", err)
	}
	accountTypes := make(map[string]domain.AccountType, len(accountsMap))
	for id, acc := range accountsMap {
		accountTypes[id] = acc.AccountType
	}

	balanceChanges, err := accounting.BalanceChanges(reversedTxns, accountTypes)
	if err != nil {
		return nil, fmt.Errorf("internal error calculating reversal balance changes: %w", err)
	}

	description := "Reversal of: " + original.Description
	if reason != "" {
		description += " (" + reason + ")"
	}

	reversing := domain.Journal{
		JournalID:         reversingID,
		JournalDate:       now,
		Description:       description,
		CurrencyCode:      original.CurrencyCode,
		Status:            domain.Posted,
		OriginalJournalID: &original.JournalID,
		Amount:            original.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// Flip the owning business event to VOIDED alongside the reversal.
	voidEventID := ""
	if event, findErr := s.eventRepo.FindEventByJournalID(ctx, journalID); findErr == nil {
		voidEventID = event.EventID
	} else if !errors.Is(findErr, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find owning event of journal %s: %w", journalID, findErr)
	}

	if err := s.journalRepo.SaveReversal(ctx, reversing, reversedTxns, balanceChanges, original.JournalID, voidEventID); err != nil {
		logger.Error("Failed to save reversal", "error", err, "journal_id", journalID)
		return nil, err
	}

	s.recordAudit(ctx, userID, domain.ActionJournalReversed, &original.JournalID, fmt.Sprintf("reversed by journal %s: %s", reversingID, reason))

	logger.Info("Journal reversed", "journal_id", journalID, "reversing_journal_id", reversingID)
	reversing.Transactions = nil
	return &reversing, nil
}

// VoidEvent reverses the journal owned by the given business event.
func (s *postingService) VoidEvent(ctx context.Context, userID string, eventID string, reason string) (*domain.Journal, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != domain.EventRecorded {
		return nil, fmt.Errorf("%w: event %s is already voided", apperrors.ErrConflict, eventID)
	}
	return s.ReverseJournal(ctx, userID, event.JournalID, reason)
}

// GetEventByID retrieves a business event by its ID.
func (s *postingService) GetEventByID(ctx context.Context, eventID string) (*domain.BusinessEvent, error) {
	return s.eventRepo.FindEventByID(ctx, eventID)
}

// ListEvents retrieves a paginated list of events, optionally filtered by kind.
func (s *postingService) ListEvents(ctx context.Context, kind *domain.EventKind, limit int, nextToken *string) ([]domain.BusinessEvent, *string, error) {
	return s.eventRepo.ListEvents(ctx, kind, limit, nextToken)
}

// recordAudit appends an audit record. Failures are logged, never propagated:
// the financial write always wins over its trail.
func (s *postingService) recordAudit(ctx context.Context, actor string, action domain.AuditAction, journalID *string, details string) {
	if s.auditSvc == nil {
		return
	}
	if err := s.auditSvc.Record(ctx, actor, action, journalID, details); err != nil {
		s.LogError(ctx, err, "Failed to write audit record", "action", string(action))
	}
}
