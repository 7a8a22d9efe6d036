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
	"github.com/parishbooks/church_finance_app/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountInactive = errors.New("account is inactive")
)

// accountService implements the chart of accounts registry.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade

	defaultCurrency    string
	autoCreateAccounts bool
}

// AccountServiceOption configures the account service.
type AccountServiceOption func(*accountService)

// WithDefaultCurrency sets the currency assigned to accounts created without one.
func WithDefaultCurrency(code string) AccountServiceOption {
	return func(s *accountService) {
		s.defaultCurrency = code
	}
}

// WithAutoCreateAccounts enables on-the-fly creation of unknown accounts
// during posting, provided the caller declares the account type.
func WithAutoCreateAccounts(enabled bool) AccountServiceOption {
	return func(s *accountService) {
		s.autoCreateAccounts = enabled
	}
}

// WithAuditService wires the audit log so registry changes leave a trail.
func WithAuditService(auditSvc portssvc.AuditSvcFacade) AccountServiceOption {
	return func(s *accountService) {
		s.auditSvc = auditSvc
	}
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, opts ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     accountRepo,
		defaultCurrency: "KES",
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new account in the registry.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := s.GetLogger(ctx)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = s.defaultCurrency
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         req.Name,
		AccountType:  req.AccountType,
		CurrencyCode: currency,
		Description:  req.Description,
		IsActive:     true,
		Balance:      decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", "error", err, "account_name", req.Name)
		return nil, err
	}

	s.recordAudit(ctx, userID, domain.ActionAccountCreated, nil, fmt.Sprintf("account %q (%s) created", account.Name, account.AccountType))

	logger.Info("Account created", "account_id", account.AccountID, "account_name", account.Name)
	return &account, nil
}

// GetAccountByID retrieves a single account by its ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", "account_id", accountID)
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByIDs retrieves multiple accounts by their IDs.
func (s *accountService) GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
}

// ListAccounts retrieves a paginated list of accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// DeactivateAccount marks an account as inactive. History stays; new postings
// against the account are rejected.
func (s *accountService) DeactivateAccount(ctx context.Context, userID string, accountID string) error {
	logger := s.GetLogger(ctx)

	now := time.Now().UTC()
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate account", "error", err, "account_id", accountID)
		}
		return err
	}

	s.recordAudit(ctx, userID, domain.ActionAccountDisabled, nil, fmt.Sprintf("account %s deactivated", accountID))

	logger.Info("Account deactivated", "account_id", accountID)
	return nil
}

// ResolveAccount maps an account name to an active registry account. Unknown
// names fail with ErrUnknownAccount unless auto-creation is enabled and the
// caller declared an account type, in which case the account is created and
// the creation audited.
func (s *accountService) ResolveAccount(ctx context.Context, userID string, name string, declaredType domain.AccountType) (*domain.Account, error) {
	logger := s.GetLogger(ctx)

	account, err := s.accountRepo.FindAccountByName(ctx, name)
	if err == nil {
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %q", ErrAccountInactive, name)
		}
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to resolve account by name", "error", err, "account_name", name)
		return nil, err
	}

	if !s.autoCreateAccounts || declaredType == "" {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccount, name)
	}

	created, err := s.CreateAccount(ctx, userID, dto.CreateAccountRequest{
		Name:        name,
		AccountType: declaredType,
	})
	if err != nil {
		// Another request may have created the same account concurrently.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.accountRepo.FindAccountByName(ctx, name)
		}
		return nil, err
	}

	logger.Info("Account auto-created during posting", "account_id", created.AccountID, "account_name", name, "account_type", declaredType)
	return created, nil
}

// recordAudit appends a registry audit record. Failures are logged, never propagated.
func (s *accountService) recordAudit(ctx context.Context, actor string, action domain.AuditAction, journalID *string, details string) {
	if s.auditSvc == nil {
		return
	}
	if err := s.auditSvc.Record(ctx, actor, action, journalID, details); err != nil {
		s.LogError(ctx, err, "Failed to write audit record", "action", string(action))
	}
}
