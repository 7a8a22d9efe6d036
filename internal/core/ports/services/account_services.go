package services

import (
	"context"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/parishbooks/church_finance_app/internal/dto"
)

// AccountReaderSvc defines read operations for accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a single account by its ID.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByIDs retrieves multiple accounts by their IDs.
	GetAccountByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for accounts
type AccountWriterSvc interface {
	// CreateAccount creates a new account in the registry.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive. Inactive accounts keep
	// their history but reject new postings.
	DeactivateAccount(ctx context.Context, userID string, accountID string) error
}

// AccountResolverSvc resolves account references coming off business events
type AccountResolverSvc interface {
	// ResolveAccount maps an account name to an active registry account. When
	// auto-creation is enabled and a declared type is supplied, an unknown
	// name is created on the fly; otherwise the posting fails with
	// apperrors.ErrUnknownAccount.
	ResolveAccount(ctx context.Context, userID string, name string, declaredType domain.AccountType) (*domain.Account, error)
}

// AccountSvcFacade combines all account service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountResolverSvc
}
