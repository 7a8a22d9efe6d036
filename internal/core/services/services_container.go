package services

import (
	portsrepo "github.com/parishbooks/church_finance_app/internal/core/ports/repositories"
	portssvc "github.com/parishbooks/church_finance_app/internal/core/ports/services"
	"github.com/parishbooks/church_finance_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit first; the account and posting services write through it.
	container.AuditSvc = NewAuditService(repos.AuditRepo)

	container.AccountSvc = NewAccountService(
		repos.AccountRepo,
		WithDefaultCurrency(cfg.DefaultCurrency),
		WithAutoCreateAccounts(cfg.AutoCreateAccounts),
		WithAuditService(container.AuditSvc),
	)

	container.JournalSvc = NewJournalService(repos.JournalRepo, repos.EventRepo, container.AccountSvc)
	container.PostingSvc = NewPostingService(repos.JournalRepo, repos.EventRepo, container.AccountSvc, container.AuditSvc, cfg.DefaultCurrency)
	container.ReportingSvc = NewReportingService(repos.ReportingRepo, container.AccountSvc)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.JournalSvcFacade = (*journalService)(nil)
	_ portssvc.PostingSvcFacade = (*postingService)(nil)
)
