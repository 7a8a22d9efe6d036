package services

// ServiceContainer holds all the application services.
// It acts as a simple service locator or dependency injection container.
type ServiceContainer struct {
	AccountSvc   AccountSvcFacade
	JournalSvc   JournalSvcFacade
	PostingSvc   PostingSvcFacade
	AuditSvc     AuditSvcFacade
	ReportingSvc ReportingService
}
