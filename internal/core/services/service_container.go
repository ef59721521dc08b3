package services

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// NewServiceContainer wires the service layer on top of the repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	accountSvc := NewAccountService(repos.AccountRepo)
	return &portssvc.ServiceContainer{
		Account:   accountSvc,
		Journal:   NewJournalService(repos.JournalRepo, accountSvc),
		Reporting: NewReportingService(repos.AccountRepo, repos.ReportingRepo),
	}
}
