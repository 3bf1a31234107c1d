package services

import (
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// observer may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, observer portssvc.IngestionObserver) *portssvc.ServiceContainer {
	ingestionOptions := []IngestionServiceOption{
		WithIngestionWorkers(cfg.IngestionWorkers),
		WithIngestionTimeout(cfg.IngestionTimeout),
	}
	if observer != nil {
		ingestionOptions = append(ingestionOptions, WithIngestionObserver(observer))
	}

	return &portssvc.ServiceContainer{
		Ingestion: NewIngestionService(repos, ingestionOptions...),
		Reporting: NewReportingService(repos.FactRepo, repos.ReferenceRepo),
	}
}
