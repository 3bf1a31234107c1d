package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UploadRepo:      newPgxUploadRepository(dbPool),
		ReferenceRepo:   newPgxReferenceRepository(dbPool),
		FactRepo:        newPgxFactRepository(dbPool),
		MaintenanceRepo: newPgxMaintenanceRepository(dbPool),
	}
}
