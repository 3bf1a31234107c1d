package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
)

type PgxMaintenanceRepository struct {
	BaseRepository
}

func newPgxMaintenanceRepository(pool *pgxpool.Pool) portsrepo.MaintenanceRepository {
	return &PgxMaintenanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MaintenanceRepository = (*PgxMaintenanceRepository)(nil)

// ClearAll truncates every table in one transaction.
func (r *PgxMaintenanceRepository) ClearAll(ctx context.Context) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	query := `
		TRUNCATE payables, receivables, payroll_lines, bank_balances, uploads,
		         chart_of_accounts, cost_centers, vendors, branches
		RESTART IDENTITY;
	`
	if _, err := tx.Exec(ctx, query); err != nil {
		return apperrors.NewAppError(500, "failed to clear data", err)
	}
	return r.Commit(ctx, tx)
}
