package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
)

type PgxReferenceRepository struct {
	BaseRepository
}

// newPgxReferenceRepository creates a new repository for the global reference tables.
func newPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepositoryFacade {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

// UpsertAccounts merges chart-of-accounts entries by code.
func (r *PgxReferenceRepository) UpsertAccounts(ctx context.Context, entries []domain.ChartOfAccountsEntry) error {
	query := `
		INSERT INTO chart_of_accounts (code, description, category, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (code) DO UPDATE SET
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at;
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.Code, e.Description, string(e.Category))
	}
	return r.sendBatch(ctx, batch, "chart of accounts upsert")
}

// UpsertCostCenters merges cost centers by code.
func (r *PgxReferenceRepository) UpsertCostCenters(ctx context.Context, entries []domain.CostCenterEntry) error {
	query := `
		INSERT INTO cost_centers (code, description, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (code) DO UPDATE SET
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at;
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.Code, e.Description)
	}
	return r.sendBatch(ctx, batch, "cost center upsert")
}

// UpsertVendors merges vendors by code.
func (r *PgxReferenceRepository) UpsertVendors(ctx context.Context, entries []domain.VendorEntry) error {
	query := `
		INSERT INTO vendors (code, name, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = EXCLUDED.updated_at;
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.Code, e.Name)
	}
	return r.sendBatch(ctx, batch, "vendor upsert")
}

// RegisterBranches inserts unknown branch codes and counts the new ones.
func (r *PgxReferenceRepository) RegisterBranches(ctx context.Context, branches []domain.Branch) (int, error) {
	if len(branches) == 0 {
		return 0, nil
	}
	query := `
		INSERT INTO branches (code, name)
		VALUES ($1, $2)
		ON CONFLICT (code) DO NOTHING;
	`
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, b := range branches {
		batch.Queue(query, b.Code, b.Name)
	}
	br := tx.SendBatch(ctx, batch)
	added := 0
	for range branches {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return 0, apperrors.NewAppError(500, "failed to register branches", err)
		}
		added += int(tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, "failed to register branches", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return added, nil
}

// ListAccounts returns the whole chart of accounts ordered by code.
func (r *PgxReferenceRepository) ListAccounts(ctx context.Context) ([]domain.ChartOfAccountsEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, description, category FROM chart_of_accounts ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart of accounts: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChartOfAccountsEntry, error) {
		var e domain.ChartOfAccountsEntry
		var category string
		err := row.Scan(&e.Code, &e.Description, &category)
		e.Category = domain.AccountCategory(category)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan chart of accounts: %w", err)
	}
	return entries, nil
}

// ListCostCenters returns every cost center ordered by code.
func (r *PgxReferenceRepository) ListCostCenters(ctx context.Context) ([]domain.CostCenterEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, description FROM cost_centers ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost centers: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.CostCenterEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan cost centers: %w", err)
	}
	return entries, nil
}

// ListVendors returns every vendor ordered by code.
func (r *PgxReferenceRepository) ListVendors(ctx context.Context) ([]domain.VendorEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, name FROM vendors ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.VendorEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan vendors: %w", err)
	}
	return entries, nil
}

// FindBranchesByCodes returns the registered branches among codes.
func (r *PgxReferenceRepository) FindBranchesByCodes(ctx context.Context, codes []int) ([]domain.Branch, error) {
	if len(codes) == 0 {
		return []domain.Branch{}, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT code, name FROM branches WHERE code = ANY($1) ORDER BY code;`, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	branches, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Branch])
	if err != nil {
		return nil, fmt.Errorf("failed to scan branches: %w", err)
	}
	return branches, nil
}
