package repositories

import (
	"context"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

// ReferenceReader defines read operations over the global reference tables
type ReferenceReader interface {
	ListAccounts(ctx context.Context) ([]domain.ChartOfAccountsEntry, error)
	ListCostCenters(ctx context.Context) ([]domain.CostCenterEntry, error)
	ListVendors(ctx context.Context) ([]domain.VendorEntry, error)

	// FindBranchesByCodes returns the registered branches among codes, ordered by code.
	FindBranchesByCodes(ctx context.Context, codes []int) ([]domain.Branch, error)
}

// ReferenceWriter merges reference rows by natural key; the last write wins.
type ReferenceWriter interface {
	UpsertAccounts(ctx context.Context, entries []domain.ChartOfAccountsEntry) error
	UpsertCostCenters(ctx context.Context, entries []domain.CostCenterEntry) error
	UpsertVendors(ctx context.Context, entries []domain.VendorEntry) error

	// RegisterBranches inserts branches whose code is not yet known and returns how
	// many were new. Existing branch names are left untouched.
	RegisterBranches(ctx context.Context, branches []domain.Branch) (int, error)
}

// ReferenceRepositoryFacade combines all reference-table repository interfaces
type ReferenceRepositoryFacade interface {
	ReferenceReader
	ReferenceWriter
}
