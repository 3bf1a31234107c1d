package services

import (
	"context"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

// ReportingService computes read-only aggregations over one upload. Every method
// takes an explicit scope; unknown or unfinished uploads produce zero values.
type ReportingService interface {
	// ResolveBranchScope turns requested branch codes into a scope. No codes (the
	// consolidated view) resolves to every branch code used by the upload.
	ResolveBranchScope(ctx context.Context, uploadID string, codes []int) (domain.BranchScope, error)

	// AvailableBranches lists the branches referenced by the upload.
	AvailableBranches(ctx context.Context, uploadID string) ([]domain.Branch, error)

	DashboardSummary(ctx context.Context, scope domain.Scope, topN int) (*domain.DashboardSummary, error)
	DRESummary(ctx context.Context, scope domain.Scope) (*domain.DRESummary, error)

	// DREComparison computes the DRE for the scope's month and for the whole period.
	DREComparison(ctx context.Context, scope domain.Scope) (*domain.DREComparison, error)
	DREByMonth(ctx context.Context, scope domain.Scope) (*domain.DREByMonth, error)

	TopVendors(ctx context.Context, scope domain.Scope, limit int) ([]domain.Rollup, error)
	TopClients(ctx context.Context, scope domain.Scope, limit int) ([]domain.Rollup, error)
	ExpensesByCategory(ctx context.Context, scope domain.Scope) ([]domain.Breakdown, error)
	ExpensesByCostCenter(ctx context.Context, scope domain.Scope) ([]domain.Breakdown, error)

	// MonthlyEvolution ignores the scope's view mode and month.
	MonthlyEvolution(ctx context.Context, scope domain.Scope) ([]domain.MonthlyPoint, error)

	VendorDetail(ctx context.Context, scope domain.Scope, vendor string) (*domain.VendorDetail, error)
	ClientDetail(ctx context.Context, scope domain.Scope, client string) (*domain.ClientDetail, error)

	PayrollSummary(ctx context.Context, scope domain.Scope) (*domain.PayrollSummary, error)
	BankBalances(ctx context.Context, uploadID string) (*domain.BankBalanceReport, error)

	// ChartOfAccounts lists the global chart of accounts; an empty category lists all.
	ChartOfAccounts(ctx context.Context, category domain.AccountCategory) ([]domain.ChartOfAccountsEntry, error)
	CostCenters(ctx context.Context) ([]domain.CostCenterEntry, error)
	Vendors(ctx context.Context) ([]domain.VendorEntry, error)
}
