package repositories

import (
	"context"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

// FactFilter narrows payable and receivable queries. Month and Party are optional;
// Branches is mandatory and follows domain.BranchScope.Includes.
type FactFilter struct {
	UploadID string
	Month    *int
	Branches domain.BranchScope
	// Party matches the vendor name on payables and the client name on receivables.
	Party string
}

// FactReader defines read operations over upload-scoped facts. Unknown uploads
// yield empty results, not errors.
type FactReader interface {
	FindPayables(ctx context.Context, filter FactFilter) ([]domain.Payable, error)
	FindReceivables(ctx context.Context, filter FactFilter) ([]domain.Receivable, error)
	FindPayrollLines(ctx context.Context, uploadID string) ([]domain.PayrollLine, error)
	FindBankBalances(ctx context.Context, uploadID string) ([]domain.BankBalance, error)

	// DistinctBranchCodes returns the sorted branch codes used by the upload's
	// payables and receivables.
	DistinctBranchCodes(ctx context.Context, uploadID string) ([]int, error)

	// CountFacts returns the number of fact rows of any kind stored for the upload.
	CountFacts(ctx context.Context, uploadID string) (int, error)
}

// FactWriter appends facts. Facts are immutable once written.
type FactWriter interface {
	InsertPayables(ctx context.Context, rows []domain.Payable) error
	InsertReceivables(ctx context.Context, rows []domain.Receivable) error
	InsertPayrollLines(ctx context.Context, rows []domain.PayrollLine) error
	InsertBankBalances(ctx context.Context, rows []domain.BankBalance) error
}

// FactRepositoryFacade combines all fact repository interfaces
type FactRepositoryFacade interface {
	FactReader
	FactWriter
}

// MaintenanceRepository holds operator actions over the whole store.
type MaintenanceRepository interface {
	// ClearAll deletes every fact, upload and reference row.
	ClearAll(ctx context.Context) error
}
