package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/utils/accounting"
)

const defaultTopLimit = 10

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	factRepo      portsrepo.FactReader
	referenceRepo portsrepo.ReferenceReader
	topLimit      int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithTopLimit sets the rollup size used when a caller passes no limit.
func WithTopLimit(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.topLimit = n
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(factRepo portsrepo.FactReader, referenceRepo portsrepo.ReferenceReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		factRepo:      factRepo,
		referenceRepo: referenceRepo,
		topLimit:      defaultTopLimit,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) limitOrDefault(n int) int {
	if n <= 0 {
		return s.topLimit
	}
	return n
}

func filterFor(scope domain.Scope, party string) portsrepo.FactFilter {
	return portsrepo.FactFilter{
		UploadID: scope.UploadID,
		Month:    scope.Month,
		Branches: scope.Branches,
		Party:    party,
	}
}

func (s *reportingService) payables(ctx context.Context, scope domain.Scope, party string) ([]settlement, error) {
	rows, err := s.factRepo.FindPayables(ctx, filterFor(scope, party))
	if err != nil {
		s.LogError(ctx, err, "Failed to load payables", slog.String("upload_id", scope.UploadID))
		return nil, fmt.Errorf("failed to load payables: %w", err)
	}
	return payableSettlements(rows), nil
}

func (s *reportingService) receivables(ctx context.Context, scope domain.Scope, party string) ([]settlement, error) {
	rows, err := s.factRepo.FindReceivables(ctx, filterFor(scope, party))
	if err != nil {
		s.LogError(ctx, err, "Failed to load receivables", slog.String("upload_id", scope.UploadID))
		return nil, fmt.Errorf("failed to load receivables: %w", err)
	}
	return receivableSettlements(rows), nil
}

func (s *reportingService) payrollLines(ctx context.Context, uploadID string) ([]domain.PayrollLine, error) {
	lines, err := s.factRepo.FindPayrollLines(ctx, uploadID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load payroll lines", slog.String("upload_id", uploadID))
		return nil, fmt.Errorf("failed to load payroll lines: %w", err)
	}
	return lines, nil
}

// ledgers loads both ledgers of the scope, already narrowed to the view.
func (s *reportingService) ledgers(ctx context.Context, scope domain.Scope) (pay, rec []settlement, err error) {
	if pay, err = s.payables(ctx, scope, ""); err != nil {
		return nil, nil, err
	}
	if rec, err = s.receivables(ctx, scope, ""); err != nil {
		return nil, nil, err
	}
	return keep(pay, scope.ViewMode), keep(rec, scope.ViewMode), nil
}

// ResolveBranchScope turns requested codes into an explicit scope.
func (s *reportingService) ResolveBranchScope(ctx context.Context, uploadID string, codes []int) (domain.BranchScope, error) {
	if len(codes) > 0 {
		seen := make(map[int]bool, len(codes))
		explicit := make([]int, 0, len(codes))
		for _, c := range codes {
			if !seen[c] {
				seen[c] = true
				explicit = append(explicit, c)
			}
		}
		sort.Ints(explicit)
		return domain.BranchScope{Codes: explicit}, nil
	}

	all, err := s.factRepo.DistinctBranchCodes(ctx, uploadID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve consolidated branches", slog.String("upload_id", uploadID))
		return domain.BranchScope{}, fmt.Errorf("failed to resolve branch scope: %w", err)
	}
	if all == nil {
		all = []int{}
	}
	return domain.BranchScope{Codes: all, Consolidated: true}, nil
}

// AvailableBranches lists the upload's branches, naming unregistered codes by default.
func (s *reportingService) AvailableBranches(ctx context.Context, uploadID string) ([]domain.Branch, error) {
	codes, err := s.factRepo.DistinctBranchCodes(ctx, uploadID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list branch codes", slog.String("upload_id", uploadID))
		return nil, fmt.Errorf("failed to list branch codes: %w", err)
	}
	if len(codes) == 0 {
		return []domain.Branch{}, nil
	}

	registered, err := s.referenceRepo.FindBranchesByCodes(ctx, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to load branches", slog.String("upload_id", uploadID))
		return nil, fmt.Errorf("failed to load branches: %w", err)
	}
	names := make(map[int]string, len(registered))
	for _, b := range registered {
		names[b.Code] = b.Name
	}

	out := make([]domain.Branch, len(codes))
	for i, code := range codes {
		name, ok := names[code]
		if !ok {
			name = domain.DefaultBranchName(code)
		}
		out[i] = domain.Branch{Code: code, Name: name}
	}
	return out, nil
}

// DashboardSummary computes the dashboard KPIs. Revenue and expense only count
// money that moved, whatever the view.
func (s *reportingService) DashboardSummary(ctx context.Context, scope domain.Scope, topN int) (*domain.DashboardSummary, error) {
	pay, rec, err := s.ledgers(ctx, scope)
	if err != nil {
		return nil, err
	}
	lines, err := s.payrollLines(ctx, scope.UploadID)
	if err != nil {
		return nil, err
	}

	limit := s.limitOrDefault(topN)
	revenue := settledTotal(rec)
	expense := settledTotal(pay)
	result := revenue - expense

	summary := &domain.DashboardSummary{
		TotalRevenue:         revenue,
		TotalExpense:         expense,
		TotalPayroll:         payrollTotal(lines, scope.Month),
		Result:               result,
		GrossMargin:          accounting.Percentage(result, revenue),
		TotalInvoicedRevenue: invoicedTotal(rec),
		TotalInvoicedExpense: invoicedTotal(pay),
		ReceivableCount:      len(rec),
		PayableCount:         len(pay),
		TopVendors:           rollup(pay, limit),
		TopClients:           rollup(rec, limit),
		ExpenseByCategory:    breakdown(pay, byCategory),
		ExpenseByCostCenter:  breakdown(pay, byCostCenter),
	}

	s.LogDebug(ctx, "Dashboard summary computed",
		slog.String("upload_id", scope.UploadID),
		slog.Int("payables", len(pay)),
		slog.Int("receivables", len(rec)))
	return summary, nil
}

// DRESummary computes the income statement of the scope.
func (s *reportingService) DRESummary(ctx context.Context, scope domain.Scope) (*domain.DRESummary, error) {
	pay, rec, err := s.ledgers(ctx, scope)
	if err != nil {
		return nil, err
	}
	lines, err := s.payrollLines(ctx, scope.UploadID)
	if err != nil {
		return nil, err
	}

	dre := accounting.BuildDRE(
		measuredTotal(rec, scope.ViewMode),
		measuredTotal(pay, scope.ViewMode),
		payrollTotal(lines, scope.Month),
	)
	return &dre, nil
}

// DREComparison runs DRESummary for the scope's month and for every month.
func (s *reportingService) DREComparison(ctx context.Context, scope domain.Scope) (*domain.DREComparison, error) {
	filtered, err := s.DRESummary(ctx, scope)
	if err != nil {
		return nil, err
	}
	total, err := s.DRESummary(ctx, scope.WithoutMonth())
	if err != nil {
		return nil, err
	}
	return &domain.DREComparison{Month: scope.Month, Filtered: *filtered, Total: *total}, nil
}

// DREByMonth pivots the DRE into one column per month with any activity. The
// total column is the sum of the month columns, so rows without a month are
// left out of it.
func (s *reportingService) DREByMonth(ctx context.Context, scope domain.Scope) (*domain.DREByMonth, error) {
	pay, rec, err := s.ledgers(ctx, scope.WithoutMonth())
	if err != nil {
		return nil, err
	}
	lines, err := s.payrollLines(ctx, scope.UploadID)
	if err != nil {
		return nil, err
	}

	type bucket struct{ revenue, expenses int64 }
	buckets := map[int]*bucket{}
	at := func(m int) *bucket {
		b, ok := buckets[m]
		if !ok {
			b = &bucket{}
			buckets[m] = b
		}
		return b
	}
	for _, r := range rec {
		if r.month != nil {
			at(*r.month).revenue += scope.ViewMode.Measure(r.value, r.settled)
		}
	}
	for _, p := range pay {
		if p.month != nil {
			at(*p.month).expenses += scope.ViewMode.Measure(p.value, p.settled)
		}
	}
	for m := 1; m <= domain.PayrollMonths; m++ {
		if payrollTotal(lines, &m) != 0 {
			at(m)
		}
	}

	months := make([]int, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Ints(months)

	pivot := &domain.DREByMonth{Months: make([]domain.DREMonthColumn, 0, len(months))}
	columns := make([]domain.DRESummary, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		dre := accounting.BuildDRE(b.revenue, b.expenses, payrollTotal(lines, &m))
		pivot.Months = append(pivot.Months, domain.DREMonthColumn{Month: m, DRESummary: dre})
		columns = append(columns, dre)
	}
	pivot.Total = accounting.SumDRE(columns...)
	return pivot, nil
}

// TopVendors ranks vendors by amount paid.
func (s *reportingService) TopVendors(ctx context.Context, scope domain.Scope, limit int) ([]domain.Rollup, error) {
	pay, err := s.payables(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	return rollup(keep(pay, scope.ViewMode), s.limitOrDefault(limit)), nil
}

// TopClients ranks clients by amount received.
func (s *reportingService) TopClients(ctx context.Context, scope domain.Scope, limit int) ([]domain.Rollup, error) {
	rec, err := s.receivables(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	return rollup(keep(rec, scope.ViewMode), s.limitOrDefault(limit)), nil
}

func (s *reportingService) ExpensesByCategory(ctx context.Context, scope domain.Scope) ([]domain.Breakdown, error) {
	pay, err := s.payables(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	return breakdown(keep(pay, scope.ViewMode), byCategory), nil
}

func (s *reportingService) ExpensesByCostCenter(ctx context.Context, scope domain.Scope) ([]domain.Breakdown, error) {
	pay, err := s.payables(ctx, scope, "")
	if err != nil {
		return nil, err
	}
	return breakdown(keep(pay, scope.ViewMode), byCostCenter), nil
}

// MonthlyEvolution returns settled revenue and expense per month.
func (s *reportingService) MonthlyEvolution(ctx context.Context, scope domain.Scope) ([]domain.MonthlyPoint, error) {
	all := scope.WithoutMonth()
	pay, err := s.payables(ctx, all, "")
	if err != nil {
		return nil, err
	}
	rec, err := s.receivables(ctx, all, "")
	if err != nil {
		return nil, err
	}

	points := map[int]*domain.MonthlyPoint{}
	at := func(m int) *domain.MonthlyPoint {
		p, ok := points[m]
		if !ok {
			p = &domain.MonthlyPoint{Month: m}
			points[m] = p
		}
		return p
	}
	for _, r := range rec {
		if r.month != nil && r.settled > 0 {
			at(*r.month).Revenue += r.settled
		}
	}
	for _, p := range pay {
		if p.month != nil && p.settled > 0 {
			at(*p.month).Expense += p.settled
		}
	}

	out := make([]domain.MonthlyPoint, 0, len(points))
	for _, p := range points {
		p.Result = p.Revenue - p.Expense
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// VendorDetail lists the payables of one vendor in the scope.
func (s *reportingService) VendorDetail(ctx context.Context, scope domain.Scope, vendor string) (*domain.VendorDetail, error) {
	rows, err := s.factRepo.FindPayables(ctx, filterFor(scope, vendor))
	if err != nil {
		s.LogError(ctx, err, "Failed to load vendor payables",
			slog.String("upload_id", scope.UploadID), slog.String("vendor", vendor))
		return nil, fmt.Errorf("failed to load vendor payables: %w", err)
	}

	kept := make([]domain.Payable, 0, len(rows))
	for _, p := range rows {
		if scope.ViewMode.Keeps(p.Paid()) {
			kept = append(kept, p)
		}
	}
	return &domain.VendorDetail{
		Vendor:   vendor,
		Payables: kept,
		Stats:    stats(payableSettlements(kept)),
	}, nil
}

// ClientDetail lists the receivables of one client in the scope.
func (s *reportingService) ClientDetail(ctx context.Context, scope domain.Scope, client string) (*domain.ClientDetail, error) {
	rows, err := s.factRepo.FindReceivables(ctx, filterFor(scope, client))
	if err != nil {
		s.LogError(ctx, err, "Failed to load client receivables",
			slog.String("upload_id", scope.UploadID), slog.String("client", client))
		return nil, fmt.Errorf("failed to load client receivables: %w", err)
	}

	kept := make([]domain.Receivable, 0, len(rows))
	for _, r := range rows {
		if scope.ViewMode.Keeps(r.Received()) {
			kept = append(kept, r)
		}
	}
	return &domain.ClientDetail{
		Client:      client,
		Receivables: kept,
		Stats:       stats(receivableSettlements(kept)),
	}, nil
}

// PayrollSummary groups payroll by area and payment type. Payroll carries no
// branch, so only the month of the scope applies.
func (s *reportingService) PayrollSummary(ctx context.Context, scope domain.Scope) (*domain.PayrollSummary, error) {
	lines, err := s.payrollLines(ctx, scope.UploadID)
	if err != nil {
		return nil, err
	}

	type key struct{ area, paymentType string }
	groups := map[key]*domain.PayrollGroup{}
	employees := map[key]map[string]bool{}
	summary := &domain.PayrollSummary{Groups: []domain.PayrollGroup{}}
	for _, l := range lines {
		amount := l.Amount(scope.Month)
		k := key{l.Area, l.PaymentType}
		g, ok := groups[k]
		if !ok {
			g = &domain.PayrollGroup{Area: l.Area, PaymentType: l.PaymentType}
			groups[k] = g
			employees[k] = map[string]bool{}
		}
		g.Total += amount
		employees[k][l.EmployeeName] = true
		summary.Total += amount
	}

	for k, g := range groups {
		g.Employees = len(employees[k])
		summary.Groups = append(summary.Groups, *g)
	}
	sort.Slice(summary.Groups, func(i, j int) bool {
		a, b := summary.Groups[i], summary.Groups[j]
		if a.Area != b.Area {
			return a.Area < b.Area
		}
		return a.PaymentType < b.PaymentType
	})
	return summary, nil
}

// BankBalances lists the bank statement block with its totals.
func (s *reportingService) BankBalances(ctx context.Context, uploadID string) (*domain.BankBalanceReport, error) {
	rows, err := s.factRepo.FindBankBalances(ctx, uploadID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load bank balances", slog.String("upload_id", uploadID))
		return nil, fmt.Errorf("failed to load bank balances: %w", err)
	}

	report := &domain.BankBalanceReport{Balances: rows}
	if report.Balances == nil {
		report.Balances = []domain.BankBalance{}
	}
	for _, b := range rows {
		report.TotalBalance += b.TotalBalance
		report.SystemBalance += b.SystemBalance
		report.Deviation += b.Deviation
	}
	return report, nil
}

// ChartOfAccounts lists the chart of accounts, optionally keeping one category.
func (s *reportingService) ChartOfAccounts(ctx context.Context, category domain.AccountCategory) ([]domain.ChartOfAccountsEntry, error) {
	entries, err := s.referenceRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chart of accounts")
		return nil, fmt.Errorf("failed to list chart of accounts: %w", err)
	}
	out := make([]domain.ChartOfAccountsEntry, 0, len(entries))
	for _, e := range entries {
		if category == "" || e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *reportingService) CostCenters(ctx context.Context) ([]domain.CostCenterEntry, error) {
	entries, err := s.referenceRepo.ListCostCenters(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cost centers")
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	if entries == nil {
		entries = []domain.CostCenterEntry{}
	}
	return entries, nil
}

func (s *reportingService) Vendors(ctx context.Context) ([]domain.VendorEntry, error) {
	entries, err := s.referenceRepo.ListVendors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list vendors")
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	if entries == nil {
		entries = []domain.VendorEntry{}
	}
	return entries, nil
}
