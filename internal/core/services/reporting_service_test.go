package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/core/services"
	"github.com/SscSPs/financial_reports_app/internal/repositories/memory"
)

const uploadID = "upload-1"

func cents(v int64) *int64 { return &v }
func month(m int) *int     { return &m }
func branch(b int) *int    { return &b }

func day(m, d int) *time.Time {
	t := time.Date(2024, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

type ReportingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repos   portsrepo.RepositoryProvider
	service portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.service = services.NewReportingService(suite.repos.FactRepo, suite.repos.ReferenceRepo)
}

func (suite *ReportingServiceTestSuite) seed(pay []domain.Payable, rec []domain.Receivable, payroll []domain.PayrollLine) {
	for i := range pay {
		pay[i].UploadID = uploadID
	}
	for i := range rec {
		rec[i].UploadID = uploadID
	}
	for i := range payroll {
		payroll[i].UploadID = uploadID
	}
	suite.Require().NoError(suite.repos.FactRepo.InsertPayables(suite.ctx, pay))
	suite.Require().NoError(suite.repos.FactRepo.InsertReceivables(suite.ctx, rec))
	suite.Require().NoError(suite.repos.FactRepo.InsertPayrollLines(suite.ctx, payroll))
}

func (suite *ReportingServiceTestSuite) scope(view domain.ViewMode, m *int) domain.Scope {
	branches, err := suite.service.ResolveBranchScope(suite.ctx, uploadID, nil)
	suite.Require().NoError(err)
	return domain.Scope{UploadID: uploadID, Month: m, Branches: branches, ViewMode: view}
}

func (suite *ReportingServiceTestSuite) TestDashboard_RevenueCountsOnlyReceivedMoney() {
	suite.seed(nil, []domain.Receivable{
		{ClientName: "A", Value: 100000, ValueReceived: cents(100000), Month: month(3), BranchCode: branch(1)},
		{ClientName: "B", Value: 50000, Month: month(3), BranchCode: branch(1)},
		{ClientName: "C", Value: 70000, ValueReceived: cents(0), Month: month(3), BranchCode: branch(1)},
	}, nil)

	summary, err := suite.service.DashboardSummary(suite.ctx, suite.scope(domain.ViewAll, nil), 5)
	suite.Require().NoError(err)
	suite.Equal(int64(100000), summary.TotalRevenue)
	suite.Equal(int64(220000), summary.TotalInvoicedRevenue)
	suite.Equal(3, summary.ReceivableCount)
	suite.Require().Len(summary.TopClients, 1)
	suite.Equal("A", summary.TopClients[0].Name)
}

func (suite *ReportingServiceTestSuite) TestMargins_ZeroRevenue() {
	suite.seed([]domain.Payable{
		{VendorName: "X", Value: 40000, ValuePaid: cents(40000), Month: month(1)},
	}, nil, nil)

	scope := suite.scope(domain.ViewRealized, nil)
	dashboard, err := suite.service.DashboardSummary(suite.ctx, scope, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(-40000), dashboard.Result)
	suite.Zero(dashboard.GrossMargin)

	dre, err := suite.service.DRESummary(suite.ctx, scope)
	suite.Require().NoError(err)
	suite.Equal(int64(-40000), dre.OperatingProfit)
	suite.Zero(dre.OperatingMargin)
	suite.Zero(dre.NetMargin)
}

func (suite *ReportingServiceTestSuite) TestDREByMonth_EveryActiveMonthIsAColumn() {
	var payroll domain.PayrollLine
	payroll.EmployeeName = "Ana"
	payroll.Months[6] = 30000
	suite.seed(
		[]domain.Payable{
			{Value: 10000, ValuePaid: cents(10000), Month: month(2)},
			{Value: 5000, ValuePaid: cents(5000), Month: month(3)},
		},
		[]domain.Receivable{
			{Value: 20000, ValueReceived: cents(20000), Month: month(1)},
			{Value: 8000, ValueReceived: cents(8000), Month: month(3)},
		},
		[]domain.PayrollLine{payroll},
	)

	pivot, err := suite.service.DREByMonth(suite.ctx, suite.scope(domain.ViewRealized, month(3)))
	suite.Require().NoError(err)

	months := make([]int, len(pivot.Months))
	for i, c := range pivot.Months {
		months[i] = c.Month
	}
	suite.Equal([]int{1, 2, 3, 7}, months)
	suite.Equal(int64(20000), pivot.Months[0].Revenue)
	suite.Zero(pivot.Months[0].Expenses)
	suite.Zero(pivot.Months[1].Revenue)
	suite.Equal(int64(30000), pivot.Months[3].Payroll)
	suite.Equal(int64(-30000), pivot.Months[3].NetProfit)

	suite.Equal(int64(28000), pivot.Total.Revenue)
	suite.Equal(int64(15000), pivot.Total.Expenses)
	suite.Equal(int64(30000), pivot.Total.Payroll)
	suite.Equal(int64(-17000), pivot.Total.NetProfit)
}

func (suite *ReportingServiceTestSuite) TestViewModes() {
	suite.seed(nil, []domain.Receivable{
		{Value: 10000, ValueReceived: cents(9000), Month: month(1)},
		{Value: 4000, Month: month(1)},
	}, nil)

	realized, err := suite.service.DRESummary(suite.ctx, suite.scope(domain.ViewRealized, nil))
	suite.Require().NoError(err)
	suite.Equal(int64(9000), realized.Revenue)

	projected, err := suite.service.DRESummary(suite.ctx, suite.scope(domain.ViewProjected, nil))
	suite.Require().NoError(err)
	suite.Equal(int64(4000), projected.Revenue)

	all, err := suite.service.DRESummary(suite.ctx, suite.scope(domain.ViewAll, nil))
	suite.Require().NoError(err)
	suite.Equal(int64(14000), all.Revenue)
}

func (suite *ReportingServiceTestSuite) TestDREComparison() {
	suite.seed(nil, []domain.Receivable{
		{Value: 10000, ValueReceived: cents(10000), Month: month(1)},
		{Value: 30000, ValueReceived: cents(30000), Month: month(2)},
	}, nil)

	cmp, err := suite.service.DREComparison(suite.ctx, suite.scope(domain.ViewRealized, month(2)))
	suite.Require().NoError(err)
	suite.Equal(2, *cmp.Month)
	suite.Equal(int64(30000), cmp.Filtered.Revenue)
	suite.Equal(int64(40000), cmp.Total.Revenue)
}

func (suite *ReportingServiceTestSuite) TestBranchScope() {
	suite.seed([]domain.Payable{
		{Value: 100, ValuePaid: cents(100), BranchCode: branch(1)},
		{Value: 200, ValuePaid: cents(200), BranchCode: branch(2)},
		{Value: 400, ValuePaid: cents(400)},
	}, nil, nil)

	consolidated := suite.scope(domain.ViewAll, nil)
	suite.Equal([]int{1, 2}, consolidated.Branches.Codes)
	suite.True(consolidated.Branches.Consolidated)
	dre, err := suite.service.DRESummary(suite.ctx, consolidated)
	suite.Require().NoError(err)
	suite.Equal(int64(700), dre.Expenses)

	explicit, err := suite.service.ResolveBranchScope(suite.ctx, uploadID, []int{2, 1, 2})
	suite.Require().NoError(err)
	suite.Equal([]int{1, 2}, explicit.Codes)
	suite.False(explicit.Consolidated)
	dre, err = suite.service.DRESummary(suite.ctx, domain.Scope{UploadID: uploadID, Branches: explicit, ViewMode: domain.ViewAll})
	suite.Require().NoError(err)
	suite.Equal(int64(300), dre.Expenses)
}

func (suite *ReportingServiceTestSuite) TestTopVendorsAndBreakdowns() {
	suite.seed([]domain.Payable{
		{VendorName: "ACME ", Expense: domain.Classification{AnalyticDesc: "Aluguel"}, Value: 1000, ValuePaid: cents(1000), PaymentDate: day(3, 1)},
		{VendorName: "ACME", Expense: domain.Classification{AnalyticDesc: "Aluguel"}, Value: 2000, ValuePaid: cents(2000), PaymentDate: day(3, 20)},
		{VendorName: "LUZ", CostCenter: domain.Classification{AnalyticDesc: "Fábrica"}, Value: 2500, ValuePaid: cents(2500), PaymentDate: day(3, 5)},
		{VendorName: "PENDENTE", Value: 9000},
	}, nil, nil)

	scope := suite.scope(domain.ViewAll, nil)
	top, err := suite.service.TopVendors(suite.ctx, scope, 10)
	suite.Require().NoError(err)
	suite.Require().Len(top, 2)
	suite.Equal(domain.Rollup{Name: "ACME", Total: 3000, Count: 2, Average: 1500, LastSettlement: day(3, 20)}, top[0])
	suite.Equal("LUZ", top[1].Name)

	limited, err := suite.service.TopVendors(suite.ctx, scope, 1)
	suite.Require().NoError(err)
	suite.Len(limited, 1)

	byCategory, err := suite.service.ExpensesByCategory(suite.ctx, scope)
	suite.Require().NoError(err)
	suite.Equal([]domain.Breakdown{{Label: "Aluguel", Total: 3000}, {Label: "Sem categoria", Total: 2500}}, byCategory)

	byCenter, err := suite.service.ExpensesByCostCenter(suite.ctx, scope)
	suite.Require().NoError(err)
	suite.Equal([]domain.Breakdown{{Label: "Sem centro de custo", Total: 3000}, {Label: "Fábrica", Total: 2500}}, byCenter)
}

func (suite *ReportingServiceTestSuite) TestMonthlyEvolution_IgnoresViewAndMonth() {
	suite.seed(
		[]domain.Payable{{Value: 500, ValuePaid: cents(300), Month: month(2)}},
		[]domain.Receivable{
			{Value: 1000, ValueReceived: cents(1000), Month: month(1)},
			{Value: 700, Month: month(2)},
		},
		nil,
	)

	points, err := suite.service.MonthlyEvolution(suite.ctx, suite.scope(domain.ViewProjected, month(1)))
	suite.Require().NoError(err)
	suite.Equal([]domain.MonthlyPoint{
		{Month: 1, Revenue: 1000, Result: 1000},
		{Month: 2, Expense: 300, Result: -300},
	}, points)
}

func (suite *ReportingServiceTestSuite) TestClientDetail() {
	suite.seed(nil, []domain.Receivable{
		{ClientName: "Cliente A", Value: 1000, ValueReceived: cents(1000), ReceiptDate: day(2, 1)},
		{ClientName: "cliente a ", Value: 500},
		{ClientName: "Outro", Value: 800, ValueReceived: cents(800)},
	}, nil)

	detail, err := suite.service.ClientDetail(suite.ctx, suite.scope(domain.ViewAll, nil), "CLIENTE A")
	suite.Require().NoError(err)
	suite.Len(detail.Receivables, 2)
	suite.Equal(domain.SettlementStats{
		TotalInvoiced:  1500,
		TotalSettled:   1000,
		Count:          1,
		Average:        1000,
		LastSettlement: day(2, 1),
	}, detail.Stats)
}

func (suite *ReportingServiceTestSuite) TestVendorDetail_StatsAndViewModes() {
	suite.seed([]domain.Payable{
		{VendorName: "Fornecedor X", Value: 1000, ValuePaid: cents(1000), PaymentDate: day(3, 10), Month: month(3), BranchCode: branch(1)},
		{VendorName: "FORNECEDOR x ", Value: 400, Month: month(3), BranchCode: branch(1)},
		{VendorName: "Fornecedor X", Value: 600, ValuePaid: cents(600), PaymentDate: day(4, 5), Month: month(4), BranchCode: branch(2)},
		{VendorName: "Outro", Value: 999, ValuePaid: cents(999), Month: month(3), BranchCode: branch(1)},
	}, nil, nil)

	tests := []struct {
		name      string
		view      domain.ViewMode
		month     *int
		codes     []int
		wantCount int
		wantStats domain.SettlementStats
	}{
		{
			name: "all", view: domain.ViewAll, wantCount: 3,
			wantStats: domain.SettlementStats{TotalInvoiced: 2000, TotalSettled: 1600, Count: 2, Average: 800, LastSettlement: day(4, 5)},
		},
		{
			name: "realized", view: domain.ViewRealized, wantCount: 2,
			wantStats: domain.SettlementStats{TotalInvoiced: 1600, TotalSettled: 1600, Count: 2, Average: 800, LastSettlement: day(4, 5)},
		},
		{
			name: "projected", view: domain.ViewProjected, wantCount: 1,
			wantStats: domain.SettlementStats{TotalInvoiced: 400},
		},
		{
			name: "month", view: domain.ViewAll, month: month(3), wantCount: 2,
			wantStats: domain.SettlementStats{TotalInvoiced: 1400, TotalSettled: 1000, Count: 1, Average: 1000, LastSettlement: day(3, 10)},
		},
		{
			name: "branch", view: domain.ViewAll, codes: []int{2}, wantCount: 1,
			wantStats: domain.SettlementStats{TotalInvoiced: 600, TotalSettled: 600, Count: 1, Average: 600, LastSettlement: day(4, 5)},
		},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			branches, err := suite.service.ResolveBranchScope(suite.ctx, uploadID, tt.codes)
			suite.Require().NoError(err)
			scope := domain.Scope{UploadID: uploadID, Month: tt.month, Branches: branches, ViewMode: tt.view}

			detail, err := suite.service.VendorDetail(suite.ctx, scope, "fornecedor x")
			suite.Require().NoError(err)
			suite.Equal("fornecedor x", detail.Vendor)
			suite.Len(detail.Payables, tt.wantCount)
			suite.Equal(tt.wantStats, detail.Stats)
		})
	}
}

func (suite *ReportingServiceTestSuite) TestVendorDetail_UnknownVendorIsEmpty() {
	suite.seed([]domain.Payable{{VendorName: "Fornecedor X", Value: 1000, ValuePaid: cents(1000)}}, nil, nil)

	detail, err := suite.service.VendorDetail(suite.ctx, suite.scope(domain.ViewAll, nil), "Ninguém")
	suite.Require().NoError(err)
	suite.Empty(detail.Payables)
	suite.Equal(domain.SettlementStats{}, detail.Stats)
}

func (suite *ReportingServiceTestSuite) TestReferenceListings() {
	ref := suite.repos.ReferenceRepo
	suite.Require().NoError(ref.UpsertAccounts(suite.ctx, []domain.ChartOfAccountsEntry{
		{Code: "3.1.01", Description: "Vendas", Category: domain.CategoryRevenue},
		{Code: "4.1.01", Description: "Aluguel", Category: domain.CategoryExpense},
		{Code: "4.2.01", Description: "Energia", Category: domain.CategoryExpense},
	}))
	suite.Require().NoError(ref.UpsertCostCenters(suite.ctx, []domain.CostCenterEntry{{Code: "100", Description: "Administrativo"}}))

	all, err := suite.service.ChartOfAccounts(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Len(all, 3)

	expenses, err := suite.service.ChartOfAccounts(suite.ctx, domain.CategoryExpense)
	suite.Require().NoError(err)
	suite.Require().Len(expenses, 2)
	suite.Equal([]string{"4.1.01", "4.2.01"}, []string{expenses[0].Code, expenses[1].Code})

	costCenters, err := suite.service.CostCenters(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]domain.CostCenterEntry{{Code: "100", Description: "Administrativo"}}, costCenters)

	vendors, err := suite.service.Vendors(suite.ctx)
	suite.Require().NoError(err)
	suite.NotNil(vendors)
	suite.Empty(vendors)
}

func (suite *ReportingServiceTestSuite) TestPayrollAndBankBalances() {
	ana := domain.PayrollLine{Area: "ADM", EmployeeName: "Ana", PaymentType: "Salário", Total: 9000}
	ana.Months[0] = 3000
	bia := domain.PayrollLine{Area: "ADM", EmployeeName: "Bia", PaymentType: "Salário", Total: 6000}
	bia.Months[0] = 2000
	suite.seed(nil, nil, []domain.PayrollLine{ana, bia})
	suite.Require().NoError(suite.repos.FactRepo.InsertBankBalances(suite.ctx, []domain.BankBalance{
		{UploadID: uploadID, BankName: "Banco A", TotalBalance: 1000, SystemBalance: 900, Deviation: 100},
		{UploadID: uploadID, BankName: "Banco B", TotalBalance: 500, SystemBalance: 500},
	}))

	payroll, err := suite.service.PayrollSummary(suite.ctx, suite.scope(domain.ViewAll, month(1)))
	suite.Require().NoError(err)
	suite.Equal(int64(5000), payroll.Total)
	suite.Equal([]domain.PayrollGroup{{Area: "ADM", PaymentType: "Salário", Employees: 2, Total: 5000}}, payroll.Groups)

	banks, err := suite.service.BankBalances(suite.ctx, uploadID)
	suite.Require().NoError(err)
	suite.Len(banks.Balances, 2)
	suite.Equal(int64(1500), banks.TotalBalance)
	suite.Equal(int64(100), banks.Deviation)
}

func (suite *ReportingServiceTestSuite) TestUnknownUploadIsEmpty() {
	scope := domain.Scope{UploadID: "nope", Branches: domain.BranchScope{Consolidated: true}, ViewMode: domain.ViewAll}

	dre, err := suite.service.DRESummary(suite.ctx, scope)
	suite.Require().NoError(err)
	suite.Equal(domain.DRESummary{}, *dre)

	branches, err := suite.service.AvailableBranches(suite.ctx, "nope")
	suite.Require().NoError(err)
	suite.Empty(branches)
}

func (suite *ReportingServiceTestSuite) TestAvailableBranches_DefaultsUnregisteredNames() {
	suite.seed([]domain.Payable{{BranchCode: branch(3)}, {BranchCode: branch(4)}}, nil, nil)
	_, err := suite.repos.ReferenceRepo.RegisterBranches(suite.ctx, []domain.Branch{{Code: 3, Name: "Matriz"}})
	suite.Require().NoError(err)

	branches, err := suite.service.AvailableBranches(suite.ctx, uploadID)
	suite.Require().NoError(err)
	suite.Equal([]domain.Branch{{Code: 3, Name: "Matriz"}, {Code: 4, Name: "Filial 4"}}, branches)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

// An uploaded workbook that received 2000,00 and paid 1500,00 yields a 25% margin.
func TestIngestThenReport_EndToEnd(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	ingestion := services.NewIngestionService(repos)
	reporting := services.NewReportingService(repos.FactRepo, repos.ReferenceRepo)

	started, err := ingestion.StartUpload(ctx, "financeiro.xlsx", sampleWorkbook(t))
	if err != nil {
		t.Fatal(err)
	}
	ingestion.Wait()

	upload, err := ingestion.GetUpload(ctx, started.UploadID)
	if err != nil {
		t.Fatal(err)
	}
	if upload.Status != domain.UploadCompleted {
		t.Fatalf("upload status = %s, want completed", upload.Status)
	}

	branches, err := reporting.ResolveBranchScope(ctx, upload.UploadID, nil)
	if err != nil {
		t.Fatal(err)
	}
	dre, err := reporting.DRESummary(ctx, domain.Scope{UploadID: upload.UploadID, Branches: branches, ViewMode: domain.ViewRealized})
	if err != nil {
		t.Fatal(err)
	}

	want := domain.DRESummary{
		Revenue:         200000,
		Expenses:        150000,
		OperatingProfit: 50000,
		NetProfit:       50000,
		OperatingMargin: 25.0,
		NetMargin:       25.0,
	}
	if *dre != want {
		t.Fatalf("dre = %+v, want %+v", *dre, want)
	}
}

// --- Mock FactReader for repository failures ---
type MockFactReader struct {
	mock.Mock
	portsrepo.FactReader
}

func (m *MockFactReader) FindPayables(ctx context.Context, filter portsrepo.FactFilter) ([]domain.Payable, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payable), args.Error(1)
}

func TestTopVendors_RepositoryError(t *testing.T) {
	repo := new(MockFactReader)
	boom := errors.New("connection reset")
	repo.On("FindPayables", mock.Anything, mock.Anything).Return(nil, boom).Once()

	svc := services.NewReportingService(repo, nil)
	_, err := svc.TopVendors(context.Background(), domain.Scope{UploadID: uploadID}, 5)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	repo.AssertExpectations(t)
}
