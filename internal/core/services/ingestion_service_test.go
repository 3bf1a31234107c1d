package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/core/services"
	"github.com/SscSPs/financial_reports_app/internal/repositories/memory"
)

// --- Mock IngestionObserver ---
type MockIngestionObserver struct {
	mock.Mock
}

func (m *MockIngestionObserver) UploadFinished(ctx context.Context, upload domain.Upload, counts *domain.IngestionCounts) {
	m.Called(ctx, upload, counts)
}

type sheetRows struct {
	name string
	rows [][]any
}

func buildWorkbook(t *testing.T, sheets ...sheetRows) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r, row := range s.rows {
			ref, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			values := row
			require.NoError(t, f.SetSheetRow(s.name, ref, &values))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// sampleWorkbook received 2000,00 and paid 1500,00 in March across branches 1 and 2.
func sampleWorkbook(t *testing.T) []byte {
	return buildWorkbook(t,
		sheetRows{name: "PC", rows: [][]any{
			{"1.01", "Vendas"},
			{"3.01", "Aluguel"},
		}},
		sheetRows{name: "CC", rows: [][]any{
			{"100", "Administrativo"},
		}},
		sheetRows{name: "FORN", rows: [][]any{
			{"55", "ACME"},
		}},
		sheetRows{name: "CP", rows: [][]any{
			{"Desc CL Analítico", "Fixa/Variável", "CodForn", "Fornecedor", "Valor", "VPago", "DtLanc", "DtPag", "Mês", "Filial"},
			{"Aluguel", "F", "55", "ACME", "1.500,00", "1.500,00", "01/03/2024", "05/03/2024", 3, 1},
			{"Energia", "V", "56", "LUZ SA", "300,00", "", "02/03/2024", "", 3, 2},
		}},
		sheetRows{name: "CR", rows: [][]any{
			{"Desc CL Analítico", "CodCli", "Cliente", "Valor", "VRecebido", "DtLanc", "DtRec", "Mês", "Filial"},
			{"Vendas", "9", "CLIENTE A", "1.000,00", "1.000,00", "01/03/2024", "10/03/2024", 3, 1},
			{"Vendas", "9", "CLIENTE A", "1.000,00", "1.000,00", "02/03/2024", "12/03/2024", 3, 2},
			{"Vendas", "10", "CLIENTE B", "800,00", "", "03/03/2024", "", 3, 2},
		}},
	)
}

type IngestionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	repos    portsrepo.RepositoryProvider
	observer *MockIngestionObserver
	service  portssvc.IngestionService
}

func (suite *IngestionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memory.NewRepositoryProvider(memory.NewStore())
	suite.observer = new(MockIngestionObserver)
	suite.service = services.NewIngestionService(suite.repos,
		services.WithIngestionWorkers(2),
		services.WithIngestionTimeout(time.Minute),
		services.WithIngestionObserver(suite.observer),
	)
}

func (suite *IngestionServiceTestSuite) upload(data []byte) *domain.Upload {
	started, err := suite.service.StartUpload(suite.ctx, "financeiro.xlsx", data)
	suite.Require().NoError(err)
	suite.Require().Equal(domain.UploadProcessing, started.Status)
	suite.service.Wait()

	finished, err := suite.service.GetUpload(suite.ctx, started.UploadID)
	suite.Require().NoError(err)
	return finished
}

func (suite *IngestionServiceTestSuite) TestStartUpload_Completes() {
	suite.observer.On("UploadFinished", mock.Anything, mock.MatchedBy(func(u domain.Upload) bool {
		return u.Status == domain.UploadCompleted
	}), mock.MatchedBy(func(c *domain.IngestionCounts) bool {
		return c.Payables == 2 && c.Receivables == 3 && c.NewBranches == 2
	})).Return().Once()

	upload := suite.upload(sampleWorkbook(suite.T()))

	suite.Equal(domain.UploadCompleted, upload.Status)
	suite.Nil(upload.ErrorMessage)
	suite.NotNil(upload.FinishedAt)

	n, err := suite.repos.FactRepo.CountFacts(suite.ctx, upload.UploadID)
	suite.Require().NoError(err)
	suite.Equal(5, n)
	suite.observer.AssertExpectations(suite.T())
}

func (suite *IngestionServiceTestSuite) TestStartUpload_GarbageFails() {
	suite.observer.On("UploadFinished", mock.Anything, mock.Anything, mock.Anything).Return().Once()

	upload := suite.upload([]byte("this is not a workbook at all"))

	suite.Equal(domain.UploadFailed, upload.Status)
	suite.Require().NotNil(upload.ErrorMessage)
	suite.NotEmpty(*upload.ErrorMessage)

	n, err := suite.repos.FactRepo.CountFacts(suite.ctx, upload.UploadID)
	suite.Require().NoError(err)
	suite.Zero(n)
}

func (suite *IngestionServiceTestSuite) TestIngest_RejectsFinishedUpload() {
	suite.observer.On("UploadFinished", mock.Anything, mock.Anything, mock.Anything).Return().Once()
	upload := suite.upload(sampleWorkbook(suite.T()))

	_, err := suite.service.Ingest(suite.ctx, upload.UploadID, sampleWorkbook(suite.T()))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Ingest(suite.ctx, "missing", nil)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.observer.AssertNumberOfCalls(suite.T(), "UploadFinished", 1)
}

func (suite *IngestionServiceTestSuite) TestIngest_ReferenceUpsertIsIdempotent() {
	suite.observer.On("UploadFinished", mock.Anything, mock.Anything, mock.Anything).Return()

	first := suite.upload(sampleWorkbook(suite.T()))
	accounts, err := suite.repos.ReferenceRepo.ListAccounts(suite.ctx)
	suite.Require().NoError(err)
	vendors, err := suite.repos.ReferenceRepo.ListVendors(suite.ctx)
	suite.Require().NoError(err)

	second := suite.upload(sampleWorkbook(suite.T()))
	suite.NotEqual(first.UploadID, second.UploadID)

	accountsAgain, err := suite.repos.ReferenceRepo.ListAccounts(suite.ctx)
	suite.Require().NoError(err)
	vendorsAgain, err := suite.repos.ReferenceRepo.ListVendors(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(accounts, accountsAgain)
	suite.Equal(vendors, vendorsAgain)
}

func (suite *IngestionServiceTestSuite) TestIngest_RegistersBranches() {
	counts := make(chan *domain.IngestionCounts, 2)
	suite.observer.On("UploadFinished", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { counts <- args.Get(2).(*domain.IngestionCounts) }).
		Return()

	upload := suite.upload(sampleWorkbook(suite.T()))
	suite.Equal(2, (<-counts).NewBranches)

	branches, err := suite.repos.ReferenceRepo.FindBranchesByCodes(suite.ctx, []int{1, 2})
	suite.Require().NoError(err)
	suite.Equal([]domain.Branch{{Code: 1, Name: "Filial 1"}, {Code: 2, Name: "Filial 2"}}, branches)

	// A second upload with the same branches registers nothing new.
	suite.upload(sampleWorkbook(suite.T()))
	suite.Zero((<-counts).NewBranches)

	codes, err := suite.repos.FactRepo.DistinctBranchCodes(suite.ctx, upload.UploadID)
	suite.Require().NoError(err)
	suite.Equal([]int{1, 2}, codes)
}

func (suite *IngestionServiceTestSuite) TestListUploads_Pages() {
	suite.observer.On("UploadFinished", mock.Anything, mock.Anything, mock.Anything).Return()

	var mu sync.Mutex
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.service = services.NewIngestionService(suite.repos,
		services.WithIngestionObserver(suite.observer),
		services.WithIngestionClock(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			clock = clock.Add(time.Second)
			return clock
		}),
	)
	ids := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		u, err := suite.service.StartUpload(suite.ctx, "f.xlsx", []byte("x"))
		suite.Require().NoError(err)
		ids = append(ids, u.UploadID)
	}
	suite.service.Wait()

	page, token, err := suite.service.ListUploads(suite.ctx, 2, "")
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal(ids[2], page[0].UploadID)
	suite.Equal(ids[1], page[1].UploadID)
	suite.NotEmpty(token)

	page, token, err = suite.service.ListUploads(suite.ctx, 2, token)
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal(ids[0], page[0].UploadID)
	suite.Empty(token)

	_, _, err = suite.service.ListUploads(suite.ctx, 2, "%%%")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *IngestionServiceTestSuite) TestClearAllData() {
	suite.observer.On("UploadFinished", mock.Anything, mock.Anything, mock.Anything).Return()
	upload := suite.upload(sampleWorkbook(suite.T()))

	suite.Require().NoError(suite.service.ClearAllData(suite.ctx))

	_, err := suite.service.GetUpload(suite.ctx, upload.UploadID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	n, err := suite.repos.FactRepo.CountFacts(suite.ctx, upload.UploadID)
	suite.Require().NoError(err)
	suite.Zero(n)
}

func TestIngestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionServiceTestSuite))
}
