package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/financial_reports_app/internal/core/ports/services"
	"github.com/SscSPs/financial_reports_app/internal/utils/pagination"
	"github.com/SscSPs/financial_reports_app/internal/workbook"
)

const (
	defaultIngestionWorkers = 2
	defaultIngestionTimeout = 10 * time.Minute
	defaultUploadPageSize   = 20
	maxUploadPageSize       = 100
)

// ingestionService implements the IngestionService interface
type ingestionService struct {
	BaseService
	uploadRepo      portsrepo.UploadRepositoryFacade
	referenceRepo   portsrepo.ReferenceWriter
	factRepo        portsrepo.FactRepositoryFacade
	maintenanceRepo portsrepo.MaintenanceRepository

	workers  *semaphore.Weighted
	inFlight sync.WaitGroup
	timeout  time.Duration
	observer portssvc.IngestionObserver
	now      func() time.Time
}

// IngestionServiceOption is a functional option for configuring the ingestion service
type IngestionServiceOption func(*ingestionService)

// WithIngestionWorkers bounds how many workbooks are ingested at the same time.
func WithIngestionWorkers(n int64) IngestionServiceOption {
	return func(s *ingestionService) {
		if n > 0 {
			s.workers = semaphore.NewWeighted(n)
		}
	}
}

// WithIngestionTimeout bounds a background ingestion, including the wait for a worker.
func WithIngestionTimeout(d time.Duration) IngestionServiceOption {
	return func(s *ingestionService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithIngestionObserver registers an observer for finished uploads.
func WithIngestionObserver(o portssvc.IngestionObserver) IngestionServiceOption {
	return func(s *ingestionService) {
		s.observer = o
	}
}

// WithIngestionClock overrides the time source.
func WithIngestionClock(now func() time.Time) IngestionServiceOption {
	return func(s *ingestionService) {
		s.now = now
	}
}

// NewIngestionService creates a new ingestion service with the provided options
func NewIngestionService(repos portsrepo.RepositoryProvider, options ...IngestionServiceOption) portssvc.IngestionService {
	svc := &ingestionService{
		uploadRepo:      repos.UploadRepo,
		referenceRepo:   repos.ReferenceRepo,
		factRepo:        repos.FactRepo,
		maintenanceRepo: repos.MaintenanceRepo,
		workers:         semaphore.NewWeighted(defaultIngestionWorkers),
		timeout:         defaultIngestionTimeout,
		now:             func() time.Time { return time.Now().UTC() },
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ingestionService implements the IngestionService interface
var _ portssvc.IngestionService = (*ingestionService)(nil)

// StartUpload saves a processing upload and schedules its ingestion.
func (s *ingestionService) StartUpload(ctx context.Context, fileName string, data []byte) (*domain.Upload, error) {
	upload := domain.Upload{
		UploadID:  uuid.NewString(),
		FileName:  fileName,
		FileSize:  int64(len(data)),
		Status:    domain.UploadProcessing,
		CreatedAt: s.now(),
	}
	if err := s.uploadRepo.SaveUpload(ctx, upload); err != nil {
		s.LogError(ctx, err, "Failed to save upload", slog.String("file_name", fileName))
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}
	s.LogInfo(ctx, "Upload accepted",
		slog.String("upload_id", upload.UploadID),
		slog.String("file_name", fileName),
		slog.Int64("file_size", upload.FileSize))

	// The ingestion outlives the request but keeps its logger.
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	s.inFlight.Add(1)
	go func() {
		defer s.inFlight.Done()
		defer cancel()

		if err := s.workers.Acquire(bg, 1); err != nil {
			s.finish(bg, upload.UploadID, &domain.IngestionCounts{}, fmt.Errorf("no ingestion worker available: %w", err))
			return
		}
		defer s.workers.Release(1)

		// The outcome is recorded on the upload itself.
		_, _ = s.Ingest(bg, upload.UploadID, data)
	}()

	return &upload, nil
}

// Ingest extracts data and persists it for a processing upload.
func (s *ingestionService) Ingest(ctx context.Context, uploadID string, data []byte) (*domain.IngestionCounts, error) {
	upload, err := s.uploadRepo.FindUploadByID(ctx, uploadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load upload %s: %w", uploadID, err)
	}
	if upload.IsTerminal() {
		return nil, fmt.Errorf("%w: upload %s is already %s", apperrors.ErrValidation, uploadID, upload.Status)
	}

	counts, err := s.runSafely(ctx, uploadID, data)
	s.finish(ctx, uploadID, counts, err)
	return counts, err
}

func (s *ingestionService) runSafely(ctx context.Context, uploadID string, data []byte) (counts *domain.IngestionCounts, err error) {
	counts = &domain.IngestionCounts{}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ingestion panicked: %v", r)
		}
	}()
	err = s.run(ctx, uploadID, data, counts)
	return counts, err
}

// run follows the persistence order: reference tables, ledgers, branch
// registration, then payroll and bank balances. Nothing is rolled back on failure.
func (s *ingestionService) run(ctx context.Context, uploadID string, data []byte, counts *domain.IngestionCounts) error {
	wb, err := workbook.Open(data)
	if err != nil {
		return err
	}
	defer wb.Close()

	batch := workbook.NewExtractor(s.GetLogger(ctx).With(slog.String("upload_id", uploadID))).Extract(wb)
	batch.StampUpload(uploadID)
	s.LogDebug(ctx, "Workbook extracted",
		slog.String("upload_id", uploadID),
		slog.Int("payables", len(batch.Payables)),
		slog.Int("receivables", len(batch.Receivables)),
		slog.Int("payroll_lines", len(batch.PayrollLines)),
		slog.Int("bank_balances", len(batch.BankBalances)))

	if err := s.referenceRepo.UpsertAccounts(ctx, batch.Accounts); err != nil {
		return fmt.Errorf("failed to upsert chart of accounts: %w", err)
	}
	counts.Accounts = len(batch.Accounts)
	if err := s.referenceRepo.UpsertCostCenters(ctx, batch.CostCenters); err != nil {
		return fmt.Errorf("failed to upsert cost centers: %w", err)
	}
	counts.CostCenters = len(batch.CostCenters)
	if err := s.referenceRepo.UpsertVendors(ctx, batch.Vendors); err != nil {
		return fmt.Errorf("failed to upsert vendors: %w", err)
	}
	counts.Vendors = len(batch.Vendors)

	if err := s.factRepo.InsertPayables(ctx, batch.Payables); err != nil {
		return fmt.Errorf("failed to insert payables: %w", err)
	}
	counts.Payables = len(batch.Payables)
	if err := s.factRepo.InsertReceivables(ctx, batch.Receivables); err != nil {
		return fmt.Errorf("failed to insert receivables: %w", err)
	}
	counts.Receivables = len(batch.Receivables)

	added, err := s.registerBranches(ctx, uploadID)
	if err != nil {
		return err
	}
	counts.NewBranches = added

	if err := s.factRepo.InsertPayrollLines(ctx, batch.PayrollLines); err != nil {
		return fmt.Errorf("failed to insert payroll lines: %w", err)
	}
	counts.PayrollLines = len(batch.PayrollLines)
	if err := s.factRepo.InsertBankBalances(ctx, batch.BankBalances); err != nil {
		return fmt.Errorf("failed to insert bank balances: %w", err)
	}
	counts.BankBalances = len(batch.BankBalances)

	return nil
}

// registerBranches reads back the branch codes just written for the upload and
// registers the unknown ones under their default name.
func (s *ingestionService) registerBranches(ctx context.Context, uploadID string) (int, error) {
	codes, err := s.factRepo.DistinctBranchCodes(ctx, uploadID)
	if err != nil {
		return 0, fmt.Errorf("failed to read branch codes: %w", err)
	}
	branches := make([]domain.Branch, len(codes))
	for i, code := range codes {
		branches[i] = domain.Branch{Code: code, Name: domain.DefaultBranchName(code)}
	}
	added, err := s.referenceRepo.RegisterBranches(ctx, branches)
	if err != nil {
		return 0, fmt.Errorf("failed to register branches: %w", err)
	}
	if added > 0 {
		s.LogInfo(ctx, "Registered new branches", slog.String("upload_id", uploadID), slog.Int("count", added))
	}
	return added, nil
}

// finish records the terminal status. The repository only moves processing
// uploads, so a second call is rejected.
func (s *ingestionService) finish(ctx context.Context, uploadID string, counts *domain.IngestionCounts, runErr error) {
	status := domain.UploadCompleted
	var message *string
	if runErr != nil {
		status = domain.UploadFailed
		msg := runErr.Error()
		message = &msg
	}

	// Record the outcome even when the ingestion context already expired.
	writeCtx := context.WithoutCancel(ctx)
	if err := s.uploadRepo.FinishUpload(writeCtx, uploadID, status, message, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to record upload status",
			slog.String("upload_id", uploadID), slog.String("status", string(status)))
		return
	}

	if runErr != nil {
		s.LogError(ctx, runErr, "Ingestion failed", slog.String("upload_id", uploadID))
	} else {
		s.LogInfo(ctx, "Ingestion completed",
			slog.String("upload_id", uploadID),
			slog.Int("payables", counts.Payables),
			slog.Int("receivables", counts.Receivables),
			slog.Int("new_branches", counts.NewBranches))
	}

	if s.observer != nil {
		if upload, err := s.uploadRepo.FindUploadByID(writeCtx, uploadID); err == nil {
			s.observer.UploadFinished(writeCtx, *upload, counts)
		}
	}
}

// GetUpload returns one upload.
func (s *ingestionService) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	upload, err := s.uploadRepo.FindUploadByID(ctx, uploadID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find upload", slog.String("upload_id", uploadID))
		}
		return nil, err
	}
	return upload, nil
}

// ListUploads returns a page of uploads and the token of the next page.
func (s *ingestionService) ListUploads(ctx context.Context, limit int, pageToken string) ([]domain.Upload, string, error) {
	if limit <= 0 {
		limit = defaultUploadPageSize
	}
	if limit > maxUploadPageSize {
		limit = maxUploadPageSize
	}

	var cursor *pagination.Cursor
	if pageToken != "" {
		c, err := pagination.DecodeToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = c
	}

	uploads, err := s.uploadRepo.ListUploads(ctx, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list uploads")
		return nil, "", fmt.Errorf("failed to list uploads: %w", err)
	}

	next := ""
	if len(uploads) > limit {
		uploads = uploads[:limit]
		last := uploads[len(uploads)-1]
		next = pagination.EncodeToken(last.CreatedAt, last.UploadID)
	}
	return uploads, next, nil
}

// ClearAllData wipes the store.
func (s *ingestionService) ClearAllData(ctx context.Context) error {
	if err := s.maintenanceRepo.ClearAll(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear data")
		return fmt.Errorf("failed to clear data: %w", err)
	}
	s.LogInfo(ctx, "All financial data cleared")
	return nil
}

// Wait blocks until background ingestions are done.
func (s *ingestionService) Wait() {
	s.inFlight.Wait()
}
