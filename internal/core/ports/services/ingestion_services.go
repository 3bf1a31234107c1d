package services

import (
	"context"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
)

// IngestionService turns uploaded workbooks into persisted facts.
type IngestionService interface {
	// StartUpload records a processing upload and ingests data in the background.
	// The returned upload is still processing; poll GetUpload for the outcome.
	StartUpload(ctx context.Context, fileName string, data []byte) (*domain.Upload, error)

	// Ingest runs the whole pipeline for an existing processing upload and moves it
	// to completed or failed exactly once.
	Ingest(ctx context.Context, uploadID string, data []byte) (*domain.IngestionCounts, error)

	// GetUpload returns one upload. Returns apperrors.ErrNotFound when absent.
	GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error)

	// ListUploads pages through uploads, newest first. The returned token is empty
	// on the last page.
	ListUploads(ctx context.Context, limit int, pageToken string) ([]domain.Upload, string, error)

	// ClearAllData removes every upload, fact and reference row. It must not run
	// while an ingestion is in flight.
	ClearAllData(ctx context.Context) error

	// Wait blocks until every background ingestion has finished.
	Wait()
}

// IngestionObserver is told about every upload that reached a terminal status.
// Counts covers what was persisted, which is partial for failed uploads.
type IngestionObserver interface {
	UploadFinished(ctx context.Context, upload domain.Upload, counts *domain.IngestionCounts)
}
