package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	"github.com/SscSPs/financial_reports_app/internal/utils/pagination"
)

// UploadReader defines read operations for upload data
type UploadReader interface {
	// FindUploadByID retrieves an upload by ID. Returns apperrors.ErrNotFound when absent.
	FindUploadByID(ctx context.Context, uploadID string) (*domain.Upload, error)

	// ListUploads returns up to limit uploads, newest first, starting after the cursor.
	ListUploads(ctx context.Context, limit int, after *pagination.Cursor) ([]domain.Upload, error)
}

// UploadWriter defines write operations for upload data
type UploadWriter interface {
	// SaveUpload persists a new upload.
	SaveUpload(ctx context.Context, upload domain.Upload) error

	// FinishUpload moves a processing upload to a terminal status. It returns
	// apperrors.ErrNotFound when no processing upload has that ID, which keeps the
	// transition single-shot.
	FinishUpload(ctx context.Context, uploadID string, status domain.UploadStatus, errorMessage *string, finishedAt time.Time) error
}

// UploadRepositoryFacade combines all upload-related repository interfaces
type UploadRepositoryFacade interface {
	UploadReader
	UploadWriter
}
