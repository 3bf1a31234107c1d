package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/financial_reports_app/internal/apperrors"
	"github.com/SscSPs/financial_reports_app/internal/core/domain"
	portsrepo "github.com/SscSPs/financial_reports_app/internal/core/ports/repositories"
	"github.com/SscSPs/financial_reports_app/internal/models"
	"github.com/SscSPs/financial_reports_app/internal/utils/mapping"
	"github.com/SscSPs/financial_reports_app/internal/utils/pagination"
)

type PgxUploadRepository struct {
	BaseRepository
}

// newPgxUploadRepository creates a new repository for upload data.
func newPgxUploadRepository(pool *pgxpool.Pool) portsrepo.UploadRepositoryFacade {
	return &PgxUploadRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UploadRepositoryFacade = (*PgxUploadRepository)(nil)

const uniqueViolation = "23505"

// SaveUpload inserts a new upload row.
func (r *PgxUploadRepository) SaveUpload(ctx context.Context, upload domain.Upload) error {
	m := mapping.ToModelUpload(upload)
	query := `
		INSERT INTO uploads (upload_id, file_name, file_size, status, error_message, created_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.UploadID, m.FileName, m.FileSize, m.Status, m.ErrorMessage, m.CreatedAt, m.FinishedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert upload "+m.UploadID, err)
	}
	return nil
}

// FinishUpload sets the terminal status of a processing upload.
func (r *PgxUploadRepository) FinishUpload(ctx context.Context, uploadID string, status domain.UploadStatus, errorMessage *string, finishedAt time.Time) error {
	if !isUUID(uploadID) {
		return apperrors.ErrNotFound
	}
	query := `
		UPDATE uploads
		SET status = $2, error_message = $3, finished_at = $4
		WHERE upload_id = $1 AND status = 'processing';
	`
	tag, err := r.Pool.Exec(ctx, query, uploadID, string(status), errorMessage, finishedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to finish upload "+uploadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const uploadColumns = `upload_id::text, file_name, file_size, status, error_message, created_at, finished_at`

func scanUpload(row pgx.Row) (models.Upload, error) {
	var m models.Upload
	err := row.Scan(&m.UploadID, &m.FileName, &m.FileSize, &m.Status, &m.ErrorMessage, &m.CreatedAt, &m.FinishedAt)
	return m, err
}

// FindUploadByID retrieves an upload by its ID.
func (r *PgxUploadRepository) FindUploadByID(ctx context.Context, uploadID string) (*domain.Upload, error) {
	if !isUUID(uploadID) {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + uploadColumns + ` FROM uploads WHERE upload_id = $1;`
	m, err := scanUpload(r.Pool.QueryRow(ctx, query, uploadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find upload %s: %w", uploadID, err)
	}
	d := mapping.ToDomainUpload(m)
	return &d, nil
}

// ListUploads lists uploads newest first using keyset pagination.
func (r *PgxUploadRepository) ListUploads(ctx context.Context, limit int, after *pagination.Cursor) ([]domain.Upload, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if after == nil {
		query := `SELECT ` + uploadColumns + ` FROM uploads ORDER BY created_at DESC, upload_id::text DESC LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, limit)
	} else {
		query := `
			SELECT ` + uploadColumns + ` FROM uploads
			WHERE (created_at, upload_id::text) < ($1, $2)
			ORDER BY created_at DESC, upload_id::text DESC
			LIMIT $3;
		`
		rows, err = r.Pool.Query(ctx, query, after.CreatedAt, after.ID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query uploads: %w", err)
	}
	defer rows.Close()

	modelUploads, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Upload, error) {
		return scanUpload(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan uploads: %w", err)
	}
	return mapping.ToDomainUploadSlice(modelUploads), nil
}
